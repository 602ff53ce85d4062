// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/hyperline/engine/vector"

// Pose is a shape's placement in world space: an orientation frame, a
// position, and a uniform scale applied to the shape's reference verts
// before the frame and position are applied.
type Pose[V vector.Vector[V], M vector.Matrix[V, M]] struct {
	Frame M
	Pos   V
	Scale float32
}
