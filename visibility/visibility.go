// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visibility computes, for each face of a shape, whether it faces
// the camera, and builds the boundary (silhouette) planes used by clipping
// to hide the part of an occluding shape that the camera can't see around.
package visibility

import (
	"github.com/hyperline/engine/shape"
	"github.com/hyperline/engine/vector"
)

// UpdateVisibility sets the Visible flag of every face of s according to
// whether its outward normal points towards cameraPos: a face is visible
// exactly when the camera sits on the side of its plane that the normal
// points to. Transparent and two-sided shapes have every face forced
// visible.
func UpdateVisibility[V vector.Vector[V], M vector.Matrix[V, M]](s *shape.Shape[V, M], cameraPos V) {
	for i := range s.Faces {
		f := &s.Faces[i]
		if s.Transparent || s.TwoSided {
			f.Visible = true
			continue
		}
		f.Visible = f.Normal.Dot(f.Center.Sub(cameraPos)) < 0
	}
}
