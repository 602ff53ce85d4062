// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import "github.com/hyperline/engine/vector"

// FaceTexture generates extra lines in the plane of a face, given that
// face's world-space frame. It must not look at anything beyond the frame
// it is handed: textures are pure functions of face geometry.
type FaceTexture[V vector.Vector[V]] func(frame Frame[V]) []vector.Line[V]

// Wireframe is the default texture: it adds nothing, since the face's own
// edges are already emitted as lines by the caller.
func Wireframe[V vector.Vector[V]]() FaceTexture[V] {
	return func(Frame[V]) []vector.Line[V] { return nil }
}

// Grid returns a texture that draws an n x n grid of interior lines across
// the face, sampled in the frame's [0, 1] x [0, 1] local square.
func Grid[V vector.Vector[V]](n int) FaceTexture[V] {
	return func(frame Frame[V]) []vector.Line[V] {
		if n <= 0 {
			return nil
		}
		var lines []vector.Line[V]
		for i := 1; i < n; i++ {
			t := float32(i) / float32(n)
			lines = append(lines,
				vector.Line[V]{P0: frame.At(t, 0), P1: frame.At(t, 1)},
				vector.Line[V]{P0: frame.At(0, t), P1: frame.At(1, t)},
			)
		}
		return lines
	}
}
