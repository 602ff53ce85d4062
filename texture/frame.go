// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture generates extra, face-local lines a shape's faces draw
// beyond their own edges: a plain wireframe (the default, which adds
// nothing), an interior grid, or lines traced from an image's luminance.
// Texture choice is a pure function of face geometry and never affects
// visibility or clipping.
package texture

import "github.com/hyperline/engine/vector"

// Frame is an affine face-local-to-world map: a point (u, v) in the plane
// of the face is Origin + U*u + V*v. U and V are built from a handful of
// the face's own vertices, not stored as unit vectors, so u and v can be
// given in a normalized [0, 1] range spanning the face's extent.
type Frame[V vector.Vector[V]] struct {
	Origin V
	U, V   V
}

// At maps a face-local (u, v) coordinate to world space.
func (f Frame[V]) At(u, v float32) V {
	return f.Origin.Add(f.U.Scale(u)).Add(f.V.Scale(v))
}

// ComputeFrame builds a face-local frame from three of the face's world
// vertices: origin is the first, U spans towards the second, and V is the
// component of the third vertex's offset orthogonal to U (so the frame
// stays well-defined even when the face is not a parallelogram).
func ComputeFrame[V vector.Vector[V]](verts []V) Frame[V] {
	origin := verts[0]
	u := verts[1].Sub(origin)
	raw := verts[2].Sub(origin)
	v := raw.Sub(u.Scale(u.Dot(raw) / u.Dot(u)))
	return Frame[V]{Origin: origin, U: u, V: v}
}
