// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/hyperline/engine/vector"

// Face is one (D-1)-dimensional facet of a shape: a planar region bounded by
// a subset of the shape's edges, carrying both its reference-pose geometry
// (computed once at construction) and its current world-pose geometry
// (recomputed every Transform).
type Face[V vector.Vector[V]] struct {
	// EdgeIs indexes Shape.Edges for the edges bounding this face.
	EdgeIs []int
	// VertIs indexes Shape.Verts for this face's vertices, in the order
	// their edges were listed, duplicates removed.
	VertIs []int

	NormalRef V
	CenterRef V

	Normal    V
	Center    V
	Threshold float32

	// Texture is a per-face texture tag. Nothing in the module reads it:
	// scene draws every face of a shape with that shape's one
	// ShapeEntry.FaceTexture.
	Texture int

	// Visible is set by visibility.UpdateVisibility each frame.
	Visible bool
}

// NewFace builds a face from its bounding edges and reference-pose normal
// and center. VertIs is derived from edgeIs and the shape's edge list.
func NewFace[V vector.Vector[V]](edgeIs []int, edges []Edge, normalRef, centerRef V) Face[V] {
	return Face[V]{
		EdgeIs:    edgeIs,
		VertIs:    vertIsFromEdges(edgeIs, edges),
		NormalRef: normalRef,
		CenterRef: centerRef,
		Normal:    normalRef,
		Center:    centerRef,
	}
}

// vertIsFromEdges collects the unique vertex indices touched by the given
// edges, in first-seen order.
func vertIsFromEdges(edgeIs []int, edges []Edge) []int {
	seen := make(map[int]bool, len(edgeIs)*2)
	out := make([]int, 0, len(edgeIs)*2)
	add := func(vi int) {
		if !seen[vi] {
			seen[vi] = true
			out = append(out, vi)
		}
	}
	for _, ei := range edgeIs {
		e := edges[ei]
		add(e.V0)
		add(e.V1)
	}
	return out
}
