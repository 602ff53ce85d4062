// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/hyperline/engine/vector"

// SubFace records how two of a shape's faces are adjacent, or — for a
// single-face shape with nothing to be adjacent to — how its one face
// touches the rest of space. visibility.CalcBoundaries dispatches on which
// concrete type it holds.
type SubFace interface {
	isSubFace()
}

// ConvexSubFace is the shared-edge adjacency between two faces of a convex
// shape with more than one face.
type ConvexSubFace struct {
	FaceA int
	FaceB int
}

func (ConvexSubFace) isSubFace() {}

// BoundarySubFace is one boundary element of a single-face shape (e.g. a
// flat polygon): the adjacency of its face to the rest of space, recorded
// as the vertex indices spanning that element. A polygon has one per rim
// edge; a 4D face built from a 3D sub-shape has one per sub-shape face.
type BoundarySubFace struct {
	Face   int
	VertIs []int
}

func (BoundarySubFace) isSubFace() {}

// commonEdgeThreshold is the number of shared edges two faces of a shape
// must have to be considered adjacent: one shared edge suffices in 3D (two
// faces meeting along a single edge), but in 4D two 3-cells meet along a
// shared 2D face, which itself contributes more than one shared edge.
func commonEdgeThreshold(dim int) int {
	if dim >= 4 {
		return 2
	}
	return 1
}

// CalcSubFaces builds the subface adjacency for a shape's faces. dim is the
// ambient dimension of the shape (3 or 4). A single face gets one boundary
// subface per rim edge, which is right for a flat polygon; single-face
// shapes with larger boundary elements supply them through NewSingleFace
// instead.
func CalcSubFaces[V vector.Vector[V]](faces []Face[V], edges []Edge, dim int) []SubFace {
	if len(faces) == 1 {
		subs := make([]SubFace, 0, len(faces[0].EdgeIs))
		for _, ei := range faces[0].EdgeIs {
			e := edges[ei]
			subs = append(subs, BoundarySubFace{Face: 0, VertIs: []int{e.V0, e.V1}})
		}
		return subs
	}

	threshold := commonEdgeThreshold(dim)
	var subs []SubFace
	for i := 0; i < len(faces); i++ {
		edgesI := edgeSet(faces[i].EdgeIs)
		for j := i + 1; j < len(faces); j++ {
			if countCommonEdges(edgesI, faces[j].EdgeIs) >= threshold {
				subs = append(subs, ConvexSubFace{FaceA: i, FaceB: j})
			}
		}
	}
	return subs
}

func edgeSet(edgeIs []int) map[int]struct{} {
	m := make(map[int]struct{}, len(edgeIs))
	for _, ei := range edgeIs {
		m[ei] = struct{}{}
	}
	return m
}

func countCommonEdges(a map[int]struct{}, bEdges []int) int {
	count := 0
	for _, ei := range bEdges {
		if _, ok := a[ei]; ok {
			count++
		}
	}
	return count
}
