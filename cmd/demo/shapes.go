// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/hyperline/engine/shape"
	"github.com/hyperline/engine/vector"
)

// buildHypercube constructs the dim-cube (a square in 2D, a cube in 3D, a
// tesseract in 4D) centered at the origin with unit half-width edges, using
// identity's rows as the basis vectors of V. Every vertex is one of the
// 2^dim sign combinations of those basis vectors; every face is the set of
// vertices with one coordinate pinned to +1 or -1, and its edges are the
// ones connecting vertices that differ in exactly one of the other
// coordinates.
//
// This lives in cmd/demo rather than the shape package because it is level
// construction (populating a scene with concrete geometry), which the
// engine core leaves to its caller.
func buildHypercube[V vector.Vector[V], M vector.Matrix[V, M]](dim int, identity M) *shape.Shape[V, M] {
	n := 1 << dim

	verts := make([]V, n)
	for b := 0; b < n; b++ {
		v := identity.Row(0).Scale(signBit(b, 0))
		for a := 1; a < dim; a++ {
			v = v.Add(identity.Row(a).Scale(signBit(b, a)))
		}
		verts[b] = v
	}

	var edges []shape.Edge
	edgeIndex := make(map[[2]int]int)
	for b := 0; b < n; b++ {
		for a := 0; a < dim; a++ {
			c := b ^ (1 << a)
			if c > b {
				edgeIndex[[2]int{b, c}] = len(edges)
				edges = append(edges, shape.NewEdge(b, c))
			}
		}
	}

	var faceSpecs []shape.FaceSpec[V]
	for a := 0; a < dim; a++ {
		for _, s := range [2]int{0, 1} {
			var edgeIs []int
			for b := 0; b < n; b++ {
				if (b>>uint(a))&1 != s {
					continue
				}
				for a2 := 0; a2 < dim; a2++ {
					if a2 == a {
						continue
					}
					c := b ^ (1 << a2)
					if c > b {
						edgeIs = append(edgeIs, edgeIndex[[2]int{b, c}])
					}
				}
			}
			sign := float32(-1)
			if s == 1 {
				sign = 1
			}
			faceSpecs = append(faceSpecs, shape.FaceSpec[V]{
				EdgeIs:    edgeIs,
				NormalRef: identity.Row(a).Scale(sign),
			})
		}
	}

	return shape.NewShape[V, M](verts, edges, faceSpecs, dim, identity)
}

func signBit(b, a int) float32 {
	if (b>>uint(a))&1 == 1 {
		return 1
	}
	return -1
}
