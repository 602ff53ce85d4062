// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the reference/world geometry of a polytope: verts,
// edges, faces, and the subface adjacency used by visibility and boundary
// construction.
package shape

// Edge is a pair of indices into a Shape's Verts slice.
type Edge struct {
	V0 int
	V1 int
}

// NewEdge returns the edge between vertex indices v0 and v1.
func NewEdge(v0, v1 int) Edge {
	return Edge{V0: v0, V1: v1}
}
