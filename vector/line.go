// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Line is an unordered pair of points in V-space: one segment of a shape's
// wireframe, or an intermediate result while clipping one.
type Line[V any] struct {
	P0 V
	P1 V
}

// NewLine returns the line from p0 to p1.
func NewLine[V any](p0, p1 V) Line[V] {
	return Line[V]{P0: p0, P1: p1}
}

// MapLine applies f to both endpoints of l, producing a line in the target
// vector type W, so f may change the ambient dimension (for example
// Project4 takes a 4D line to a 3D one).
func MapLine[V, W any](l Line[V], f func(V) W) Line[W] {
	return Line[W]{P0: f(l.P0), P1: f(l.P1)}
}
