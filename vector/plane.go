// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Plane is the set of points x in V-space satisfying Normal.Dot(x) ==
// Threshold. Used for face planes, boundary (silhouette) planes, the near
// clip plane, and the axis-aligned planes of the clip cube.
type Plane[V Vector[V]] struct {
	Normal    V
	Threshold float32
}

// NewPlaneFromPointNormal builds the plane through point with the given
// normal.
func NewPlaneFromPointNormal[V Vector[V]](point, normal V) Plane[V] {
	return Plane[V]{Normal: normal, Threshold: normal.Dot(point)}
}

// SignedDistance returns Normal.Dot(point) - Threshold: positive on the side
// the normal points towards, negative on the other, zero on the plane.
func (p Plane[V]) SignedDistance(point V) float32 {
	return p.Normal.Dot(point) - p.Threshold
}
