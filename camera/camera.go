// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera implements the view pose each frame projects shapes
// through: position, orientation frame, near clip plane, view transform,
// and perspective projection down one dimension.
package camera

import (
	"github.com/hyperline/engine/math32"
	"github.com/hyperline/engine/vector"
)

// ZNear is the default near-clip offset along the view direction.
const ZNear = 0.1

// Focal is the default focal length used by Project.
const Focal = 1.0

// epsilonZ substitutes for a projected z that lands too close to the
// camera's own origin to divide by safely.
const epsilonZ = 1e-5

// Camera holds a position and an orthonormal frame; Frame's last row is the
// view direction, so the derived near-clip plane shares it as its normal.
type Camera[V vector.Vector[V], M vector.Matrix[V, M]] struct {
	Pos   V
	Frame M
	ZNear float32
}

// NewCamera builds a camera at pos with the given orthonormal frame and the
// default near-clip offset.
func NewCamera[V vector.Vector[V], M vector.Matrix[V, M]](pos V, frame M) Camera[V, M] {
	return Camera[V, M]{Pos: pos, Frame: frame, ZNear: ZNear}
}

// NearPlane returns the camera's view half-space: points behind it (or
// closer than ZNear) are clipped away before projection.
func (c Camera[V, M]) NearPlane(dim int) vector.Plane[V] {
	n := c.Frame.Row(dim - 1)
	return vector.Plane[V]{Normal: n, Threshold: n.Dot(c.Pos) + c.ZNear}
}

// ViewTransform maps a world point into camera space: frame * (point - pos).
func ViewTransform[V vector.Vector[V], M vector.Matrix[V, M]](c Camera[V, M], point V) V {
	return c.Frame.MulVec(point.Sub(c.Pos))
}

// Project perspective-projects a camera-space point v and drops its last
// component via dropLast (vector.Vec4.Project4 or vector.Vec3.Project3),
// scaling the result by focal / z. Points whose z is numerically zero (in
// the camera's own plane) are projected with z substituted by epsilonZ
// rather than dividing by (near) zero. A point on the view axis projects to
// the zero vector.
func Project[V vector.Vector[V], W vector.Vector[W]](v V, focal float32, dropLast func(V) W) W {
	dim := v.Dim()
	z := v.Component(dim - 1)
	if math32.Abs(z) < epsilonZ {
		z = epsilonZ
	}
	return dropLast(v).Scale(focal / z)
}
