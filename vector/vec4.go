// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Vec4 is a 4D vector/point with X, Y, Z and W components. This is the
// native dimension of the game's 4D shapes, projected down to Vec3 (and from
// there to Vec2) for rendering.
type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewVec4 creates a Vec4 with the specified components.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of v and other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v minus other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Negate returns -v.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and other.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Dim returns 4.
func (v Vec4) Dim() int {
	return 4
}

// Component returns this vector's component by index: 0 for X, 1 for Y, 2 for Z, 3 for W.
// Negative indices count back from the end.
func (v Vec4) Component(i int) float32 {
	switch resolveIndex(i, 4) {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(invalidIndexMsg(i, 4))
	}
}

// WithComponent returns a copy of v with component i set to val. Negative
// indices count back from the end, as in Component.
func (v Vec4) WithComponent(i int, val float32) Vec4 {
	switch resolveIndex(i, 4) {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		panic(invalidIndexMsg(i, 4))
	}
	return v
}

// Project4 projects v down to Vec3 by dropping the W component, the way a 4D
// shape's verts are brought down into the 3D slice the camera sees.
func Project4(v Vec4) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
