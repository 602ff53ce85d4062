// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Vec3 is a 3D vector/point with X, Y and Z components.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// NewVec3 creates a Vec3 with the specified components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of v and other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v minus other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Dim returns 3.
func (v Vec3) Dim() int {
	return 3
}

// Component returns this vector's component by index: 0 for X, 1 for Y, 2 for Z.
// Negative indices count back from the end.
func (v Vec3) Component(i int) float32 {
	switch resolveIndex(i, 3) {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(invalidIndexMsg(i, 3))
	}
}

// WithComponent returns a copy of v with component i set to val. Negative
// indices count back from the end, as in Component.
func (v Vec3) WithComponent(i int, val float32) Vec3 {
	switch resolveIndex(i, 3) {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic(invalidIndexMsg(i, 3))
	}
	return v
}

// Cross returns the 3D cross product of v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Project3 projects v down to Vec2 by dropping the Z component, the way the
// pipeline turns camera-space vectors into screen-space ones.
func Project3(v Vec3) Vec2 {
	return Vec2{v.X, v.Y}
}
