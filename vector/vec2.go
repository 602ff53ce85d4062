// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Vec2 is a 2D vector/point with X and Y components. It is the projection
// target of Vec3 and the final screen-space type emitted by the pipeline.
type Vec2 struct {
	X float32
	Y float32
}

// NewVec2 creates a Vec2 with the specified components.
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v minus other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Dim returns 2.
func (v Vec2) Dim() int {
	return 2
}

// Component returns this vector's component by index: 0 for X, 1 for Y.
// Negative indices count back from the end (-1 is Y, -2 is X).
func (v Vec2) Component(i int) float32 {
	switch resolveIndex(i, 2) {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(invalidIndexMsg(i, 2))
	}
}

// WithComponent returns a copy of v with component i set to val. Negative
// indices count back from the end, as in Component.
func (v Vec2) WithComponent(i int, val float32) Vec2 {
	switch resolveIndex(i, 2) {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		panic(invalidIndexMsg(i, 2))
	}
	return v
}
