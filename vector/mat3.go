// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Mat3 is a 3x3 matrix stored as three rows, used as the orientation frame
// of 3D shapes and the camera.
type Mat3 [3]Vec3

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Outer3 returns the outer product of v1 and v2.
func Outer3(v1, v2 Vec3) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		m[i] = v2.Scale(v1.Component(i))
	}
	return m
}

// Diag3 returns the diagonal matrix with the given entries.
func Diag3(d Vec3) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		m[i] = Zero(Vec3{}).WithComponent(i, d.Component(i))
	}
	return m
}

// Row returns the i-th row of m. Negative indices count back from the end,
// as in Vec3.Component.
func (m Mat3) Row(i int) Vec3 {
	j := resolveIndex(i, 3)
	if j < 0 || j >= 3 {
		panic(invalidIndexMsg(i, 3))
	}
	return m[j]
}

// MulVec applies m to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Add returns the elementwise sum of m and other.
func (m Mat3) Add(other Mat3) Mat3 {
	return Mat3{m[0].Add(other[0]), m[1].Add(other[1]), m[2].Add(other[2])}
}

// Scale returns m with every entry multiplied by s.
func (m Mat3) Scale(s float32) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j] = out[j].WithComponent(i, m[i].Component(j))
		}
	}
	return out
}

// MulMat returns the matrix product m*other.
func (m Mat3) MulMat(other Mat3) Mat3 {
	t := other.Transpose()
	var out Mat3
	for i := 0; i < 3; i++ {
		out[i] = Vec3{m[i].Dot(t[0]), m[i].Dot(t[1]), m[i].Dot(t[2])}
	}
	return out
}

// RotationMatrix3 builds the rotation taking v1 towards v2 within the plane
// they span. If theta is nil the rotation angle is the angle between v1 and
// v2; otherwise it is theta exactly. Degrades to the identity when v1 and v2
// are anti-parallel; see rotationComponents.
func RotationMatrix3(v1, v2 Vec3, theta *float32) Mat3 {
	u, w, r1, r2 := rotationComponents(v1, v2, theta)
	return Identity3().
		Add(Outer3(u, r1.Sub(u))).
		Add(Outer3(w, r2.Sub(w)))
}
