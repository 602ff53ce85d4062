// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Mat4 is a 4x4 matrix stored as four rows, used as the orientation frame of
// 4D shapes.
type Mat4 [4]Vec4

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Outer4 returns the outer product of v1 and v2.
func Outer4(v1, v2 Vec4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i] = v2.Scale(v1.Component(i))
	}
	return m
}

// Diag4 returns the diagonal matrix with the given entries.
func Diag4(d Vec4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i] = Zero(Vec4{}).WithComponent(i, d.Component(i))
	}
	return m
}

// Row returns the i-th row of m. Negative indices count back from the end,
// as in Vec4.Component.
func (m Mat4) Row(i int) Vec4 {
	j := resolveIndex(i, 4)
	if j < 0 || j >= 4 {
		panic(invalidIndexMsg(i, 4))
	}
	return m[j]
}

// MulVec applies m to v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// Add returns the elementwise sum of m and other.
func (m Mat4) Add(other Mat4) Mat4 {
	return Mat4{m[0].Add(other[0]), m[1].Add(other[1]), m[2].Add(other[2]), m[3].Add(other[3])}
}

// Scale returns m with every entry multiplied by s.
func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[j] = out[j].WithComponent(i, m[i].Component(j))
		}
	}
	return out
}

// MulMat returns the matrix product m*other.
func (m Mat4) MulMat(other Mat4) Mat4 {
	t := other.Transpose()
	var out Mat4
	for i := 0; i < 4; i++ {
		out[i] = Vec4{m[i].Dot(t[0]), m[i].Dot(t[1]), m[i].Dot(t[2]), m[i].Dot(t[3])}
	}
	return out
}

// RotationMatrix4 builds the rotation taking v1 towards v2 within the plane
// they span, leaving the orthogonal complement untouched — exactly what
// rotating a 4D shape about a fixed 2-plane needs. If theta is nil the
// rotation angle is the angle between v1 and v2; otherwise it is theta
// exactly. Degrades to the identity when v1 and v2 are anti-parallel; see
// rotationComponents.
func RotationMatrix4(v1, v2 Vec4, theta *float32) Mat4 {
	u, w, r1, r2 := rotationComponents(v1, v2, theta)
	return Identity4().
		Add(Outer4(u, r1.Sub(u))).
		Add(Outer4(w, r2.Sub(w)))
}
