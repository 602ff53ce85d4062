// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Mat2 is a 2x2 matrix stored as two rows.
type Mat2 [2]Vec2

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{
		{1, 0},
		{0, 1},
	}
}

// Outer2 returns the outer product of v1 and v2: row i is v1's i-th
// component times v2.
func Outer2(v1, v2 Vec2) Mat2 {
	var m Mat2
	for i := 0; i < 2; i++ {
		m[i] = v2.Scale(v1.Component(i))
	}
	return m
}

// Row returns the i-th row of m. Negative indices count back from the end,
// as in Vec2.Component.
func (m Mat2) Row(i int) Vec2 {
	j := resolveIndex(i, 2)
	if j < 0 || j >= 2 {
		panic(invalidIndexMsg(i, 2))
	}
	return m[j]
}

// MulVec applies m to v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{m[0].Dot(v), m[1].Dot(v)}
}

// Add returns the elementwise sum of m and other.
func (m Mat2) Add(other Mat2) Mat2 {
	return Mat2{m[0].Add(other[0]), m[1].Add(other[1])}
}

// Scale returns m with every entry multiplied by s.
func (m Mat2) Scale(s float32) Mat2 {
	return Mat2{m[0].Scale(s), m[1].Scale(s)}
}

// MulMat returns the matrix product m*other.
func (m Mat2) MulMat(other Mat2) Mat2 {
	t := other.Transpose()
	var out Mat2
	for i := 0; i < 2; i++ {
		out[i] = Vec2{m[i].Dot(t[0]), m[i].Dot(t[1])}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat2) Transpose() Mat2 {
	var out Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[j] = out[j].WithComponent(i, m[i].Component(j))
		}
	}
	return out
}

// Diag2 returns the diagonal matrix with the given entries.
func Diag2(d Vec2) Mat2 {
	var m Mat2
	for i := 0; i < 2; i++ {
		m[i] = Zero(Vec2{}).WithComponent(i, d.Component(i))
	}
	return m
}

// RotationMatrix2 builds the rotation taking v1 towards v2. If theta is nil
// the rotation angle is the angle between v1 and v2; otherwise it is theta
// exactly, using v1 and v2 only to determine the plane of rotation. Degrades
// to the identity when v1 and v2 are anti-parallel; see rotationComponents.
func RotationMatrix2(v1, v2 Vec2, theta *float32) Mat2 {
	u, w, r1, r2 := rotationComponents(v1, v2, theta)
	return Identity2().
		Add(Outer2(u, r1.Sub(u))).
		Add(Outer2(w, r2.Sub(w)))
}
