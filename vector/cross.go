// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// RimCross3 is the 2-ary generalized cross product for 3D: given exactly 2
// vectors, it returns a vector perpendicular to both. Used by
// visibility.CalcBoundaries to build the boundary planes of a single-face 3D
// shape from consecutive pairs of its rim vertices.
func RimCross3(vs []Vec3) Vec3 {
	if len(vs) != 2 {
		panic("vector: RimCross3 requires exactly 2 vectors")
	}
	return vs[0].Cross(vs[1])
}

// RimCross4 is the 3-ary generalized cross product for 4D: given exactly 3
// vectors, it returns the vector perpendicular to all three, computed as the
// 4D analogue of the 3D cross product via cofactor expansion.
func RimCross4(vs []Vec4) Vec4 {
	if len(vs) != 3 {
		panic("vector: RimCross4 requires exactly 3 vectors")
	}
	a, b, c := vs[0], vs[1], vs[2]

	minor := func(skip int) float32 {
		// 3x3 determinant of the rows [a,b,c] with column skip removed.
		idx := [4]int{0, 1, 2, 3}
		cols := make([]int, 0, 3)
		for _, i := range idx {
			if i != skip {
				cols = append(cols, i)
			}
		}
		m := [3][3]float32{
			{a.Component(cols[0]), a.Component(cols[1]), a.Component(cols[2])},
			{b.Component(cols[0]), b.Component(cols[1]), b.Component(cols[2])},
			{c.Component(cols[0]), c.Component(cols[1]), c.Component(cols[2])},
		}
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	}

	return Vec4{
		X: minor(0),
		Y: -minor(1),
		Z: minor(2),
		W: -minor(3),
	}
}
