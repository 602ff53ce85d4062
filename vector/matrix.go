// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "github.com/hyperline/engine/math32"

// Matrix is satisfied by every concrete matrix type (Mat2, Mat3, Mat4). A
// matrix is stored as a row of D vectors of its own row type V, not as a
// flat column-major array: Row(i) returns the i-th row directly, MulVec
// applies the matrix to a vector on the right, and MulMat composes two
// frames (used when rotating a shape's current frame by a new rotation).
type Matrix[V any, M any] interface {
	Row(i int) V
	MulVec(V) V
	MulMat(M) M
}

// rotationComponents computes the shared Rodrigues-style quantities used by
// RotationMatrix3 and RotationMatrix4: the normalized input directions u, the
// component w of v2 orthogonal to u (zeroed out if v1 and v2 are
// anti-parallel), and the pair (r1, r2) that rotation_matrix's outer-product
// construction needs.
//
// If theta is nil, the rotation angle is taken to be the angle between v1 and
// v2. If v1 and v2 are (anti-)parallel, w degrades to the zero vector and the
// caller's outer-product terms vanish, so the resulting matrix is the
// identity. This is deliberate: the angle between anti-parallel vectors is
// ambiguous (infinitely many rotation planes share it), and guessing one
// would be worse than leaving the frame unrotated.
func rotationComponents[V Vector[V]](v1, v2 V, theta *float32) (u, w, r1, r2 V) {
	u = Normalize(v1)
	vn := Normalize(v2)

	var cosTh, sinTh float32
	if theta != nil {
		cosTh = math32.Cos(*theta)
		sinTh = math32.Sin(*theta)
	} else {
		cosTh = u.Dot(vn)
		sinTh = math32.Sqrt(math32.Max(0, 1-cosTh*cosTh))
	}

	w = vn.Sub(u.Scale(u.Dot(vn)))
	if IsClose(w, Zero(w)) {
		// no rotation plane: r1 = u and r2 = w = 0 make both outer-product
		// terms vanish, leaving the identity.
		return u, w, u, w
	}
	w = Normalize(w)

	r1 = u.Scale(cosTh).Sub(w.Scale(sinTh))
	r2 = u.Scale(sinTh).Add(w.Scale(cosTh))
	return u, w, r1, r2
}
