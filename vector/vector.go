// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements dimension-generic vector and matrix algebra for
// the 3D/4D geometry pipeline. Concrete vectors (Vec2, Vec3, Vec4) and
// matrices (Mat2, Mat3, Mat4) satisfy the Vector and Matrix constraints so
// that shape construction, visibility, and clipping code can be written once
// against V instead of once per dimension.
package vector

import "github.com/hyperline/engine/math32"

// Epsilon is the tolerance used by IsClose and the rotation-matrix
// degeneracy check below. Matches the original geometry's single-precision
// tolerance for "close to zero".
const Epsilon = 1e-4

// Vector is satisfied by every concrete vector type (Vec2, Vec3, Vec4).
// The type parameter V is the concrete vector itself, so methods can return
// and accept V by value instead of an interface.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Negate() V
	Scale(float32) V
	Dot(V) float32
	Dim() int
	Component(i int) float32
	WithComponent(i int, val float32) V
}

// NormSq returns the squared length of v. Cheaper than Norm when only
// relative magnitudes matter.
func NormSq[V Vector[V]](v V) float32 {
	return v.Dot(v)
}

// Norm returns the length of v.
func Norm[V Vector[V]](v V) float32 {
	return math32.Sqrt(NormSq(v))
}

// Normalize returns v scaled to unit length. A zero vector normalizes to
// itself (Scale by +Inf would produce NaNs otherwise); callers that need to
// detect this should check NormSq first.
func Normalize[V Vector[V]](v V) V {
	n := Norm(v)
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Linterp returns the linear interpolation between v1 and v2 at parameter x:
// x=0 yields v1, x=1 yields v2.
func Linterp[V Vector[V]](v1, v2 V, x float32) V {
	return v1.Scale(1 - x).Add(v2.Scale(x))
}

// IsClose reports whether v1 and v2 are within Epsilon of each other in
// squared norm.
func IsClose[V Vector[V]](v1, v2 V) bool {
	d := v1.Sub(v2)
	return NormSq(d) < Epsilon
}

// Zero returns the zero vector of v's dimension, using v only as a type
// witness (its components are never read).
func Zero[V Vector[V]](v V) V {
	return Constant(v, 0)
}

// Ones returns the all-ones vector of v's dimension.
func Ones[V Vector[V]](v V) V {
	return Constant(v, 1)
}

// Constant returns a vector of v's dimension with every component set to a.
func Constant[V Vector[V]](v V, a float32) V {
	out := v
	for i := 0; i < out.Dim(); i++ {
		out = out.WithComponent(i, a)
	}
	return out
}

// OneHot returns the i-th standard basis vector of v's dimension.
func OneHot[V Vector[V]](v V, i int) V {
	return Zero(v).WithComponent(i, 1)
}

// Map applies f to every component of v, returning a new vector of the same
// dimension.
func Map[V Vector[V]](v V, f func(float32) float32) V {
	out := v
	for i := 0; i < v.Dim(); i++ {
		out = out.WithComponent(i, f(v.Component(i)))
	}
	return out
}

// ZipMap applies f pairwise to the components of v1 and v2.
func ZipMap[V Vector[V]](v1, v2 V, f func(a, b float32) float32) V {
	out := v1
	for i := 0; i < v1.Dim(); i++ {
		out = out.WithComponent(i, f(v1.Component(i), v2.Component(i)))
	}
	return out
}

// Fold reduces v's components left-to-right starting from init.
func Fold[V Vector[V]](v V, init float32, f func(acc, c float32) float32) float32 {
	acc := init
	for i := 0; i < v.Dim(); i++ {
		acc = f(acc, v.Component(i))
	}
	return acc
}
