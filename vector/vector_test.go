// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormSqAndNorm(t *testing.T) {
	v := NewVec3(3, 4, 0)
	assert.Equal(t, float32(25), NormSq(v))
	assert.Equal(t, float32(5), Norm(v))
}

func TestNormalize(t *testing.T) {
	v := NewVec3(0, 5, 0)
	n := Normalize(v)
	assert.InDelta(t, 1, Norm(n), 1e-6)
	assert.InDelta(t, 1, n.Y, 1e-6)
}

func TestNormalizeZero(t *testing.T) {
	z := Vec3{}
	assert.Equal(t, z, Normalize(z))
}

func TestLinterp(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(10, 20)
	assert.Equal(t, NewVec2(5, 10), Linterp(a, b, 0.5))
	assert.Equal(t, a, Linterp(a, b, 0))
	assert.Equal(t, b, Linterp(a, b, 1))
}

func TestIsClose(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(1, 1, 1.00001)
	assert.True(t, IsClose(a, b))
	c := NewVec3(1, 1, 2)
	assert.False(t, IsClose(a, c))
}

func TestZeroOnesOneHot(t *testing.T) {
	witness := Vec4{}
	assert.Equal(t, NewVec4(0, 0, 0, 0), Zero(witness))
	assert.Equal(t, NewVec4(1, 1, 1, 1), Ones(witness))
	assert.Equal(t, NewVec4(0, 1, 0, 0), OneHot(witness, 1))
}

func TestMapZipMapFold(t *testing.T) {
	v := NewVec3(1, 2, 3)
	doubled := Map(v, func(c float32) float32 { return c * 2 })
	assert.Equal(t, NewVec3(2, 4, 6), doubled)

	summed := ZipMap(v, doubled, func(a, b float32) float32 { return a + b })
	assert.Equal(t, NewVec3(3, 6, 9), summed)

	total := Fold(v, 0, func(acc, c float32) float32 { return acc + c })
	assert.Equal(t, float32(6), total)
}

func TestComponentOutOfRangePanics(t *testing.T) {
	v := NewVec3(1, 2, 3)
	assert.Panics(t, func() { v.Component(3) })
	assert.Panics(t, func() { v.WithComponent(-4, 0) })
}

func TestComponentNegativeIndex(t *testing.T) {
	v := NewVec3(1, 2, 3)
	assert.Equal(t, float32(3), v.Component(-1))
	assert.Equal(t, float32(2), v.Component(-2))
	assert.Equal(t, float32(1), v.Component(-3))

	updated := v.WithComponent(-1, 9)
	assert.Equal(t, NewVec3(1, 2, 9), updated)
}

func TestProjections(t *testing.T) {
	v4 := NewVec4(1, 2, 3, 4)
	v3 := Project4(v4)
	assert.Equal(t, NewVec3(1, 2, 3), v3)

	v2 := Project3(v3)
	assert.Equal(t, NewVec2(1, 2), v2)
}
