// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 implements basic math functions which operate
// directly on float32 numbers, without the float64 round trip the
// standard math package forces. The trig and root functions delegate
// to chewxy/math32, which carries native float32 implementations;
// that precision matches the single-precision vector/matrix algebra
// used throughout the geometry pipeline.
package math32

import (
	cm32 "github.com/chewxy/math32"
)

const Pi = cm32.Pi
const degreeToRadiansFactor = Pi / 180
const radianToDegreesFactor = 180.0 / Pi

var Infinity = cm32.Inf(1)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {

	return degrees * degreeToRadiansFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {

	return radians * radianToDegreesFactor
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp(x, a, b float32) float32 {

	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// ClampInt clamps x to the provided closed interval [a, b]
func ClampInt(x, a, b int) int {

	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

func Abs(v float32) float32 {
	return cm32.Abs(v)
}

func Acos(v float32) float32 {
	return cm32.Acos(v)
}

func Asin(v float32) float32 {
	return cm32.Asin(v)
}

func Atan(v float32) float32 {
	return cm32.Atan(v)
}

func Atan2(y, x float32) float32 {
	return cm32.Atan2(y, x)
}

func Ceil(v float32) float32 {
	return cm32.Ceil(v)
}

func Cos(v float32) float32 {
	return cm32.Cos(v)
}

func Floor(v float32) float32 {
	return cm32.Floor(v)
}

func Inf(sign int) float32 {
	return cm32.Inf(sign)
}

func Round(v float32) float32 {
	return Floor(v + 0.5)
}

func IsNaN(v float32) bool {
	return cm32.IsNaN(v)
}

func Sin(v float32) float32 {
	return cm32.Sin(v)
}

func Sqrt(v float32) float32 {
	return cm32.Sqrt(v)
}

func Max(a, b float32) float32 {
	return cm32.Max(a, b)
}

func Min(a, b float32) float32 {
	return cm32.Min(a, b)
}

func Mod(a, b float32) float32 {
	return cm32.Mod(a, b)
}

func NaN() float32 {
	return cm32.NaN()
}

func Pow(a, b float32) float32 {
	return cm32.Pow(a, b)
}

func Tan(v float32) float32 {
	return cm32.Tan(v)
}
