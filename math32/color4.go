// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Color4 describes an RGBA color. It is the color type carried by every
// emitted draw line; the alpha channel survives the whole pipeline so a
// renderer can fade distant or partially occluded geometry.
type Color4 struct {
	R float32
	G float32
	B float32
	A float32
}

// Color4Name returns the standard web color with the given name (case
// insensitive) and alpha. Unknown names yield opaque-alpha black, as in
// ColorName.
func Color4Name(name string, alpha float32) Color4 {
	c := ColorName(name)
	return Color4{c.R, c.G, c.B, alpha}
}

// Color4Hex returns the color whose RGB components are packed in value as a
// hex color number, with the given alpha.
func Color4Hex(value uint, alpha float32) Color4 {
	c := ColorHex(value)
	return Color4{c.R, c.G, c.B, alpha}
}

// WithAlpha returns a copy of c with its alpha channel replaced.
func (c Color4) WithAlpha(a float32) Color4 {
	c.A = a
	return c
}

// Lerp returns the componentwise interpolation between c and other: t=0
// yields c, t=1 yields other.
func (c Color4) Lerp(other Color4, t float32) Color4 {
	return Color4{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ToColor returns c's RGB components, dropping alpha.
func (c Color4) ToColor() Color {
	return Color{c.R, c.G, c.B}
}
