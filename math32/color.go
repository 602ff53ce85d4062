// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Color describes an RGB color with float32 components in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
}

// ColorName returns the standard web color with the given name (case
// insensitive). Unknown names yield black.
func ColorName(name string) Color {
	c, _ := IsColorName(name)
	return c
}

// ColorHex returns the color whose RGB components are packed in value as a
// hex color number (0xRRGGBB).
func ColorHex(value uint) Color {
	return Color{
		R: float32(value>>16&255) / 255,
		G: float32(value>>8&255) / 255,
		B: float32(value&255) / 255,
	}
}

// Lerp returns the componentwise interpolation between c and other: t=0
// yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// IsColorName reports whether name is a valid standard web color name,
// looked up (case-insensitively) from the X11/CSS table shipped by
// golang.org/x/image/colornames, along with the color itself.
func IsColorName(name string) (Color, bool) {
	rgba, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return Color{
		R: float32(rgba.R) / 255,
		G: float32(rgba.G) / 255,
		B: float32(rgba.B) / 255,
	}, true
}
