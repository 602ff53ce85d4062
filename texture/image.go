// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"image/color"

	"github.com/hyperline/engine/vector"
)

// Image returns a texture that samples img's luminance on an n x n grid
// over the frame's local square and draws a short horizontal tick wherever
// two horizontally adjacent samples straddle threshold (0-1, against
// img's normalized gray value). This is the bitmap-driven analogue of Grid:
// an image authored once can draw arbitrary line art onto a face.
func Image[V vector.Vector[V]](img image.Image, threshold float32, n int) FaceTexture[V] {
	return func(frame Frame[V]) []vector.Line[V] {
		if n <= 0 {
			return nil
		}
		bounds := img.Bounds()
		sample := func(u, v float32) float32 {
			px := bounds.Min.X + int(u*float32(bounds.Dx()-1))
			py := bounds.Min.Y + int(v*float32(bounds.Dy()-1))
			gray := color.GrayModel.Convert(img.At(px, py)).(color.Gray)
			return float32(gray.Y) / 255
		}

		var lines []vector.Line[V]
		for row := 0; row <= n; row++ {
			v := float32(row) / float32(n)
			prev := sample(0, v)
			for col := 1; col <= n; col++ {
				u := float32(col) / float32(n)
				cur := sample(u, v)
				if (prev < threshold) != (cur < threshold) {
					lines = append(lines, vector.Line[V]{
						P0: frame.At(float32(col-1)/float32(n), v),
						P1: frame.At(u, v),
					})
				}
				prev = cur
			}
		}
		return lines
	}
}
