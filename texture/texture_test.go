// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperline/engine/vector"
)

func squareFrame() Frame[vector.Vec3] {
	return ComputeFrame([]vector.Vec3{
		vector.NewVec3(0, 0, 0),
		vector.NewVec3(1, 0, 0),
		vector.NewVec3(0, 1, 0),
	})
}

func TestComputeFrameOrthogonalizesV(t *testing.T) {
	f := squareFrame()
	assert.Equal(t, vector.NewVec3(0, 0, 0), f.Origin)
	assert.InDelta(t, 0, f.U.Dot(f.V), 1e-6)
}

func TestWireframeAddsNoLines(t *testing.T) {
	tex := Wireframe[vector.Vec3]()
	assert.Empty(t, tex(squareFrame()))
}

func TestGridProducesTwoLinesPerInteriorDivision(t *testing.T) {
	tex := Grid[vector.Vec3](4)
	lines := tex(squareFrame())
	assert.Len(t, lines, 2*3)
}

func TestGridZeroDivisionsProducesNoLines(t *testing.T) {
	tex := Grid[vector.Vec3](0)
	assert.Empty(t, tex(squareFrame()))
}

func TestImageTextureFindsTheSplitBetweenBlackAndWhiteHalves(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	tex := Image[vector.Vec3](img, 0.5, 10)
	lines := tex(squareFrame())
	assert.NotEmpty(t, lines)
}
