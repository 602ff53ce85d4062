// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperline/engine/vector"
)

func TestNearPlaneUsesLastFrameRowAndZNearOffset(t *testing.T) {
	cam := Camera[vector.Vec3, vector.Mat3]{
		Pos:   vector.NewVec3(0, 0, -5),
		Frame: vector.Identity3(),
		ZNear: 0.1,
	}

	plane := cam.NearPlane(3)
	assert.Equal(t, vector.NewVec3(0, 0, 1), plane.Normal)
	assert.InDelta(t, -4.9, plane.Threshold, 1e-6)
}

func TestViewTransformIdentityFrameIsTranslationOnly(t *testing.T) {
	cam := Camera[vector.Vec3, vector.Mat3]{Pos: vector.NewVec3(1, 2, 3), Frame: vector.Identity3()}
	got := ViewTransform[vector.Vec3, vector.Mat3](cam, vector.NewVec3(4, 4, 4))
	assert.Equal(t, vector.NewVec3(3, 2, 1), got)
}

func TestProjectScalesByFocalOverZ(t *testing.T) {
	got := Project[vector.Vec3, vector.Vec2](vector.NewVec3(2, 4, 2), 1, vector.Project3)
	assert.InDelta(t, 1, got.X, 1e-6)
	assert.InDelta(t, 2, got.Y, 1e-6)
}

func TestProjectOnViewAxisAtFocalYieldsZero(t *testing.T) {
	got := Project[vector.Vec3, vector.Vec2](vector.NewVec3(0, 0, 1), 1, vector.Project3)
	assert.InDelta(t, 0, got.X, 1e-6)
	assert.InDelta(t, 0, got.Y, 1e-6)
}

func TestProjectNearZeroZSubstitutesEpsilon(t *testing.T) {
	got := Project[vector.Vec3, vector.Vec2](vector.NewVec3(1, 1, 0), 1, vector.Project3)
	assert.Greater(t, got.X, float32(1000))
	assert.Greater(t, got.Y, float32(1000))
}
