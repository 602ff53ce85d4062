// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperline/engine/shape"
	"github.com/hyperline/engine/vector"
)

func newTestCube() *shape.Shape[vector.Vec3, vector.Mat3] {
	v := vector.NewVec3
	verts := []vector.Vec3{
		v(-1, -1, -1), v(1, -1, -1), v(1, 1, -1), v(-1, 1, -1),
		v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1),
	}
	edges := []shape.Edge{
		shape.NewEdge(0, 1), shape.NewEdge(1, 2), shape.NewEdge(2, 3), shape.NewEdge(3, 0),
		shape.NewEdge(4, 5), shape.NewEdge(5, 6), shape.NewEdge(6, 7), shape.NewEdge(7, 4),
		shape.NewEdge(0, 4), shape.NewEdge(1, 5), shape.NewEdge(2, 6), shape.NewEdge(3, 7),
	}
	faceSpecs := []shape.FaceSpec[vector.Vec3]{
		{EdgeIs: []int{0, 1, 2, 3}, NormalRef: v(0, 0, -1)},
		{EdgeIs: []int{4, 5, 6, 7}, NormalRef: v(0, 0, 1)},
		{EdgeIs: []int{0, 9, 4, 8}, NormalRef: v(0, -1, 0)},
		{EdgeIs: []int{2, 11, 6, 10}, NormalRef: v(0, 1, 0)},
		{EdgeIs: []int{3, 8, 7, 11}, NormalRef: v(-1, 0, 0)},
		{EdgeIs: []int{1, 10, 5, 9}, NormalRef: v(1, 0, 0)},
	}
	return shape.NewShape[vector.Vec3, vector.Mat3](verts, edges, faceSpecs, 3, vector.Identity3())
}

func TestUpdateVisibilityFromOutsideCorner(t *testing.T) {
	cube := newTestCube()
	// a camera far along +X,+Y,+Z sees exactly the three faces whose
	// normals have a positive component in that direction.
	UpdateVisibility(cube, vector.NewVec3(10, 10, 10))

	visibleCount := 0
	for _, f := range cube.Faces {
		if f.Visible {
			visibleCount++
		}
	}
	assert.Equal(t, 3, visibleCount)
}

func TestUpdateVisibilityAxisAlignedSeesOnlyTheFacingFace(t *testing.T) {
	cube := newTestCube()
	// straight down an axis, only the face whose outward normal points at
	// the camera is visible.
	UpdateVisibility(cube, vector.NewVec3(0, 0, -3))
	for i, f := range cube.Faces {
		assert.Equal(t, i == 0, f.Visible, "face %d", i) // face 0 is z=-1
	}

	UpdateVisibility(cube, vector.NewVec3(0, 0, 3))
	for i, f := range cube.Faces {
		assert.Equal(t, i == 1, f.Visible, "face %d", i) // face 1 is z=+1
	}
}

func TestUpdateVisibilityTransparentForcesAllVisible(t *testing.T) {
	cube := newTestCube()
	cube.Transparent = true
	UpdateVisibility(cube, vector.NewVec3(0, 0, -10))
	for _, f := range cube.Faces {
		assert.True(t, f.Visible)
	}
}

func TestCalcBoundariesFromOutsideCornerHasNineBoundaryPlanes(t *testing.T) {
	cube := newTestCube()
	camera := vector.NewVec3(10, 10, 10)
	UpdateVisibility(cube, camera)

	boundaries := CalcBoundaries[vector.Vec3, vector.Mat3](cube, camera, nil)
	// 3 visible-face planes + one interpolated plane per visible/hidden
	// shared edge (6 of the cube's 12 edges split that way) = 9.
	assert.Len(t, boundaries, 9)

	// A point directly behind the cube from the camera is occluded: it sits
	// on the positive side of every boundary plane. The camera itself never
	// does.
	hidden := vector.NewVec3(-5, -5, -5)
	cameraOccluded := true
	for _, p := range boundaries {
		assert.GreaterOrEqual(t, p.SignedDistance(hidden), float32(-1e-4))
		if p.SignedDistance(camera) < 0 {
			cameraOccluded = false
		}
	}
	assert.False(t, cameraOccluded)
}

func TestCalcBoundariesSingleFaceSquare(t *testing.T) {
	v := vector.NewVec3
	verts := []vector.Vec3{v(-1, -1, 0), v(1, -1, 0), v(1, 1, 0), v(-1, 1, 0)}
	edges := []shape.Edge{
		shape.NewEdge(0, 1), shape.NewEdge(1, 2), shape.NewEdge(2, 3), shape.NewEdge(3, 0),
	}
	faceSpecs := []shape.FaceSpec[vector.Vec3]{
		{EdgeIs: []int{0, 1, 2, 3}, NormalRef: v(0, 0, 1)},
	}
	sq := shape.NewShape[vector.Vec3, vector.Mat3](verts, edges, faceSpecs, 3, vector.Identity3())

	camera := v(0, 0, 5)
	UpdateVisibility(sq, camera)
	boundaries := CalcBoundaries[vector.Vec3, vector.Mat3](sq, camera, vector.RimCross3)
	// the face's own plane, plus one side plane per rim-edge subface. The
	// rim planes pass through the camera (threshold = normal . camera).
	assert.Len(t, boundaries, 1+len(edges))
	for _, p := range boundaries[1:] {
		assert.InDelta(t, 0, p.SignedDistance(camera), 1e-4)
	}

	// a point behind the face on the camera's axis is occluded by it.
	hidden := v(0, 0, -5)
	for _, p := range boundaries {
		assert.GreaterOrEqual(t, p.SignedDistance(hidden), float32(-1e-4))
	}
}

func TestCalcBoundariesSkipsInvisibleSingleFace(t *testing.T) {
	v := vector.NewVec3
	verts := []vector.Vec3{v(-1, -1, 0), v(1, -1, 0), v(1, 1, 0), v(-1, 1, 0)}
	edges := []shape.Edge{
		shape.NewEdge(0, 1), shape.NewEdge(1, 2), shape.NewEdge(2, 3), shape.NewEdge(3, 0),
	}
	faceSpecs := []shape.FaceSpec[vector.Vec3]{
		{EdgeIs: []int{0, 1, 2, 3}, NormalRef: v(0, 0, 1)},
	}
	sq := shape.NewShape[vector.Vec3, vector.Mat3](verts, edges, faceSpecs, 3, vector.Identity3())

	// viewed from behind, a one-sided face is invisible and occludes nothing.
	camera := v(0, 0, -5)
	UpdateVisibility(sq, camera)
	assert.Empty(t, CalcBoundaries[vector.Vec3, vector.Mat3](sq, camera, vector.RimCross3))

	// flagged two-sided, the same view yields the full boundary set again.
	sq.TwoSided = true
	UpdateVisibility(sq, camera)
	boundaries := CalcBoundaries[vector.Vec3, vector.Mat3](sq, camera, vector.RimCross3)
	assert.Len(t, boundaries, 1+len(edges))
}

func TestCalcBoundaries4DSingleFaceCell(t *testing.T) {
	// one 3-cell (a cube at w=1) as the only face of a 4D shape, the way a
	// 3D convex sub-shape becomes a single-face wall in 4D. Its boundary
	// subfaces are the sub-shape's own six faces, four vertices each — not
	// rim-adjacent vertex pairs.
	v := vector.NewVec4
	verts := []vector.Vec4{
		v(-1, -1, -1, 1), v(1, -1, -1, 1), v(1, 1, -1, 1), v(-1, 1, -1, 1),
		v(-1, -1, 1, 1), v(1, -1, 1, 1), v(1, 1, 1, 1), v(-1, 1, 1, 1),
	}
	edges := []shape.Edge{
		shape.NewEdge(0, 1), shape.NewEdge(1, 2), shape.NewEdge(2, 3), shape.NewEdge(3, 0),
		shape.NewEdge(4, 5), shape.NewEdge(5, 6), shape.NewEdge(6, 7), shape.NewEdge(7, 4),
		shape.NewEdge(0, 4), shape.NewEdge(1, 5), shape.NewEdge(2, 6), shape.NewEdge(3, 7),
	}
	faceSpec := shape.FaceSpec[vector.Vec4]{
		EdgeIs:    []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		NormalRef: v(0, 0, 0, -1),
	}
	subFaceVertIs := [][]int{
		{0, 1, 2, 3}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {2, 3, 7, 6},
		{0, 3, 7, 4}, {1, 2, 6, 5},
	}
	cell := shape.NewSingleFace[vector.Vec4, vector.Mat4](verts, edges, faceSpec, subFaceVertIs, vector.Identity4())

	camera := v(0, 0, 0, -4)
	UpdateVisibility(cell, camera)
	boundaries := CalcBoundaries[vector.Vec4, vector.Mat4](cell, camera, vector.RimCross4)
	assert.Len(t, boundaries, 1+len(subFaceVertIs))

	// every subface plane passes through the camera.
	for _, p := range boundaries[1:] {
		assert.InDelta(t, 0, p.SignedDistance(camera), 1e-4)
	}

	// a point straight behind the cell is in its shadow; a point far off to
	// one side at the same depth is not.
	hidden := v(0, 0, 0, 4)
	for _, p := range boundaries {
		assert.GreaterOrEqual(t, p.SignedDistance(hidden), float32(-1e-4))
	}
	outside := v(0, 0, 8, 4)
	occluded := true
	for _, p := range boundaries {
		if p.SignedDistance(outside) < 0 {
			occluded = false
		}
	}
	assert.False(t, occluded)
}
