// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperline/engine/vector"
)

// newTestCube builds an axis-aligned cube of half-width 1, centered at the
// origin, with one face per axis direction — the same construction a real
// shape.NewCube constructor would perform, inlined here to exercise Shape
// without depending on a concrete shape-library package.
func newTestCube() *Shape[vector.Vec3, vector.Mat3] {
	v := func(x, y, z float32) vector.Vec3 { return vector.NewVec3(x, y, z) }
	verts := []vector.Vec3{
		v(-1, -1, -1), v(1, -1, -1), v(1, 1, -1), v(-1, 1, -1),
		v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1),
	}
	edges := []Edge{
		NewEdge(0, 1), NewEdge(1, 2), NewEdge(2, 3), NewEdge(3, 0),
		NewEdge(4, 5), NewEdge(5, 6), NewEdge(6, 7), NewEdge(7, 4),
		NewEdge(0, 4), NewEdge(1, 5), NewEdge(2, 6), NewEdge(3, 7),
	}
	faceSpecs := []FaceSpec[vector.Vec3]{
		{EdgeIs: []int{0, 1, 2, 3}, NormalRef: v(0, 0, -1)},
		{EdgeIs: []int{4, 5, 6, 7}, NormalRef: v(0, 0, 1)},
		{EdgeIs: []int{0, 9, 4, 8}, NormalRef: v(0, -1, 0)},
		{EdgeIs: []int{2, 11, 6, 10}, NormalRef: v(0, 1, 0)},
		{EdgeIs: []int{3, 8, 7, 11}, NormalRef: v(-1, 0, 0)},
		{EdgeIs: []int{1, 10, 5, 9}, NormalRef: v(1, 0, 0)},
	}
	return NewShape[vector.Vec3, vector.Mat3](verts, edges, faceSpecs, 3, vector.Identity3())
}

func TestNewShapeComputesFaceGeometry(t *testing.T) {
	cube := newTestCube()
	assert.Len(t, cube.Faces, 6)
	assert.InDelta(t, vector.Norm(vector.NewVec3(1, 1, 1)), cube.Radius, 1e-6)

	for _, f := range cube.Faces {
		assert.Len(t, f.VertIs, 4)
		assert.InDelta(t, f.Normal.Dot(f.Center), f.Threshold, 1e-6)
	}
}

func TestCalcSubFacesCubeHas12Adjacencies(t *testing.T) {
	cube := newTestCube()
	assert.Len(t, cube.SubFaces, 12)
	for _, sf := range cube.SubFaces {
		_, ok := sf.(ConvexSubFace)
		assert.True(t, ok)
	}
}

func TestNewShapeSingleFaceDerivesOneSubFacePerRimEdge(t *testing.T) {
	v := func(x, y, z float32) vector.Vec3 { return vector.NewVec3(x, y, z) }
	verts := []vector.Vec3{v(-1, -1, 0), v(1, -1, 0), v(1, 1, 0), v(-1, 1, 0)}
	edges := []Edge{NewEdge(0, 1), NewEdge(1, 2), NewEdge(2, 3), NewEdge(3, 0)}
	faceSpecs := []FaceSpec[vector.Vec3]{
		{EdgeIs: []int{0, 1, 2, 3}, NormalRef: v(0, 0, 1)},
	}
	sq := NewShape[vector.Vec3, vector.Mat3](verts, edges, faceSpecs, 3, vector.Identity3())

	assert.Len(t, sq.SubFaces, len(edges))
	for i, sf := range sq.SubFaces {
		b, ok := sf.(BoundarySubFace)
		assert.True(t, ok)
		e := edges[sq.Faces[0].EdgeIs[i]]
		assert.Equal(t, []int{e.V0, e.V1}, b.VertIs)
	}
}

func TestSetPosTranslatesVertsAndFaces(t *testing.T) {
	cube := newTestCube()
	offset := vector.NewVec3(5, 0, 0)
	cube.SetPos(offset)

	for i, v := range cube.Verts {
		assert.InDelta(t, cube.VertsRef[i].X+5, v.X, 1e-6)
	}
	for _, f := range cube.Faces {
		assert.InDelta(t, f.Normal.Dot(f.Center), f.Threshold, 1e-6)
	}
}

func TestTransformTwiceIsIdempotent(t *testing.T) {
	cube := newTestCube()
	cube.SetPos(vector.NewVec3(1, 2, 3))

	verts := append([]vector.Vec3(nil), cube.Verts...)
	faces := append([]Face[vector.Vec3](nil), cube.Faces...)

	cube.Transform()
	assert.Equal(t, verts, cube.Verts)
	assert.Equal(t, faces, cube.Faces)
}

func TestRotateComposesFrame(t *testing.T) {
	cube := newTestCube()
	angle := float32(1.5707963) // pi/2
	rot := vector.RotationMatrix3(cube.Pose.Frame.Row(0), cube.Pose.Frame.Row(1), &angle)
	cube.Rotate(rot)

	// the frame's X axis should now point along world +Y.
	rotatedX := cube.Pose.Frame.MulVec(vector.NewVec3(1, 0, 0))
	assert.InDelta(t, 0, vector.Norm(rotatedX.Sub(vector.NewVec3(0, 1, 0))), 1e-4)
}

func TestStretchRescalesVertsAndFaceCenters(t *testing.T) {
	cube := newTestCube()
	stretched := cube.Stretch(vector.NewVec3(2, 1, 1))

	assert.InDelta(t, 2, stretched.VertsRef[1].X, 1e-6)
	assert.InDelta(t, -1, stretched.VertsRef[1].Y, 1e-6)

	for _, f := range stretched.Faces {
		assert.InDelta(t, f.Normal.Dot(f.Center), f.Threshold, 1e-6)
	}
}
