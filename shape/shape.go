// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/hyperline/engine/vector"

// Shape is a polytope: a set of reference verts connected by edges into
// faces, plus the subface adjacency visibility needs and the world-pose
// geometry produced by Transform.
type Shape[V vector.Vector[V], M vector.Matrix[V, M]] struct {
	VertsRef []V
	Verts    []V

	Edges    []Edge
	Faces    []Face[V]
	SubFaces []SubFace

	// Radius is the reference-pose bounding sphere radius: max ||v|| over
	// VertsRef. occlusion.BoundingSphere scales it by Pose.Scale.
	Radius float32

	Pose Pose[V, M]

	// Transparent shapes are always visible on every face and never occlude
	// anything, matching the "don't test occlusion against glass" rule.
	Transparent bool

	// TwoSided shapes (flat walls, billboards) are drawn from either side:
	// every face is always visible, and boundary construction flips a face's
	// normal towards the camera when the camera is behind it.
	TwoSided bool
}

// NewShape builds a shape from its reference verts, edges, and per-face
// (edge-index-list, reference normal) pairs, in the identity pose. dim is
// the ambient dimension (3 or 4), used to size the subface adjacency
// threshold. identity must be the identity matrix of the concrete type M.
func NewShape[V vector.Vector[V], M vector.Matrix[V, M]](
	vertsRef []V,
	edges []Edge,
	faceSpecs []FaceSpec[V],
	dim int,
	identity M,
) *Shape[V, M] {
	faces := buildFaces(vertsRef, edges, faceSpecs)
	return newShape(vertsRef, edges, faces, CalcSubFaces(faces, edges, dim), identity)
}

// NewSingleFace builds a shape with exactly one face whose boundary
// subfaces are given explicitly: subFaceVertIs lists, per boundary element,
// the vertex indices spanning it. A flat polygon lists its rim edges (what
// NewShape derives on its own for a single face); a 4D face built from a 3D
// convex sub-shape lists the sub-shape's faces.
func NewSingleFace[V vector.Vector[V], M vector.Matrix[V, M]](
	vertsRef []V,
	edges []Edge,
	faceSpec FaceSpec[V],
	subFaceVertIs [][]int,
	identity M,
) *Shape[V, M] {
	faces := buildFaces(vertsRef, edges, []FaceSpec[V]{faceSpec})
	subs := make([]SubFace, len(subFaceVertIs))
	for i, vertIs := range subFaceVertIs {
		subs[i] = BoundarySubFace{Face: 0, VertIs: vertIs}
	}
	return newShape(vertsRef, edges, faces, subs, identity)
}

func buildFaces[V vector.Vector[V]](vertsRef []V, edges []Edge, faceSpecs []FaceSpec[V]) []Face[V] {
	faces := make([]Face[V], len(faceSpecs))
	for i, spec := range faceSpecs {
		vertIs := vertIsFromEdges(spec.EdgeIs, edges)
		centerRef := averageVerts(vertsRef, vertIs)
		faces[i] = NewFace(spec.EdgeIs, edges, spec.NormalRef, centerRef)
	}
	return faces
}

func newShape[V vector.Vector[V], M vector.Matrix[V, M]](
	vertsRef []V, edges []Edge, faces []Face[V], subFaces []SubFace, identity M,
) *Shape[V, M] {
	s := &Shape[V, M]{
		VertsRef: vertsRef,
		Verts:    make([]V, len(vertsRef)),
		Edges:    edges,
		Faces:    faces,
		SubFaces: subFaces,
		Radius:   maxNorm(vertsRef),
		Pose: Pose[V, M]{
			Frame: identity,
			Pos:   vector.Zero(vertsRef[0]),
			Scale: 1,
		},
	}
	s.Transform()
	return s
}

// FaceSpec is the construction-time description of one face: which edges
// bound it and what its reference-pose normal is. A shape generator (a cube,
// a hypercube, ...) supplies one FaceSpec per face; the center is derived.
type FaceSpec[V any] struct {
	EdgeIs    []int
	NormalRef V
}

// Transform recomputes every world-space quantity (Verts, each face's
// Normal/Center/Threshold) from the current Pose. SetPos and Rotate call it
// themselves; call it after any direct Pose mutation.
func (s *Shape[V, M]) Transform() {
	for i, vr := range s.VertsRef {
		s.Verts[i] = s.Pose.Frame.MulVec(vr.Scale(s.Pose.Scale)).Add(s.Pose.Pos)
	}
	for i := range s.Faces {
		f := &s.Faces[i]
		f.Normal = s.Pose.Frame.MulVec(f.NormalRef)
		f.Center = s.Pose.Frame.MulVec(f.CenterRef.Scale(s.Pose.Scale)).Add(s.Pose.Pos)
		f.Threshold = f.Normal.Dot(f.Center)
	}
}

// SetPos moves the shape to the given world position and retransforms.
func (s *Shape[V, M]) SetPos(pos V) {
	s.Pose.Pos = pos
	s.Transform()
}

// Rotate composes rotMat onto the shape's current frame and retransforms.
// Callers build rotMat with vector.RotationMatrix3/RotationMatrix4, typically
// rotating two of the frame's own rows into each other:
//
//	rot := vector.RotationMatrix4(shape.Pose.Frame.Row(0), shape.Pose.Frame.Row(1), &angle)
//	shape.Rotate(rot)
func (s *Shape[V, M]) Rotate(rotMat M) {
	s.Pose.Frame = s.Pose.Frame.MulMat(rotMat)
	s.Transform()
}

// Stretch returns a new shape with VertsRef rescaled per-component by
// factor, face centers recomputed from the rescaled verts, and the result
// transformed under the same pose as s.
func (s *Shape[V, M]) Stretch(factor V) *Shape[V, M] {
	newVertsRef := make([]V, len(s.VertsRef))
	for i, vr := range s.VertsRef {
		newVertsRef[i] = componentwiseMul(vr, factor)
	}

	faces := make([]Face[V], len(s.Faces))
	for i, f := range s.Faces {
		centerRef := averageVerts(newVertsRef, f.VertIs)
		nf := f
		nf.CenterRef = centerRef
		nf.Center = centerRef
		faces[i] = nf
	}

	out := &Shape[V, M]{
		VertsRef:    newVertsRef,
		Verts:       make([]V, len(newVertsRef)),
		Edges:       s.Edges,
		Faces:       faces,
		SubFaces:    s.SubFaces,
		Radius:      maxNorm(newVertsRef),
		Pose:        s.Pose,
		Transparent: s.Transparent,
		TwoSided:    s.TwoSided,
	}
	out.Transform()
	return out
}

func averageVerts[V vector.Vector[V]](verts []V, vertIs []int) V {
	sum := vector.Zero(verts[0])
	for _, vi := range vertIs {
		sum = sum.Add(verts[vi])
	}
	return sum.Scale(1 / float32(len(vertIs)))
}

func maxNorm[V vector.Vector[V]](verts []V) float32 {
	var max float32
	for _, v := range verts {
		if n := vector.Norm(v); n > max {
			max = n
		}
	}
	return max
}

func componentwiseMul[V vector.Vector[V]](v, factor V) V {
	out := v
	for i := 0; i < v.Dim(); i++ {
		out = out.WithComponent(i, v.Component(i)*factor.Component(i))
	}
	return out
}
