// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visibility

import (
	"github.com/hyperline/engine/shape"
	"github.com/hyperline/engine/vector"
)

// CalcBoundaries builds the set of planes bounding the region s occludes as
// seen from cameraPos: one plane per visible face, plus one silhouette plane
// per subface whose two faces disagree on visibility (or, for a single-face
// shape, per boundary subface of a visible face; an invisible single face
// yields no planes at all). Every plane is oriented with the
// occluded region on its positive side, so clip.ConvexClip can carve exactly
// the portion of a line that passes all of them. Silhouette and rim planes
// pass through cameraPos by construction; the visible-face planes cap the
// region so that geometry between the camera and s survives.
//
// rimCross computes the generalized cross product of exactly V.Dim()-1
// vectors; it is only used for single-face shapes (vector.RimCross3 or
// vector.RimCross4) and may be nil for any shape with more than one face.
func CalcBoundaries[V vector.Vector[V], M vector.Matrix[V, M]](
	s *shape.Shape[V, M],
	cameraPos V,
	rimCross func(vs []V) V,
) []vector.Plane[V] {
	var out []vector.Plane[V]
	for _, f := range s.Faces {
		if !f.Visible {
			continue
		}
		n := f.Normal
		if s.TwoSided && n.Dot(cameraPos.Sub(f.Center)) < 0 {
			n = n.Negate()
		}
		// occluded points lie behind the face, on the far side of its
		// plane from the camera.
		out = append(out, vector.Plane[V]{Normal: n.Negate(), Threshold: -n.Dot(f.Center)})
	}
	for _, sf := range s.SubFaces {
		switch t := sf.(type) {
		case shape.ConvexSubFace:
			fa, fb := s.Faces[t.FaceA], s.Faces[t.FaceB]
			if fa.Visible == fb.Visible {
				continue // not a silhouette edge: both sides agree
			}
			if p, ok := convexBoundary(fa, fb, cameraPos); ok {
				out = append(out, p)
			}
		case shape.BoundarySubFace:
			if !s.Faces[t.Face].Visible {
				continue
			}
			if p, ok := singleFaceBoundary(s.Faces[t.Face], t.VertIs, s.Verts, cameraPos, rimCross); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// convexBoundary interpolates the two faces' planes to the one point where
// the camera's signed distance crosses zero, producing the plane that
// separates "visible side" from "hidden side" along their shared edge. The
// result passes through the camera; it is negated so the shape's shadow
// lands on its positive side.
func convexBoundary[V vector.Vector[V]](faceA, faceB shape.Face[V], cameraPos V) (vector.Plane[V], bool) {
	kA := faceA.Normal.Dot(cameraPos) - faceA.Threshold
	kB := faceB.Normal.Dot(cameraPos) - faceB.Threshold
	denom := kA - kB
	if denom == 0 {
		return vector.Plane[V]{}, false
	}
	t := kA / denom
	normal := vector.Linterp(faceA.Normal, faceB.Normal, t).Negate()
	threshold := -lerpScalar(faceA.Threshold, faceB.Threshold, t)
	return vector.Plane[V]{Normal: normal, Threshold: threshold}, true
}

// singleFaceBoundary builds the boundary plane of one boundary subface of a
// single-face shape (a flat polygon, a "billboard", a 4D cell): the plane
// through cameraPos spanned by the subface's first Dim()-1 vertices,
// oriented with the face center (and so the face's shadow) on its positive
// side. Reports ok=false for a degenerate subface, or when rimCross is
// absent.
func singleFaceBoundary[V vector.Vector[V]](face shape.Face[V], vertIs []int, verts []V, cameraPos V, rimCross func(vs []V) V) (vector.Plane[V], bool) {
	span := cameraPos.Dim() - 1
	if rimCross == nil || len(vertIs) < span {
		return vector.Plane[V]{}, false
	}
	offsets := make([]V, span)
	for j := 0; j < span; j++ {
		offsets[j] = verts[vertIs[j]].Sub(cameraPos)
	}
	normal := rimCross(offsets)
	if vector.NormSq(normal) == 0 {
		return vector.Plane[V]{}, false
	}
	normal = vector.Normalize(normal)
	if normal.Dot(face.Center.Sub(cameraPos)) < 0 {
		normal = normal.Negate()
	}
	return vector.Plane[V]{Normal: normal, Threshold: normal.Dot(cameraPos)}, true
}

func lerpScalar(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
