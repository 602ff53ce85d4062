// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package occlusion

import "github.com/hyperline/engine/vector"

// overlapEpsilon is the slack StaticSeparate allows between two shapes'
// vertex-extreme projection ranges before declaring them non-separated.
const overlapEpsilon = 1e-6

// Separator is a cached separating hyperplane between two static shapes:
// computed once by StaticSeparate and reused every frame via Apply, since
// two shapes that never move relative to each other have a depth order that
// never changes — only which side of the plane the camera sits on does. A
// zero Separator (Valid false) records that no separating axis was found,
// so the search is not repeated either.
type Separator[V vector.Vector[V]] struct {
	Normal V
	// Lo and Hi bound the gap between the two shapes' projections onto
	// Normal: the "lo" shape's extent ends at Lo, the "hi" shape's begins at
	// Hi, with Lo <= Hi.
	Lo, Hi float32
	// HiIsShape1 records which shape occupies the Hi side of the gap.
	HiIsShape1 bool
	Valid      bool
}

// Apply reports which shape is nearer cameraPos, using the cached
// separating plane: the shape whose side of the gap cameraPos projects
// beyond is the nearer one. A camera inside the gap itself sees the shapes
// side by side (NoFront); an invalid separator reports Unknown.
func (s Separator[V]) Apply(cameraPos V) Separation {
	if !s.Valid {
		return Unknown
	}
	k := s.Normal.Dot(cameraPos)
	switch {
	case k < s.Lo:
		if s.HiIsShape1 {
			return S2Front
		}
		return S1Front
	case k > s.Hi:
		if s.HiIsShape1 {
			return S1Front
		}
		return S2Front
	default:
		return NoFront
	}
}

// StaticSeparate searches the given candidate axes (the center-to-center
// direction first, then typically the world-space face normals of both
// shapes) for one along which verts1 and verts2 project to non-overlapping
// ranges, and returns the resulting cached Separator. Reports ok=false — and
// an invalid Separator, which callers should still cache — if no candidate
// axis separates them.
func StaticSeparate[V vector.Vector[V]](verts1, verts2 []V, axes []V) (Separator[V], bool) {
	for _, axis := range axes {
		if vector.NormSq(axis) <= overlapEpsilon {
			continue
		}
		n := vector.Normalize(axis)
		min1, max1 := projectExtent(verts1, n)
		min2, max2 := projectExtent(verts2, n)

		switch {
		case max1+overlapEpsilon < min2:
			return Separator[V]{Normal: n, Lo: max1, Hi: min2, HiIsShape1: false, Valid: true}, true
		case max2+overlapEpsilon < min1:
			return Separator[V]{Normal: n, Lo: max2, Hi: min1, HiIsShape1: true, Valid: true}, true
		}
	}
	return Separator[V]{}, false
}

func projectExtent[V vector.Vector[V]](verts []V, axis V) (min, max float32) {
	min = axis.Dot(verts[0])
	max = min
	for _, v := range verts[1:] {
		p := axis.Dot(v)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}
