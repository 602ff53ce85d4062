// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package occlusion

import "github.com/hyperline/engine/vector"

// DynamicSeparate is the cheap, per-frame bounding-sphere test, after John
// McIntosh (urticator.net). It works from the apex of the cone tangent to
// both spheres, the point dividing the center-to-center segment in the
// ratio of the radii: a camera whose projection onto the center axis lands
// between the spheres sees them side by side (NoFront), a camera outside
// the tangent cone sees them in disjoint view directions (also NoFront),
// and a camera inside the cone sees one sphere behind the other, ordered by
// which side of the apex it sits on. Overlapping spheres have no tangent
// cone and report Unknown, sending callers to StaticSeparate.
func DynamicSeparate[V vector.Vector[V]](b1, b2 BoundingSphere[V], cameraPos V) Separation {
	normal := b1.Pos.Sub(b2.Pos)
	d := vector.Norm(normal)
	r1, r2 := b1.Radius, b2.Radius
	if d <= r1+r2 {
		return Unknown
	}

	ratio := r1 / (r1 + r2)
	dist1 := d * ratio
	reg1 := cameraPos.Sub(b1.Pos.Sub(normal.Scale(ratio)))

	adj := reg1.Dot(normal) / d
	neg := r1 - dist1
	pos := d - r2 - dist1
	if adj >= neg && adj <= pos {
		return NoFront
	}

	hyp2 := reg1.Dot(reg1)
	adj2 := adj * adj
	opp2 := hyp2 - adj2

	rcone := r1 / dist1
	if opp2 >= hyp2*rcone*rcone {
		return NoFront
	}
	// adj > 0 puts the camera on sphere 1's side of the apex, so sphere 1
	// is the nearer of the two.
	if adj > 0 {
		return S1Front
	}
	return S2Front
}
