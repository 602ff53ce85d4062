// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip implements line-vs-plane clipping: the near-clip and
// view-cube clip every drawn line goes through, and the convex-region
// clip used to cut an occluding shape's silhouette out of a line.
package clip

import "github.com/hyperline/engine/vector"

// PlaneClip clips line against a single plane, keeping the side the normal
// points towards (biased by smallZ, a small positive slack that treats
// points just barely on the wrong side as still passing — used for the near
// clip plane to avoid flicker at the boundary). Returns ok=false if the
// entire line is on the far side.
func PlaneClip[V vector.Vector[V]](line vector.Line[V], plane vector.Plane[V], smallZ float32) (vector.Line[V], bool) {
	s0 := plane.SignedDistance(line.P0) + smallZ
	s1 := plane.SignedDistance(line.P1) + smallZ
	in0 := s0 >= 0
	in1 := s1 >= 0

	switch {
	case in0 && in1:
		return line, true
	case !in0 && !in1:
		return vector.Line[V]{}, false
	default:
		t := s0 / (s0 - s1)
		cross := vector.Linterp(line.P0, line.P1, t)
		if in0 {
			return vector.Line[V]{P0: line.P0, P1: cross}, true
		}
		return vector.Line[V]{P0: cross, P1: line.P1}, true
	}
}
