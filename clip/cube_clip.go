// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import "github.com/hyperline/engine/vector"

// CubeClip clips line to the axis-aligned cube [-r, r]^len(axes), one pair
// of planes per entry in axes (each axis names a vector component index).
// Unlike ConvexClip, a cube clip keeps the interior directly: an AABB is
// itself a convex region built from the same per-plane pass intervals, so
// the result is always a single shrunk line, never split in two.
func CubeClip[V vector.Vector[V]](line vector.Line[V], r float32, axes []int) (vector.Line[V], bool) {
	interior := fullInterval()
	for _, axis := range axes {
		for _, sign := range [2]float32{1, -1} {
			s0 := sign*line.P0.Component(axis) + r
			s1 := sign*line.P1.Component(axis) + r
			interior = interior.intersect(passIntervalScalars(s0, s1))
			if interior.empty() {
				return vector.Line[V]{}, false
			}
		}
	}

	at := func(t float32) V { return vector.Linterp(line.P0, line.P1, t) }
	return vector.Line[V]{P0: at(interior.Lo), P1: at(interior.Hi)}, true
}

func passIntervalScalars(s0, s1 float32) interval {
	switch {
	case s0 >= 0 && s1 >= 0:
		return fullInterval()
	case s0 < 0 && s1 < 0:
		return interval{Lo: 1, Hi: 0}
	case s0 < 0:
		return interval{Lo: s0 / (s0 - s1), Hi: 1}
	default:
		return interval{Lo: 0, Hi: s0 / (s0 - s1)}
	}
}
