// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import "github.com/hyperline/engine/vector"

// interval is a sub-range of the line's parameter t in [0, 1]. An empty
// interval is represented with Lo > Hi.
type interval struct {
	Lo, Hi float32
}

func fullInterval() interval { return interval{Lo: 0, Hi: 1} }

func (iv interval) empty() bool { return iv.Lo > iv.Hi }

func (iv interval) intersect(other interval) interval {
	lo := iv.Lo
	if other.Lo > lo {
		lo = other.Lo
	}
	hi := iv.Hi
	if other.Hi < hi {
		hi = other.Hi
	}
	return interval{Lo: lo, Hi: hi}
}

// passInterval returns the sub-interval of [0, 1] along line for which the
// point satisfies plane (signed distance >= 0).
func passInterval[V vector.Vector[V]](line vector.Line[V], plane vector.Plane[V]) interval {
	s0 := plane.SignedDistance(line.P0)
	s1 := plane.SignedDistance(line.P1)

	switch {
	case s0 >= 0 && s1 >= 0:
		return fullInterval()
	case s0 < 0 && s1 < 0:
		return interval{Lo: 1, Hi: 0} // empty
	case s0 < 0:
		return interval{Lo: s0 / (s0 - s1), Hi: 1}
	default:
		return interval{Lo: 0, Hi: s0 / (s0 - s1)}
	}
}

// ConvexClip cuts the portion of line that lies inside the convex region
// bounded by planes (the intersection of every plane's positive half-space)
// out of the line, and returns what remains: zero, one, or two line
// segments. This is the operation an occluder's boundary planes need: the
// region enclosed by the boundary planes is the occluder's shadow, and a
// drawn line passing through that shadow must have the hidden middle
// section removed, which can leave up to two visible pieces.
func ConvexClip[V vector.Vector[V]](line vector.Line[V], planes []vector.Plane[V]) []vector.Line[V] {
	if len(planes) == 0 {
		return []vector.Line[V]{line}
	}

	interior := fullInterval()
	for _, p := range planes {
		interior = interior.intersect(passInterval(line, p))
		if interior.empty() {
			break
		}
	}

	const eps = 1e-6
	if interior.empty() {
		return []vector.Line[V]{line}
	}
	if interior.Lo <= eps && interior.Hi >= 1-eps {
		return nil
	}

	at := func(t float32) V { return vector.Linterp(line.P0, line.P1, t) }

	if interior.Lo <= eps {
		return []vector.Line[V]{{P0: at(interior.Hi), P1: line.P1}}
	}
	if interior.Hi >= 1-eps {
		return []vector.Line[V]{{P0: line.P0, P1: at(interior.Lo)}}
	}
	return []vector.Line[V]{
		{P0: line.P0, P1: at(interior.Lo)},
		{P0: at(interior.Hi), P1: line.P1},
	}
}
