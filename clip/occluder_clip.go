// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import "github.com/hyperline/engine/vector"

// OccluderClip removes, from every line in lines, whatever portion falls
// inside the shadow bounded by boundaries (the planes CalcBoundaries
// produced for a single occluding shape). Each input line can turn into
// zero, one, or two output lines, so the result is folded back into a
// fresh slice rather than clipped in place.
func OccluderClip[V vector.Vector[V]](lines []vector.Line[V], boundaries []vector.Plane[V]) []vector.Line[V] {
	if len(boundaries) == 0 {
		return lines
	}

	out := make([]vector.Line[V], 0, len(lines))
	for _, line := range lines {
		out = append(out, ConvexClip(line, boundaries)...)
	}
	return out
}
