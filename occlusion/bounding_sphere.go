// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package occlusion decides, for each pair of shapes the scene draws, which
// one is nearer the camera along their shared view direction — the
// information clip.OccluderClip needs to know which shape's boundary set to
// clip a given shape's lines against.
package occlusion

import "github.com/hyperline/engine/vector"

// BoundingSphere is the cheap, conservative bounding volume used by the
// dynamic (per-frame, camera-dependent) separation test before falling back
// to the more expensive static vertex-extreme test.
type BoundingSphere[V vector.Vector[V]] struct {
	Pos    V
	Radius float32
}

// NewBoundingSphere builds the bounding sphere of a shape already in world
// pose: pos is the shape's world position and refRadius*scale is its
// reference-pose radius scaled into world units.
func NewBoundingSphere[V vector.Vector[V]](pos V, refRadius, scale float32) BoundingSphere[V] {
	return BoundingSphere[V]{Pos: pos, Radius: refRadius * scale}
}
