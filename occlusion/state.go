// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package occlusion

import (
	"github.com/google/uuid"

	"github.com/hyperline/engine/vector"
)

// ShapeID identifies a shape for the lifetime of its scene membership. It
// keys both the in_front relation and the separator cache, since both are
// meaningless once a shape is removed and re-added.
type ShapeID uuid.UUID

// NewShapeID allocates a fresh shape identity.
func NewShapeID() ShapeID {
	return ShapeID(uuid.New())
}

func (id ShapeID) String() string {
	return uuid.UUID(id).String()
}

// ShapeOcclusionState is the per-shape occlusion bookkeeping the scene
// scheduler maintains across frames: which other shapes are known to be in
// front of this one (its occluders, whose boundaries this shape's lines are
// clipped against), and the separator cache keyed by the other shape's
// identity.
type ShapeOcclusionState[V vector.Vector[V]] struct {
	InFront    map[ShapeID]struct{}
	Separators map[ShapeID]Separator[V]
}

// NewShapeOcclusionState returns an empty occlusion state.
func NewShapeOcclusionState[V vector.Vector[V]]() *ShapeOcclusionState[V] {
	return &ShapeOcclusionState[V]{
		InFront:    make(map[ShapeID]struct{}),
		Separators: make(map[ShapeID]Separator[V]),
	}
}

// ApplyResult updates the in-front sets of both a and b's occlusion state.
// S1Front records a as an occluder of b and clears the reverse; S2Front the
// mirror image; NoFront clears both; Unknown conservatively records both, so
// clipping treats either shape as capable of occluding the other.
func ApplyResult[V vector.Vector[V]](a, b ShapeID, aState, bState *ShapeOcclusionState[V], result Separation) {
	switch result {
	case S1Front:
		bState.InFront[a] = struct{}{}
		delete(aState.InFront, b)
	case S2Front:
		aState.InFront[b] = struct{}{}
		delete(bState.InFront, a)
	case NoFront:
		delete(aState.InFront, b)
		delete(bState.InFront, a)
	case Unknown:
		aState.InFront[b] = struct{}{}
		bState.InFront[a] = struct{}{}
	}
}
