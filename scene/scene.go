// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene runs the per-frame pipeline: transform dirty shapes,
// refresh visibility and boundaries, recompute pairwise occlusion, then
// emit each shape's clipped lines for the renderer to consume.
package scene

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hyperline/engine/camera"
	"github.com/hyperline/engine/clip"
	"github.com/hyperline/engine/math32"
	"github.com/hyperline/engine/occlusion"
	"github.com/hyperline/engine/shape"
	"github.com/hyperline/engine/texture"
	"github.com/hyperline/engine/vector"
	"github.com/hyperline/engine/visibility"
)

// DrawLine is one emitted primitive: a line in projected (D-1)-dimensional
// space plus the color the renderer should draw it in. A scene's Frame
// output is a flat slice of these in sortedIDs order; dropped lines are
// omitted rather than left as placeholder slots, so length varies frame to
// frame with visibility and occlusion. A renderer that wants a
// stable-length buffer can pad or truncate against its own previous-frame
// count.
type DrawLine[W any] struct {
	Line  vector.Line[W]
	Color math32.Color4
}

// ShapeEntry is everything the scheduler tracks for one shape beyond its
// geometry: its render color, per-face textures, dirty flag, and the
// occlusion bookkeeping mutated by stage 4.
type ShapeEntry[V vector.Vector[V], M vector.Matrix[V, M]] struct {
	Shape       *shape.Shape[V, M]
	Color       math32.Color4
	FaceTexture texture.FaceTexture[V]
	Dirty       bool

	boundaries []vector.Plane[V]
	occlusion  *occlusion.ShapeOcclusionState[V]
	mu         sync.Mutex
}

// NewShapeEntry wraps s for scene membership with the default (no-op)
// wireframe texture and a fresh occlusion state.
func NewShapeEntry[V vector.Vector[V], M vector.Matrix[V, M]](s *shape.Shape[V, M], c math32.Color4) *ShapeEntry[V, M] {
	return &ShapeEntry[V, M]{
		Shape:     s,
		Color:     c,
		Dirty:     true,
		occlusion: occlusion.NewShapeOcclusionState[V](),
	}
}

// Scene owns a set of shapes, keyed by the identity assigned at insertion,
// and the camera they're viewed through. Project and RimCross close over
// the dimension-specific projection (Vec4->Vec3 or Vec3->Vec2) and rim
// cross product a concrete V/W pair needs; CubeClipAxes names which
// projected-space component indices the viewport clip bounds.
type Scene[V vector.Vector[V], M vector.Matrix[V, M], W vector.Vector[W]] struct {
	Shapes map[occlusion.ShapeID]*ShapeEntry[V, M]
	Camera camera.Camera[V, M]

	Project        func(V) W
	RimCross       func([]V) V
	CubeClipAxes   []int
	CubeClipRadius float32
	Focal          float32
	SmallZ         float32
}

// NewScene builds an empty scene with the default cube-clip radius (0.5)
// and focal length (1).
func NewScene[V vector.Vector[V], M vector.Matrix[V, M], W vector.Vector[W]](
	cam camera.Camera[V, M], project func(V) W, rimCross func([]V) V, cubeClipAxes []int,
) *Scene[V, M, W] {
	return &Scene[V, M, W]{
		Shapes:         make(map[occlusion.ShapeID]*ShapeEntry[V, M]),
		Camera:         cam,
		Project:        project,
		RimCross:       rimCross,
		CubeClipAxes:   cubeClipAxes,
		CubeClipRadius: 0.5,
		Focal:          camera.Focal,
	}
}

// Add inserts s into the scene and returns its assigned identity.
func (sc *Scene[V, M, W]) Add(entry *ShapeEntry[V, M]) occlusion.ShapeID {
	id := occlusion.NewShapeID()
	sc.Shapes[id] = entry
	return id
}

// sortedIDs returns the scene's shape identities in a stable order, so
// pairwise enumeration and test expectations are deterministic.
func (sc *Scene[V, M, W]) sortedIDs() []occlusion.ShapeID {
	ids := make([]occlusion.ShapeID, 0, len(sc.Shapes))
	for id := range sc.Shapes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Frame runs the six-step scheduler once and returns the resulting draw
// lines. Stages 1-3 and 5 run one goroutine per shape; stage 4 enumerates
// every shape pair once, locking both shapes' entries (in a fixed order,
// to avoid deadlock) while it applies the pairwise result.
func (sc *Scene[V, M, W]) Frame(ctx context.Context) ([]DrawLine[W], error) {
	ids := sc.sortedIDs()

	// a moved shape's cached separators describe a relative pose that no
	// longer exists, on its own entry and on every entry that cached one
	// against it.
	for _, id := range ids {
		if !sc.Shapes[id].Dirty {
			continue
		}
		sc.Shapes[id].occlusion.Separators = make(map[occlusion.ShapeID]occlusion.Separator[V])
		for _, other := range ids {
			delete(sc.Shapes[other].occlusion.Separators, id)
		}
	}

	if err := sc.forEachShape(ctx, ids, func(e *ShapeEntry[V, M]) error {
		if e.Dirty {
			e.Shape.Transform()
			e.Dirty = false
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := sc.forEachShape(ctx, ids, func(e *ShapeEntry[V, M]) error {
		visibility.UpdateVisibility(e.Shape, sc.Camera.Pos)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := sc.forEachShape(ctx, ids, func(e *ShapeEntry[V, M]) error {
		e.boundaries = visibility.CalcBoundaries(e.Shape, sc.Camera.Pos, sc.RimCross)
		return nil
	}); err != nil {
		return nil, err
	}

	sc.updatePairwiseOcclusion(ids)

	results := make([][]DrawLine[W], len(ids))
	g, _ := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = sc.emitShapeLines(sc.Shapes[id])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []DrawLine[W]
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (sc *Scene[V, M, W]) forEachShape(ctx context.Context, ids []occlusion.ShapeID, fn func(*ShapeEntry[V, M]) error) error {
	g, _ := errgroup.WithContext(ctx)
	for _, id := range ids {
		e := sc.Shapes[id]
		g.Go(func() error { return fn(e) })
	}
	return g.Wait()
}

func (sc *Scene[V, M, W]) updatePairwiseOcclusion(ids []occlusion.ShapeID) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			ea, eb := sc.Shapes[a], sc.Shapes[b]

			first, second := ea, eb
			if b.String() < a.String() {
				first, second = eb, ea
			}
			first.mu.Lock()
			second.mu.Lock()

			ba := occlusion.NewBoundingSphere(ea.Shape.Pose.Pos, ea.Shape.Radius, ea.Shape.Pose.Scale)
			bb := occlusion.NewBoundingSphere(eb.Shape.Pose.Pos, eb.Shape.Radius, eb.Shape.Pose.Scale)

			result := occlusion.DynamicSeparate(ba, bb, sc.Camera.Pos)
			if result == occlusion.Unknown {
				// relative pose between two shapes rarely changes, so the
				// separator (or the fact that none exists) is computed once
				// per pair and cached on the first shape.
				sep, cached := ea.occlusion.Separators[b]
				if !cached {
					sep, _ = occlusion.StaticSeparate(ea.Shape.Verts, eb.Shape.Verts, separatingAxes(ea.Shape, eb.Shape))
					ea.occlusion.Separators[b] = sep
				}
				result = sep.Apply(sc.Camera.Pos)
			}

			if result == occlusion.Unknown {
				log.Debug("no separation found for pair (%s, %s); both will occlude", a, b)
			}
			occlusion.ApplyResult(a, b, ea.occlusion, eb.occlusion, result)

			second.mu.Unlock()
			first.mu.Unlock()
		}
	}
}

// separatingAxes lists the candidate separating directions for a shape
// pair: the center-to-center direction first (sufficient whenever the
// shapes are separated along the line joining them), then both shapes' face
// normals for the elongated/interleaved cases the center axis misses.
func separatingAxes[V vector.Vector[V], M vector.Matrix[V, M]](s1, s2 *shape.Shape[V, M]) []V {
	axes := make([]V, 0, 1+len(s1.Faces)+len(s2.Faces))
	axes = append(axes, s2.Pose.Pos.Sub(s1.Pose.Pos))
	for _, f := range s1.Faces {
		axes = append(axes, f.Normal)
	}
	for _, f := range s2.Faces {
		axes = append(axes, f.Normal)
	}
	return axes
}

// emitShapeLines produces one shape's contribution to the frame: its face
// (and texture) lines, occluder-clipped in world space against every shape
// in front of it, then near-clipped, view-transformed, projected, and
// bounded to the view cube. Occluder clipping runs before the view
// transform because boundary planes live in world space; a half-space only
// survives perspective projection intact when its plane passes through the
// camera, which the visible-face cap planes do not.
func (sc *Scene[V, M, W]) emitShapeLines(e *ShapeEntry[V, M]) []DrawLine[W] {
	lines := faceLines(e.Shape, e.FaceTexture)

	for otherID := range e.occlusion.InFront {
		other, ok := sc.Shapes[otherID]
		if !ok || other.Shape.Transparent {
			continue
		}
		lines = clip.OccluderClip(lines, other.boundaries)
	}

	nearPlane := sc.Camera.NearPlane(e.Shape.Verts[0].Dim())

	out := make([]DrawLine[W], 0, len(lines))
	for _, l := range lines {
		clipped, ok := clip.PlaneClip(l, nearPlane, sc.SmallZ)
		if !ok {
			continue
		}
		p0 := camera.Project[V, W](camera.ViewTransform[V, M](sc.Camera, clipped.P0), sc.Focal, sc.Project)
		p1 := camera.Project[V, W](camera.ViewTransform[V, M](sc.Camera, clipped.P1), sc.Focal, sc.Project)
		cubed, ok := clip.CubeClip(vector.Line[W]{P0: p0, P1: p1}, sc.CubeClipRadius, sc.CubeClipAxes)
		if !ok {
			continue
		}
		out = append(out, DrawLine[W]{Line: cubed, Color: e.Color})
	}
	return out
}

func faceLines[V vector.Vector[V], M vector.Matrix[V, M]](s *shape.Shape[V, M], tex texture.FaceTexture[V]) []vector.Line[V] {
	var out []vector.Line[V]
	for _, f := range s.Faces {
		if !f.Visible {
			continue
		}
		for _, ei := range f.EdgeIs {
			e := s.Edges[ei]
			out = append(out, vector.Line[V]{P0: s.Verts[e.V0], P1: s.Verts[e.V1]})
		}
		if tex != nil {
			verts := make([]V, len(f.VertIs))
			for i, vi := range f.VertIs {
				verts[i] = s.Verts[vi]
			}
			if len(verts) >= 3 {
				out = append(out, tex(texture.ComputeFrame(verts))...)
			}
		}
	}
	return out
}
