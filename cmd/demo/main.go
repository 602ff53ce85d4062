// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demo exercises the geometry and visibility pipeline end to end:
// it builds a 3D scene (two cubes) and a 4D scene (a tesseract), steps each
// scene's camera through a few frames, and reports the resulting line
// counts. It is not a renderer; GPU submission and windowing live elsewhere,
// so it only prints what Scene.Frame produced.
package main

import (
	"context"

	"github.com/hyperline/engine/camera"
	"github.com/hyperline/engine/math32"
	"github.com/hyperline/engine/scene"
	"github.com/hyperline/engine/texture"
	"github.com/hyperline/engine/util/logger"
	"github.com/hyperline/engine/vector"
)

var log = logger.New("demo", nil)

func main() {
	log.AddWriter(logger.NewConsole(false))
	log.SetLevel(logger.INFO)
	run3D()
	run4D()
}

func run3D() {
	cam := camera.NewCamera[vector.Vec3, vector.Mat3](vector.NewVec3(0, 0, -8), vector.Identity3())
	sc := scene.NewScene[vector.Vec3, vector.Mat3, vector.Vec2](cam, vector.Project3, nil, []int{0, 1})

	near := buildHypercube[vector.Vec3, vector.Mat3](3, vector.Identity3())
	near.SetPos(vector.NewVec3(-0.5, 0, -1))
	nearEntry := scene.NewShapeEntry[vector.Vec3, vector.Mat3](near, math32.Color4{R: 1, A: 1})
	nearEntry.FaceTexture = texture.Grid[vector.Vec3](4)
	sc.Add(nearEntry)

	far := buildHypercube[vector.Vec3, vector.Mat3](3, vector.Identity3())
	far.SetPos(vector.NewVec3(0.5, 0, 3))
	sc.Add(scene.NewShapeEntry[vector.Vec3, vector.Mat3](far, math32.Color4{B: 1, A: 1}))

	log.Info("3D scene: %d shapes", len(sc.Shapes))
	for frame := 0; frame < 4; frame++ {
		lines, err := sc.Frame(context.Background())
		if err != nil {
			log.Fatal("frame %d failed: %v", frame, err)
		}
		log.Info("3D frame %d: camera=%v lines=%d", frame, sc.Camera.Pos, len(lines))
		sc.Camera.Pos = sc.Camera.Pos.Add(vector.NewVec3(0, 0, 1))
	}
}

func run4D() {
	cam := camera.NewCamera[vector.Vec4, vector.Mat4](vector.NewVec4(0, 0, 0, -8), vector.Identity4())
	sc := scene.NewScene[vector.Vec4, vector.Mat4, vector.Vec3](cam, vector.Project4, vector.RimCross4, []int{0, 1, 2})

	tesseract := buildHypercube[vector.Vec4, vector.Mat4](4, vector.Identity4())
	sc.Add(scene.NewShapeEntry[vector.Vec4, vector.Mat4](tesseract, math32.Color4{G: 1, A: 1}))

	log.Info("4D scene: %d shapes", len(sc.Shapes))
	angle := float32(0.3)
	for frame := 0; frame < 4; frame++ {
		lines, err := sc.Frame(context.Background())
		if err != nil {
			log.Fatal("frame %d failed: %v", frame, err)
		}
		log.Info("4D frame %d: camera=%v lines=%d", frame, sc.Camera.Pos, len(lines))

		rot := vector.RotationMatrix4(sc.Camera.Frame.Row(0), sc.Camera.Frame.Row(3), &angle)
		sc.Camera.Frame = sc.Camera.Frame.MulMat(rot)
	}
}
