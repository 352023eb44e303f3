// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath_test

import (
	"fmt"
	"log"

	"github.com/xnago/xna/math/vecmath"
)

func ExampleTransformVec3s() {
	vertices := []vecmath.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	normals := []vecmath.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	world := vecmath.Translation(5, 0, -2)

	// Positions move with the translation; normals do not.
	if err := vecmath.TransformVec3s(vertices, 0, world, vertices, 0, len(vertices)); err != nil {
		log.Fatal(err)
	}
	if err := vecmath.TransformNormalVec3Slice(normals, world, normals); err != nil {
		log.Fatal(err)
	}
	fmt.Println(vertices)
	fmt.Println(normals)
	// Output:
	// [[5 0 -2] [6 0 -2] [5 1 -2]]
	// [[0 0 1] [0 0 1] [0 0 1]]
}

func ExampleVec2_SetLerp() {
	from, to := vecmath.Vec2{0, 100}, vecmath.Vec2{10, 200}
	var p vecmath.Vec2
	for _, t := range []float32{0, 0.5, 1} {
		p.SetLerp(&from, &to, t)
		fmt.Println(p)
	}
	// Output:
	// [0 100]
	// [5 150]
	// [10 200]
}
