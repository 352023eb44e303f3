// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath implements float32 vector, matrix and quaternion types and
// the interpolation and transform operations games apply to them.
//
// Vectors are row vectors: transforming v by m computes v * m, so a Mat4's
// translation is stored in its last row.
//
// Most operations come in two forms. The value form is a method returning a
// new vector:
//
//	p := a.Lerp(b, 0.5)
//
// The out form is a pointer method with a Set prefix that writes into its
// receiver and takes its operands by pointer, avoiding copies in hot loops:
//
//	p.SetLerp(&a, &b, 0.5)
//
// Both forms run the same code and give bit-identical results. An out form's
// receiver may alias any of its operands.
package vecmath // import "github.com/xnago/xna/math/vecmath"

// Vec2 is a 2-element vector.
type Vec2 [2]float32

// Vec3 is a 3-element vector.
type Vec3 [3]float32

// Vec4 is a 4-element vector.
type Vec4 [4]float32

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*r + c] is the element in the r'th row and c'th column.
type Mat4 [16]float32

// Quaternion is a rotation stored as X, Y, Z, W.
type Quaternion [4]float32
