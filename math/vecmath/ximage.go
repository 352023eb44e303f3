// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The vector and matrix types share their layout with golang.org/x/image/math/f32,
// so values convert without copying element by element.

// F32 returns v as an f32.Vec2, the point type of golang.org/x/image/vector.
func (v Vec2) F32() f32.Vec2 { return f32.Vec2(v) }

// F32 returns v as an f32.Vec3.
func (v Vec3) F32() f32.Vec3 { return f32.Vec3(v) }

// F32 returns v as an f32.Vec4.
func (v Vec4) F32() f32.Vec4 { return f32.Vec4(v) }

// F32 returns m as an f32.Mat4. Both are row major.
func (m Mat4) F32() f32.Mat4 { return f32.Mat4(m) }

// Vec2FromF32 converts an f32.Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2(v) }

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3(v) }

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4(v) }

// Mat4FromF32 converts an f32.Mat4.
func Mat4FromF32(m f32.Mat4) Mat4 { return Mat4(m) }

// Aff3 returns the 2-D part of m as the affine matrix used by
// golang.org/x/image/draw.Transformer. f64.Aff3 multiplies column vectors, so
// the result is the transpose of m's upper-left 2x2 block with the x and y
// translation appended to each row. The z row and column are dropped.
func (m Mat4) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m[0]), float64(m[4]), float64(m[12]),
		float64(m[1]), float64(m[5]), float64(m[13]),
	}
}
