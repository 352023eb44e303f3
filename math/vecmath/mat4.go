// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "math"

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that translates positions by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a matrix that scales along each axis.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a matrix that rotates by radians around the x axis.
func RotationX(radians float32) Mat4 {
	s, c := sincos(radians)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a matrix that rotates by radians around the y axis.
func RotationY(radians float32) Mat4 {
	s, c := sincos(radians)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a matrix that rotates by radians around the z axis.
// Positive angles turn the x axis toward the y axis.
func RotationZ(radians float32) Mat4 {
	s, c := sincos(radians)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatFromQuaternion returns the rotation matrix equivalent to q, which should
// be normalized.
func MatFromQuaternion(q Quaternion) Mat4 {
	b := q.basis()
	return Mat4{
		b[0], b[1], b[2], 0,
		b[3], b[4], b[5], 0,
		b[6], b[7], b[8], 0,
		0, 0, 0, 1,
	}
}

// Mul returns the product m*n. Transforming a vector by the result is the
// same as transforming it by m and then by n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var p Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p[4*r+c] = m[4*r+0]*n[0*4+c] + m[4*r+1]*n[1*4+c] +
				m[4*r+2]*n[2*4+c] + m[4*r+3]*n[3*4+c]
		}
	}
	return p
}

// Translation returns the translation row of m.
func (m Mat4) Translation() Vec3 { return Vec3{m[12], m[13], m[14]} }

func sincos(radians float32) (sin, cos float32) {
	s, c := math.Sincos(float64(radians))
	return float32(s), float32(c)
}
