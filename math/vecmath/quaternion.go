// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "math"

// IdentityQuaternion returns the quaternion of no rotation.
func IdentityQuaternion() Quaternion { return Quaternion{0, 0, 0, 1} }

// QuaternionFromAxisAngle returns the rotation by radians around axis, which
// should be normalized.
func QuaternionFromAxisAngle(axis Vec3, radians float32) Quaternion {
	s, c := math.Sincos(float64(radians) / 2)
	sin := float32(s)
	return Quaternion{axis[0] * sin, axis[1] * sin, axis[2] * sin, float32(c)}
}

// basis returns the row-major 3x3 rotation matrix of q.
func (q *Quaternion) basis() [9]float32 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	wx, wy, wz := w*x2, w*y2, w*z2
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	return [9]float32{
		1 - yy - zz, xy + wz, xz - wy,
		xy - wz, 1 - xx - zz, yz + wx,
		xz + wy, yz - wx, 1 - xx - yy,
	}
}
