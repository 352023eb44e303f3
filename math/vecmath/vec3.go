// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"math"

	"github.com/xnago/xna/math/mathx"
)

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float32 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// LenSquared returns the squared Euclidean length of v.
func (v Vec3) LenSquared() float32 { return v.Dot(v) }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 { return float32(math.Sqrt(float64(v.LenSquared()))) }

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float32 { return v.Sub(w).Len() }

// Normalize scales v in place to unit length. A zero vector becomes NaN.
func (v *Vec3) Normalize() {
	inv := 1 / v.Len()
	v[0] *= inv
	v[1] *= inv
	v[2] *= inv
}

// Normalized returns v scaled to unit length.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Barycentric returns the point with barycentric coordinates (a1, a2) in the
// triangle (v, v2, v3).
func (v Vec3) Barycentric(v2, v3 Vec3, a1, a2 float32) (r Vec3) {
	r.SetBarycentric(&v, &v2, &v3, a1, a2)
	return r
}

// SetBarycentric sets r to v1.Barycentric(*v2, *v3, a1, a2).
func (r *Vec3) SetBarycentric(v1, v2, v3 *Vec3, a1, a2 float32) {
	for i := range r {
		r[i] = mathx.Barycentric(v1[i], v2[i], v3[i], a1, a2)
	}
}

// CatmullRom interpolates between v2 and v3 on the Catmull-Rom spline through
// v, v2, v3 and v4.
func (v Vec3) CatmullRom(v2, v3, v4 Vec3, amount float32) (r Vec3) {
	r.SetCatmullRom(&v, &v2, &v3, &v4, amount)
	return r
}

// SetCatmullRom sets r to v1.CatmullRom(*v2, *v3, *v4, amount).
func (r *Vec3) SetCatmullRom(v1, v2, v3, v4 *Vec3, amount float32) {
	for i := range r {
		r[i] = mathx.CatmullRom(v1[i], v2[i], v3[i], v4[i], amount)
	}
}

// Hermite interpolates on the Hermite spline from v, with tangent t1, to v2,
// with tangent t2.
func (v Vec3) Hermite(t1, v2, t2 Vec3, amount float32) (r Vec3) {
	r.SetHermite(&v, &t1, &v2, &t2, amount)
	return r
}

// SetHermite sets r to v1.Hermite(*t1, *v2, *t2, amount).
func (r *Vec3) SetHermite(v1, t1, v2, t2 *Vec3, amount float32) {
	for i := range r {
		r[i] = mathx.Hermite(v1[i], t1[i], v2[i], t2[i], amount)
	}
}

// Lerp linearly interpolates between v and w. See mathx.Lerp.
func (v Vec3) Lerp(w Vec3, amount float32) (r Vec3) {
	r.SetLerp(&v, &w, amount)
	return r
}

// SetLerp sets r to v1.Lerp(*v2, amount).
func (r *Vec3) SetLerp(v1, v2 *Vec3, amount float32) {
	for i := range r {
		r[i] = mathx.Lerp(v1[i], v2[i], amount)
	}
}

// LerpPrecise linearly interpolates between v and w. See mathx.LerpPrecise.
func (v Vec3) LerpPrecise(w Vec3, amount float32) (r Vec3) {
	r.SetLerpPrecise(&v, &w, amount)
	return r
}

// SetLerpPrecise sets r to v1.LerpPrecise(*v2, amount).
func (r *Vec3) SetLerpPrecise(v1, v2 *Vec3, amount float32) {
	for i := range r {
		r[i] = mathx.LerpPrecise(v1[i], v2[i], amount)
	}
}

// SmoothStep interpolates between v and w with a clamped cubic curve.
func (v Vec3) SmoothStep(w Vec3, amount float32) (r Vec3) {
	r.SetSmoothStep(&v, &w, amount)
	return r
}

// SetSmoothStep sets r to v1.SmoothStep(*v2, amount).
func (r *Vec3) SetSmoothStep(v1, v2 *Vec3, amount float32) {
	for i := range r {
		r[i] = mathx.SmoothStep(v1[i], v2[i], amount)
	}
}

// Ceil rounds each component of v toward positive infinity.
func (v Vec3) Ceil() (r Vec3) {
	r.SetCeil(&v)
	return r
}

// SetCeil sets r to v.Ceil().
func (r *Vec3) SetCeil(v *Vec3) {
	for i := range r {
		r[i] = ceil(v[i])
	}
}

// Floor rounds each component of v toward negative infinity.
func (v Vec3) Floor() (r Vec3) {
	r.SetFloor(&v)
	return r
}

// SetFloor sets r to v.Floor().
func (r *Vec3) SetFloor(v *Vec3) {
	for i := range r {
		r[i] = floor(v[i])
	}
}

// Round rounds each component of v to the nearest integer, halves away from
// zero.
func (v Vec3) Round() (r Vec3) {
	r.SetRound(&v)
	return r
}

// SetRound sets r to v.Round().
func (r *Vec3) SetRound(v *Vec3) {
	for i := range r {
		r[i] = round(v[i])
	}
}

// Clamp restricts each component of v to the matching range of lo and hi.
func (v Vec3) Clamp(lo, hi Vec3) (r Vec3) {
	r.SetClamp(&v, &lo, &hi)
	return r
}

// SetClamp sets r to v.Clamp(*lo, *hi).
func (r *Vec3) SetClamp(v, lo, hi *Vec3) {
	for i := range r {
		r[i] = mathx.Clamp(v[i], lo[i], hi[i])
	}
}

// Min returns the component-wise minimum of v and w.
func (v Vec3) Min(w Vec3) (r Vec3) {
	r.SetMin(&v, &w)
	return r
}

// SetMin sets r to v1.Min(*v2).
func (r *Vec3) SetMin(v1, v2 *Vec3) {
	for i := range r {
		r[i] = mathx.Min(v1[i], v2[i])
	}
}

// Max returns the component-wise maximum of v and w.
func (v Vec3) Max(w Vec3) (r Vec3) {
	r.SetMax(&v, &w)
	return r
}

// SetMax sets r to v1.Max(*v2).
func (r *Vec3) SetMax(v1, v2 *Vec3) {
	for i := range r {
		r[i] = mathx.Max(v1[i], v2[i])
	}
}

// Transform returns the position v transformed by m, including m's
// translation. v is treated as (x, y, z, 1).
func (v Vec3) Transform(m Mat4) (r Vec3) {
	r.SetTransform(&v, &m)
	return r
}

// SetTransform sets r to v.Transform(*m).
func (r *Vec3) SetTransform(v *Vec3, m *Mat4) {
	x, y, z := v[0], v[1], v[2]
	r[0] = x*m[0] + y*m[4] + z*m[8] + m[12]
	r[1] = x*m[1] + y*m[5] + z*m[9] + m[13]
	r[2] = x*m[2] + y*m[6] + z*m[10] + m[14]
}

// TransformNormal returns the direction v transformed by the upper-left 3x3
// block of m. Translation is ignored.
func (v Vec3) TransformNormal(m Mat4) (r Vec3) {
	r.SetTransformNormal(&v, &m)
	return r
}

// SetTransformNormal sets r to v.TransformNormal(*m).
func (r *Vec3) SetTransformNormal(v *Vec3, m *Mat4) {
	x, y, z := v[0], v[1], v[2]
	r[0] = x*m[0] + y*m[4] + z*m[8]
	r[1] = x*m[1] + y*m[5] + z*m[9]
	r[2] = x*m[2] + y*m[6] + z*m[10]
}

// Rotate returns v rotated by q.
func (v Vec3) Rotate(q Quaternion) (r Vec3) {
	r.SetRotate(&v, &q)
	return r
}

// SetRotate sets r to v.Rotate(*q).
func (r *Vec3) SetRotate(v *Vec3, q *Quaternion) {
	b := q.basis()
	x, y, z := v[0], v[1], v[2]
	r[0] = x*b[0] + y*b[3] + z*b[6]
	r[1] = x*b[1] + y*b[4] + z*b[7]
	r[2] = x*b[2] + y*b[5] + z*b[8]
}
