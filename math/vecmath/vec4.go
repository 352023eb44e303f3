// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"math"

	"github.com/xnago/xna/math/mathx"
)

// Add returns v+w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v-w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul returns v scaled by s.
func (v Vec4) Mul(s float32) Vec4 { return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

// Dot returns the dot product of v and w.
func (v Vec4) Dot(w Vec4) float32 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3] }

// LenSquared returns the squared Euclidean length of v.
func (v Vec4) LenSquared() float32 { return v.Dot(v) }

// Len returns the Euclidean length of v.
func (v Vec4) Len() float32 { return float32(math.Sqrt(float64(v.LenSquared()))) }

// Distance returns the Euclidean distance between v and w.
func (v Vec4) Distance(w Vec4) float32 { return v.Sub(w).Len() }

// Normalize scales v in place to unit length. A zero vector becomes NaN.
func (v *Vec4) Normalize() {
	inv := 1 / v.Len()
	for i := range v {
		v[i] *= inv
	}
}

// Normalized returns v scaled to unit length.
func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

// Barycentric returns the point with barycentric coordinates (a1, a2) in the
// triangle (v, v2, v3).
func (v Vec4) Barycentric(v2, v3 Vec4, a1, a2 float32) (r Vec4) {
	r.SetBarycentric(&v, &v2, &v3, a1, a2)
	return r
}

// SetBarycentric sets r to v1.Barycentric(*v2, *v3, a1, a2).
func (r *Vec4) SetBarycentric(v1, v2, v3 *Vec4, a1, a2 float32) {
	for i := range r {
		r[i] = mathx.Barycentric(v1[i], v2[i], v3[i], a1, a2)
	}
}

// CatmullRom interpolates between v2 and v3 on the Catmull-Rom spline through
// v, v2, v3 and v4.
func (v Vec4) CatmullRom(v2, v3, v4 Vec4, amount float32) (r Vec4) {
	r.SetCatmullRom(&v, &v2, &v3, &v4, amount)
	return r
}

// SetCatmullRom sets r to v1.CatmullRom(*v2, *v3, *v4, amount).
func (r *Vec4) SetCatmullRom(v1, v2, v3, v4 *Vec4, amount float32) {
	for i := range r {
		r[i] = mathx.CatmullRom(v1[i], v2[i], v3[i], v4[i], amount)
	}
}

// Hermite interpolates on the Hermite spline from v, with tangent t1, to v2,
// with tangent t2.
func (v Vec4) Hermite(t1, v2, t2 Vec4, amount float32) (r Vec4) {
	r.SetHermite(&v, &t1, &v2, &t2, amount)
	return r
}

// SetHermite sets r to v1.Hermite(*t1, *v2, *t2, amount).
func (r *Vec4) SetHermite(v1, t1, v2, t2 *Vec4, amount float32) {
	for i := range r {
		r[i] = mathx.Hermite(v1[i], t1[i], v2[i], t2[i], amount)
	}
}

// Lerp linearly interpolates between v and w. See mathx.Lerp.
func (v Vec4) Lerp(w Vec4, amount float32) (r Vec4) {
	r.SetLerp(&v, &w, amount)
	return r
}

// SetLerp sets r to v1.Lerp(*v2, amount).
func (r *Vec4) SetLerp(v1, v2 *Vec4, amount float32) {
	for i := range r {
		r[i] = mathx.Lerp(v1[i], v2[i], amount)
	}
}

// LerpPrecise linearly interpolates between v and w. See mathx.LerpPrecise.
func (v Vec4) LerpPrecise(w Vec4, amount float32) (r Vec4) {
	r.SetLerpPrecise(&v, &w, amount)
	return r
}

// SetLerpPrecise sets r to v1.LerpPrecise(*v2, amount).
func (r *Vec4) SetLerpPrecise(v1, v2 *Vec4, amount float32) {
	for i := range r {
		r[i] = mathx.LerpPrecise(v1[i], v2[i], amount)
	}
}

// SmoothStep interpolates between v and w with a clamped cubic curve.
func (v Vec4) SmoothStep(w Vec4, amount float32) (r Vec4) {
	r.SetSmoothStep(&v, &w, amount)
	return r
}

// SetSmoothStep sets r to v1.SmoothStep(*v2, amount).
func (r *Vec4) SetSmoothStep(v1, v2 *Vec4, amount float32) {
	for i := range r {
		r[i] = mathx.SmoothStep(v1[i], v2[i], amount)
	}
}

// Ceil rounds each component of v toward positive infinity.
func (v Vec4) Ceil() (r Vec4) {
	r.SetCeil(&v)
	return r
}

// SetCeil sets r to v.Ceil().
func (r *Vec4) SetCeil(v *Vec4) {
	for i := range r {
		r[i] = ceil(v[i])
	}
}

// Floor rounds each component of v toward negative infinity.
func (v Vec4) Floor() (r Vec4) {
	r.SetFloor(&v)
	return r
}

// SetFloor sets r to v.Floor().
func (r *Vec4) SetFloor(v *Vec4) {
	for i := range r {
		r[i] = floor(v[i])
	}
}

// Round rounds each component of v to the nearest integer, halves away from
// zero.
func (v Vec4) Round() (r Vec4) {
	r.SetRound(&v)
	return r
}

// SetRound sets r to v.Round().
func (r *Vec4) SetRound(v *Vec4) {
	for i := range r {
		r[i] = round(v[i])
	}
}

// Clamp restricts each component of v to the matching range of lo and hi.
func (v Vec4) Clamp(lo, hi Vec4) (r Vec4) {
	r.SetClamp(&v, &lo, &hi)
	return r
}

// SetClamp sets r to v.Clamp(*lo, *hi).
func (r *Vec4) SetClamp(v, lo, hi *Vec4) {
	for i := range r {
		r[i] = mathx.Clamp(v[i], lo[i], hi[i])
	}
}

// Min returns the component-wise minimum of v and w.
func (v Vec4) Min(w Vec4) (r Vec4) {
	r.SetMin(&v, &w)
	return r
}

// SetMin sets r to v1.Min(*v2).
func (r *Vec4) SetMin(v1, v2 *Vec4) {
	for i := range r {
		r[i] = mathx.Min(v1[i], v2[i])
	}
}

// Max returns the component-wise maximum of v and w.
func (v Vec4) Max(w Vec4) (r Vec4) {
	r.SetMax(&v, &w)
	return r
}

// SetMax sets r to v1.Max(*v2).
func (r *Vec4) SetMax(v1, v2 *Vec4) {
	for i := range r {
		r[i] = mathx.Max(v1[i], v2[i])
	}
}

// Transform returns v transformed by m. All four components take part, so
// translation applies in proportion to v's w.
func (v Vec4) Transform(m Mat4) (r Vec4) {
	r.SetTransform(&v, &m)
	return r
}

// SetTransform sets r to v.Transform(*m).
func (r *Vec4) SetTransform(v *Vec4, m *Mat4) {
	x, y, z, w := v[0], v[1], v[2], v[3]
	for c := range r {
		r[c] = x*m[c] + y*m[4+c] + z*m[8+c] + w*m[12+c]
	}
}

// Rotate returns v with its x, y and z rotated by q. w is unchanged.
func (v Vec4) Rotate(q Quaternion) (r Vec4) {
	r.SetRotate(&v, &q)
	return r
}

// SetRotate sets r to v.Rotate(*q).
func (r *Vec4) SetRotate(v *Vec4, q *Quaternion) {
	b := q.basis()
	x, y, z, w := v[0], v[1], v[2], v[3]
	r[0] = x*b[0] + y*b[3] + z*b[6]
	r[1] = x*b[1] + y*b[4] + z*b[7]
	r[2] = x*b[2] + y*b[5] + z*b[8]
	r[3] = w
}
