// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"math"

	"github.com/xnago/xna/math/mathx"
)

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float32 { return v[0]*w[0] + v[1]*w[1] }

// LenSquared returns the squared Euclidean length of v.
func (v Vec2) LenSquared() float32 { return v[0]*v[0] + v[1]*v[1] }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 { return float32(math.Sqrt(float64(v.LenSquared()))) }

// Distance returns the Euclidean distance between v and w.
func (v Vec2) Distance(w Vec2) float32 { return v.Sub(w).Len() }

// Normalize scales v in place to unit length. A zero vector becomes NaN.
func (v *Vec2) Normalize() {
	inv := 1 / float32(math.Sqrt(float64(v[0]*v[0]+v[1]*v[1])))
	v[0] *= inv
	v[1] *= inv
}

// Normalized returns v scaled to unit length.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Barycentric returns the point with barycentric coordinates (a1, a2) in the
// triangle (v, v2, v3).
func (v Vec2) Barycentric(v2, v3 Vec2, a1, a2 float32) (r Vec2) {
	r.SetBarycentric(&v, &v2, &v3, a1, a2)
	return r
}

// SetBarycentric sets r to v1.Barycentric(*v2, *v3, a1, a2).
func (r *Vec2) SetBarycentric(v1, v2, v3 *Vec2, a1, a2 float32) {
	for i := range r {
		r[i] = mathx.Barycentric(v1[i], v2[i], v3[i], a1, a2)
	}
}

// CatmullRom interpolates between v2 and v3 on the Catmull-Rom spline through
// v, v2, v3 and v4.
func (v Vec2) CatmullRom(v2, v3, v4 Vec2, amount float32) (r Vec2) {
	r.SetCatmullRom(&v, &v2, &v3, &v4, amount)
	return r
}

// SetCatmullRom sets r to v1.CatmullRom(*v2, *v3, *v4, amount).
func (r *Vec2) SetCatmullRom(v1, v2, v3, v4 *Vec2, amount float32) {
	for i := range r {
		r[i] = mathx.CatmullRom(v1[i], v2[i], v3[i], v4[i], amount)
	}
}

// Hermite interpolates on the Hermite spline from v, with tangent t1, to v2,
// with tangent t2.
func (v Vec2) Hermite(t1, v2, t2 Vec2, amount float32) (r Vec2) {
	r.SetHermite(&v, &t1, &v2, &t2, amount)
	return r
}

// SetHermite sets r to v1.Hermite(*t1, *v2, *t2, amount).
func (r *Vec2) SetHermite(v1, t1, v2, t2 *Vec2, amount float32) {
	for i := range r {
		r[i] = mathx.Hermite(v1[i], t1[i], v2[i], t2[i], amount)
	}
}

// Lerp linearly interpolates between v and w. See mathx.Lerp.
func (v Vec2) Lerp(w Vec2, amount float32) (r Vec2) {
	r.SetLerp(&v, &w, amount)
	return r
}

// SetLerp sets r to v1.Lerp(*v2, amount).
func (r *Vec2) SetLerp(v1, v2 *Vec2, amount float32) {
	for i := range r {
		r[i] = mathx.Lerp(v1[i], v2[i], amount)
	}
}

// LerpPrecise linearly interpolates between v and w. See mathx.LerpPrecise.
func (v Vec2) LerpPrecise(w Vec2, amount float32) (r Vec2) {
	r.SetLerpPrecise(&v, &w, amount)
	return r
}

// SetLerpPrecise sets r to v1.LerpPrecise(*v2, amount).
func (r *Vec2) SetLerpPrecise(v1, v2 *Vec2, amount float32) {
	for i := range r {
		r[i] = mathx.LerpPrecise(v1[i], v2[i], amount)
	}
}

// SmoothStep interpolates between v and w with a clamped cubic curve.
func (v Vec2) SmoothStep(w Vec2, amount float32) (r Vec2) {
	r.SetSmoothStep(&v, &w, amount)
	return r
}

// SetSmoothStep sets r to v1.SmoothStep(*v2, amount).
func (r *Vec2) SetSmoothStep(v1, v2 *Vec2, amount float32) {
	for i := range r {
		r[i] = mathx.SmoothStep(v1[i], v2[i], amount)
	}
}

// Ceil rounds each component of v toward positive infinity.
func (v Vec2) Ceil() (r Vec2) {
	r.SetCeil(&v)
	return r
}

// SetCeil sets r to v.Ceil().
func (r *Vec2) SetCeil(v *Vec2) {
	for i := range r {
		r[i] = ceil(v[i])
	}
}

// Floor rounds each component of v toward negative infinity.
func (v Vec2) Floor() (r Vec2) {
	r.SetFloor(&v)
	return r
}

// SetFloor sets r to v.Floor().
func (r *Vec2) SetFloor(v *Vec2) {
	for i := range r {
		r[i] = floor(v[i])
	}
}

// Round rounds each component of v to the nearest integer, halves away from
// zero.
func (v Vec2) Round() (r Vec2) {
	r.SetRound(&v)
	return r
}

// SetRound sets r to v.Round().
func (r *Vec2) SetRound(v *Vec2) {
	for i := range r {
		r[i] = round(v[i])
	}
}

// Clamp restricts each component of v to the matching range of lo and hi.
func (v Vec2) Clamp(lo, hi Vec2) (r Vec2) {
	r.SetClamp(&v, &lo, &hi)
	return r
}

// SetClamp sets r to v.Clamp(*lo, *hi).
func (r *Vec2) SetClamp(v, lo, hi *Vec2) {
	for i := range r {
		r[i] = mathx.Clamp(v[i], lo[i], hi[i])
	}
}

// Min returns the component-wise minimum of v and w.
func (v Vec2) Min(w Vec2) (r Vec2) {
	r.SetMin(&v, &w)
	return r
}

// SetMin sets r to v1.Min(*v2).
func (r *Vec2) SetMin(v1, v2 *Vec2) {
	for i := range r {
		r[i] = mathx.Min(v1[i], v2[i])
	}
}

// Max returns the component-wise maximum of v and w.
func (v Vec2) Max(w Vec2) (r Vec2) {
	r.SetMax(&v, &w)
	return r
}

// SetMax sets r to v1.Max(*v2).
func (r *Vec2) SetMax(v1, v2 *Vec2) {
	for i := range r {
		r[i] = mathx.Max(v1[i], v2[i])
	}
}

// Transform returns the position v transformed by m, including m's
// translation. v is treated as (x, y, 0, 1).
func (v Vec2) Transform(m Mat4) (r Vec2) {
	r.SetTransform(&v, &m)
	return r
}

// SetTransform sets r to v.Transform(*m).
func (r *Vec2) SetTransform(v *Vec2, m *Mat4) {
	x, y := v[0], v[1]
	r[0] = x*m[0] + y*m[4] + m[12]
	r[1] = x*m[1] + y*m[5] + m[13]
}

// TransformNormal returns the direction v transformed by the upper-left 2x2
// block of m. Translation is ignored.
func (v Vec2) TransformNormal(m Mat4) (r Vec2) {
	r.SetTransformNormal(&v, &m)
	return r
}

// SetTransformNormal sets r to v.TransformNormal(*m).
func (r *Vec2) SetTransformNormal(v *Vec2, m *Mat4) {
	x, y := v[0], v[1]
	r[0] = x*m[0] + y*m[4]
	r[1] = x*m[1] + y*m[5]
}

// Rotate returns v rotated by q, treating v as (x, y, 0).
func (v Vec2) Rotate(q Quaternion) (r Vec2) {
	r.SetRotate(&v, &q)
	return r
}

// SetRotate sets r to v.Rotate(*q).
func (r *Vec2) SetRotate(v *Vec2, q *Quaternion) {
	b := q.basis()
	x, y := v[0], v[1]
	r[0] = x*b[0] + y*b[3]
	r[1] = x*b[1] + y*b[4]
}

func ceil(x float32) float32  { return float32(math.Ceil(float64(x))) }
func floor(x float32) float32 { return float32(math.Floor(float64(x))) }
func round(x float32) float32 { return float32(math.Round(float64(x))) }
