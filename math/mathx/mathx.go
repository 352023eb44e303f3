// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements float32 scalar helpers: interpolation, angle
// conversion and wrapping, and clamping.
//
// Functions that evaluate polynomials accumulate in float64 and round to
// float32 once, on return. NaN and infinite inputs are not special-cased and
// propagate as IEEE-754 arithmetic dictates.
package mathx // import "github.com/xnago/xna/math/mathx"

import "math"

// Mathematical constants, rounded to float32.
const (
	E       float32 = math.E
	Log10E  float32 = math.Log10E
	Log2E   float32 = math.Log2E
	Pi      float32 = math.Pi
	PiOver2 float32 = math.Pi / 2
	PiOver4 float32 = math.Pi / 4
	TwoPi   float32 = math.Pi * 2
)

const (
	degreesPerRadian = 57.29577951308232087679815481410
	radiansPerDegree = 0.01745329251994329576923690768489
)

// Barycentric returns the coordinate along one axis of the point with
// barycentric coordinates (amount1, amount2) in the triangle (v1, v2, v3).
//
// amount1 weights v2 and amount2 weights v3. The amounts are not checked, so
// the result extrapolates outside the triangle when amount1+amount2 > 1 or
// either amount is negative.
func Barycentric(v1, v2, v3, amount1, amount2 float32) float32 {
	return v1 + (v2-v1)*amount1 + (v3-v1)*amount2
}

// CatmullRom interpolates between v2 and v3 on the Catmull-Rom spline through
// v1, v2, v3 and v4. An amount of 0 gives v2 and 1 gives v3.
func CatmullRom(v1, v2, v3, v4, amount float32) float32 {
	p1, p2, p3, p4 := float64(v1), float64(v2), float64(v3), float64(v4)
	s := float64(amount)
	s2 := s * s
	s3 := s2 * s
	return float32(0.5 * (2*p2 +
		(p3-p1)*s +
		(2*p1-5*p2+4*p3-p4)*s2 +
		(3*p2-p1-3*p3+p4)*s3))
}

// Hermite interpolates on the cubic Hermite spline with end points v1, v2 and
// tangents t1, t2. An amount of exactly 0 returns v1 and exactly 1 returns v2.
func Hermite(v1, t1, v2, t2, amount float32) float32 {
	switch amount {
	case 0:
		return v1
	case 1:
		return v2
	}
	p1, m1, p2, m2 := float64(v1), float64(t1), float64(v2), float64(t2)
	s := float64(amount)
	s2 := s * s
	s3 := s2 * s
	return float32((2*p1-2*p2+m2+m1)*s3 +
		(3*p2-3*p1-2*m1-m2)*s2 +
		m1*s +
		p1)
}

// Lerp linearly interpolates between v1 and v2.
//
// Lerp computes v1 + (v2-v1)*amount. When v1 and v2 differ by many orders of
// magnitude the result at amount 1 may not be v2; use LerpPrecise when the end
// point must be exact.
func Lerp(v1, v2, amount float32) float32 {
	return v1 + (v2-v1)*amount
}

// LerpPrecise linearly interpolates between v1 and v2 as
// (1-amount)*v1 + v2*amount. It returns v1 at amount 0 and v2 at amount 1
// regardless of their magnitudes, at the cost of an extra multiplication.
func LerpPrecise(v1, v2, amount float32) float32 {
	return (1-amount)*v1 + v2*amount
}

// SmoothStep interpolates between v1 and v2 with a cubic ease-in/ease-out
// curve. amount is clamped to [0, 1].
func SmoothStep(v1, v2, amount float32) float32 {
	return Hermite(v1, 0, v2, 0, Clamp(amount, 0, 1))
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 {
	return float32(float64(radians) * degreesPerRadian)
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 {
	return float32(float64(degrees) * radiansPerDegree)
}

// WrapAngle reduces angle, in radians, to the interval (-Pi, Pi].
func WrapAngle(angle float32) float32 {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	// The remainder of two float32 values is exact in float32.
	angle = float32(math.Mod(float64(angle), float64(TwoPi)))
	if angle <= -Pi {
		return angle + TwoPi
	}
	if angle > Pi {
		return angle - TwoPi
	}
	return angle
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Clamp restricts v to [lo, hi]. It assumes lo <= hi. A NaN v is returned
// unchanged.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt restricts v to [lo, hi]. It assumes lo <= hi.
func ClampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Distance returns the absolute difference between v1 and v2.
func Distance(v1, v2 float32) float32 {
	return float32(math.Abs(float64(v1 - v2)))
}

// Max returns the larger of a and b. If either operand is NaN the result is
// unspecified.
func Max(a, b float32) float32 {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of a and b. See Max for NaN handling.
func Min(a, b float32) float32 {
	if a > b {
		return b
	}
	return a
}
