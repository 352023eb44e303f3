// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"unsafe"
)

// Vector is the set of vector types the bulk transforms accept.
type Vector interface {
	Vec2 | Vec3 | Vec4
}

// CheckRange reports whether the bulk transform of length elements from
// src[srcIndex:] into dst[dstIndex:] is valid. It returns an error wrapping
// ErrNilSlice, ErrOutOfRange or ErrOverlap, or nil.
//
// src and dst may be the same range, for an in-place transform, or disjoint.
// Ranges that share memory but start at different elements are rejected, as
// an in-order transform would read elements it has already overwritten.
func CheckRange[V Vector](src []V, srcIndex int, dst []V, dstIndex, length int) error {
	if src == nil {
		return fmt.Errorf("%w: source", ErrNilSlice)
	}
	if dst == nil {
		return fmt.Errorf("%w: destination", ErrNilSlice)
	}
	if srcIndex < 0 || dstIndex < 0 || length < 0 {
		return fmt.Errorf("%w: negative index or length (source index %d, destination index %d, length %d)",
			ErrOutOfRange, srcIndex, dstIndex, length)
	}
	if len(src)-srcIndex < length {
		return fmt.Errorf("%w: source has %d elements, need %d from index %d",
			ErrOutOfRange, len(src), length, srcIndex)
	}
	if len(dst)-dstIndex < length {
		return fmt.Errorf("%w: destination has %d elements, need %d from index %d",
			ErrOutOfRange, len(dst), length, dstIndex)
	}
	if partialOverlap(src[srcIndex:srcIndex+length], dst[dstIndex:dstIndex+length]) {
		return ErrOverlap
	}
	return nil
}

// partialOverlap reports whether a and b, of equal length, share memory
// without starting at the same address.
func partialOverlap[V Vector](a, b []V) bool {
	if len(a) == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if pa == pb {
		return false
	}
	n := uintptr(len(a)) * unsafe.Sizeof(a[0])
	return pa < pb+n && pb < pa+n
}

// each validates the range and then calls f for every source and destination
// pair, in order.
func each[V Vector](src []V, srcIndex int, dst []V, dstIndex, length int, f func(d, s *V)) error {
	if err := CheckRange(src, srcIndex, dst, dstIndex, length); err != nil {
		return err
	}
	s := src[srcIndex : srcIndex+length]
	d := dst[dstIndex : dstIndex+length]
	for i := range s {
		f(&d[i], &s[i])
	}
	return nil
}

// TransformVec2s transforms length positions from src, starting at srcIndex,
// by m and writes them to dst starting at dstIndex. Nothing is written if the
// arguments are invalid; see CheckRange.
func TransformVec2s(src []Vec2, srcIndex int, m Mat4, dst []Vec2, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec2) { d.SetTransform(s, &m) })
}

// TransformNormalVec2s is like TransformVec2s but treats the elements as
// directions, ignoring m's translation.
func TransformNormalVec2s(src []Vec2, srcIndex int, m Mat4, dst []Vec2, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec2) { d.SetTransformNormal(s, &m) })
}

// RotateVec2s is like TransformVec2s but rotates the elements by q.
func RotateVec2s(src []Vec2, srcIndex int, q Quaternion, dst []Vec2, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec2) { d.SetRotate(s, &q) })
}

// TransformVec3s transforms length positions from src, starting at srcIndex,
// by m and writes them to dst starting at dstIndex. Nothing is written if the
// arguments are invalid; see CheckRange.
func TransformVec3s(src []Vec3, srcIndex int, m Mat4, dst []Vec3, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec3) { d.SetTransform(s, &m) })
}

// TransformNormalVec3s is like TransformVec3s but treats the elements as
// directions, ignoring m's translation.
func TransformNormalVec3s(src []Vec3, srcIndex int, m Mat4, dst []Vec3, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec3) { d.SetTransformNormal(s, &m) })
}

// RotateVec3s is like TransformVec3s but rotates the elements by q.
func RotateVec3s(src []Vec3, srcIndex int, q Quaternion, dst []Vec3, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec3) { d.SetRotate(s, &q) })
}

// TransformVec4s transforms length vectors from src, starting at srcIndex, by
// m and writes them to dst starting at dstIndex. Nothing is written if the
// arguments are invalid; see CheckRange.
func TransformVec4s(src []Vec4, srcIndex int, m Mat4, dst []Vec4, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec4) { d.SetTransform(s, &m) })
}

// RotateVec4s is like TransformVec4s but rotates the elements by q.
func RotateVec4s(src []Vec4, srcIndex int, q Quaternion, dst []Vec4, dstIndex, length int) error {
	return each(src, srcIndex, dst, dstIndex, length, func(d, s *Vec4) { d.SetRotate(s, &q) })
}

// TransformVec2Slice transforms every position in src by m into dst, which
// must be at least as long as src.
func TransformVec2Slice(src []Vec2, m Mat4, dst []Vec2) error {
	return TransformVec2s(src, 0, m, dst, 0, len(src))
}

// TransformNormalVec2Slice transforms every direction in src by m into dst.
func TransformNormalVec2Slice(src []Vec2, m Mat4, dst []Vec2) error {
	return TransformNormalVec2s(src, 0, m, dst, 0, len(src))
}

// RotateVec2Slice rotates every vector in src by q into dst.
func RotateVec2Slice(src []Vec2, q Quaternion, dst []Vec2) error {
	return RotateVec2s(src, 0, q, dst, 0, len(src))
}

// TransformVec3Slice transforms every position in src by m into dst, which
// must be at least as long as src.
func TransformVec3Slice(src []Vec3, m Mat4, dst []Vec3) error {
	return TransformVec3s(src, 0, m, dst, 0, len(src))
}

// TransformNormalVec3Slice transforms every direction in src by m into dst.
func TransformNormalVec3Slice(src []Vec3, m Mat4, dst []Vec3) error {
	return TransformNormalVec3s(src, 0, m, dst, 0, len(src))
}

// RotateVec3Slice rotates every vector in src by q into dst.
func RotateVec3Slice(src []Vec3, q Quaternion, dst []Vec3) error {
	return RotateVec3s(src, 0, q, dst, 0, len(src))
}

// TransformVec4Slice transforms every vector in src by m into dst, which must
// be at least as long as src.
func TransformVec4Slice(src []Vec4, m Mat4, dst []Vec4) error {
	return TransformVec4s(src, 0, m, dst, 0, len(src))
}

// RotateVec4Slice rotates every vector in src by q into dst.
func RotateVec4Slice(src []Vec4, q Quaternion, dst []Vec4) error {
	return RotateVec4s(src, 0, q, dst, 0, len(src))
}
