// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "errors"

var (
	// ErrNilSlice is returned when a bulk transform is given a nil source or
	// destination slice.
	ErrNilSlice = errors.New("vecmath: nil slice")

	// ErrOutOfRange is returned when an index or length is negative or the
	// requested range does not fit in a slice.
	ErrOutOfRange = errors.New("vecmath: index or length out of range")

	// ErrOverlap is returned when the source and destination ranges share
	// memory without starting at the same element.
	ErrOverlap = errors.New("vecmath: source and destination ranges partially overlap")
)
