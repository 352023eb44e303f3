// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyIndex is returned when a key index is outside the curve.
	ErrKeyIndex = errors.New("curve: key index out of range")

	errUnknownName = errors.New("curve: unknown name")
)

// Continuity describes how a curve moves from a key to the next one.
type Continuity int

const (
	// ContinuitySmooth interpolates with a cubic Hermite segment.
	ContinuitySmooth Continuity = iota
	// ContinuityStep holds the key's value until the next key.
	ContinuityStep
)

var continuityNames = [...]string{"smooth", "step"}

func (c Continuity) String() string {
	if c >= 0 && int(c) < len(continuityNames) {
		return continuityNames[c]
	}
	return fmt.Sprintf("Continuity(%d)", int(c))
}

// LoopType selects how a curve is evaluated before its first key or after
// its last key.
type LoopType int

const (
	// LoopConstant holds the end key's value.
	LoopConstant LoopType = iota
	// LoopCycle repeats the curve.
	LoopCycle
	// LoopCycleOffset repeats the curve, shifting each repetition by the
	// difference between the last and first key values.
	LoopCycleOffset
	// LoopOscillate repeats the curve, reversing every other repetition.
	LoopOscillate
	// LoopLinear extends the curve along the end key's tangent.
	LoopLinear
)

var loopNames = [...]string{"constant", "cycle", "cycleoffset", "oscillate", "linear"}

func (l LoopType) String() string {
	if l >= 0 && int(l) < len(loopNames) {
		return loopNames[l]
	}
	return fmt.Sprintf("LoopType(%d)", int(l))
}

// ParseLoopType returns the LoopType whose String form equals s, ignoring
// case.
func ParseLoopType(s string) (LoopType, error) {
	for i, name := range loopNames {
		if strings.EqualFold(s, name) {
			return LoopType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: loop type %q", errUnknownName, s)
}

// Tangent selects how ComputeTangent derives a key's tangents from its
// neighbours.
type Tangent int

const (
	// TangentFlat gives a zero tangent.
	TangentFlat Tangent = iota
	// TangentLinear uses the value difference to the neighbouring key.
	TangentLinear
	// TangentSmooth uses the slope between both neighbours, weighted by the
	// length of the segment on the tangent's side.
	TangentSmooth
)

var tangentNames = [...]string{"flat", "linear", "smooth"}

func (t Tangent) String() string {
	if t >= 0 && int(t) < len(tangentNames) {
		return tangentNames[t]
	}
	return fmt.Sprintf("Tangent(%d)", int(t))
}

// ParseTangent returns the Tangent whose String form equals s, ignoring
// case.
func ParseTangent(s string) (Tangent, error) {
	for i, name := range tangentNames {
		if strings.EqualFold(s, name) {
			return Tangent(i), nil
		}
	}
	return 0, fmt.Errorf("%w: tangent %q", errUnknownName, s)
}
