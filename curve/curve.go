// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements keyframe curves: a sorted set of keys with cubic
// Hermite segments between them, used to animate a scalar over time.
package curve // import "github.com/xnago/xna/curve"

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/xnago/xna/math/mathx"
)

// Key is a point on a Curve.
//
// TangentIn and TangentOut are expressed per segment, not per unit of
// position: they are the Hermite tangents of the segments that end and
// start at the key.
type Key struct {
	Position   float32
	Value      float32
	TangentIn  float32
	TangentOut float32
	Continuity Continuity
}

// Curve is a sequence of keys ordered by position. The zero value is an
// empty curve that evaluates to 0 everywhere.
type Curve struct {
	// PreLoop applies before the first key, PostLoop after the last one.
	PreLoop  LoopType
	PostLoop LoopType

	keys []Key
}

// Len returns the number of keys.
func (c *Curve) Len() int { return len(c.keys) }

// Key returns the i'th key. It panics if i is out of range.
func (c *Curve) Key(i int) Key { return c.keys[i] }

// Keys returns a copy of the keys in position order.
func (c *Curve) Keys() []Key { return slices.Clone(c.keys) }

// IsConstant reports whether the curve has the same value everywhere, which
// is the case with fewer than two keys.
func (c *Curve) IsConstant() bool { return len(c.keys) <= 1 }

// Clone returns a deep copy of c.
func (c *Curve) Clone() *Curve {
	return &Curve{
		PreLoop:  c.PreLoop,
		PostLoop: c.PostLoop,
		keys:     slices.Clone(c.keys),
	}
}

// Add inserts k in position order and returns its index. A key whose
// position equals existing keys goes after them.
func (c *Curve) Add(k Key) int {
	i := sort.Search(len(c.keys), func(j int) bool { return c.keys[j].Position > k.Position })
	c.keys = slices.Insert(c.keys, i, k)
	return i
}

// RemoveAt removes the i'th key.
func (c *Curve) RemoveAt(i int) error {
	if i < 0 || i >= len(c.keys) {
		return fmt.Errorf("%w: %d of %d", ErrKeyIndex, i, len(c.keys))
	}
	c.keys = slices.Delete(c.keys, i, i+1)
	return nil
}

// SetKey replaces the i'th key with k, moving it if its position changed,
// and returns its new index.
func (c *Curve) SetKey(i int, k Key) (int, error) {
	if err := c.RemoveAt(i); err != nil {
		return -1, err
	}
	return c.Add(k), nil
}

// Evaluate returns the curve's value at position.
func (c *Curve) Evaluate(position float32) float32 {
	switch len(c.keys) {
	case 0:
		return 0
	case 1:
		return c.keys[0].Value
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]

	switch {
	case position < first.Position:
		if c.PreLoop == LoopLinear {
			return first.Value - first.TangentIn*(first.Position-position)
		}
		return c.loop(c.PreLoop, position, first.Value)
	case position > last.Position:
		if c.PostLoop == LoopLinear {
			return last.Value + last.TangentOut*(position-last.Position)
		}
		return c.loop(c.PostLoop, position, last.Value)
	}
	return c.segment(position)
}

// loop evaluates a position outside the key range for the cycling loop
// types. end is the value of the nearest end key, used by LoopConstant.
func (c *Curve) loop(lt LoopType, position, end float32) float32 {
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	span := float64(last.Position) - float64(first.Position)
	if lt == LoopConstant || span == 0 {
		return end
	}
	cycle := math.Floor((float64(position) - float64(first.Position)) / span)
	virtual := float32(float64(position) - cycle*span)

	switch lt {
	case LoopCycle:
		return c.segment(virtual)
	case LoopCycleOffset:
		offset := cycle * (float64(last.Value) - float64(first.Value))
		return float32(float64(c.segment(virtual)) + offset)
	case LoopOscillate:
		if math.Mod(cycle, 2) != 0 {
			virtual = first.Position + last.Position - virtual
		}
		return c.segment(virtual)
	}
	return end
}

// segment evaluates a position inside the key range.
func (c *Curve) segment(position float32) float32 {
	prev := c.keys[0]
	for _, next := range c.keys[1:] {
		if next.Position < position {
			prev = next
			continue
		}
		if prev.Continuity == ContinuityStep {
			if position >= next.Position {
				return next.Value
			}
			return prev.Value
		}
		span := next.Position - prev.Position
		if span == 0 {
			return prev.Value
		}
		t := (position - prev.Position) / span
		return mathx.Hermite(prev.Value, prev.TangentOut, next.Value, next.TangentIn, t)
	}
	// Rounding in loop can leave position just past the last key.
	return c.keys[len(c.keys)-1].Value
}

// ComputeTangent sets the tangents of the i'th key from its neighbours. The
// first and last keys use themselves as their missing neighbour.
func (c *Curve) ComputeTangent(i int, in, out Tangent) error {
	if i < 0 || i >= len(c.keys) {
		return fmt.Errorf("%w: %d of %d", ErrKeyIndex, i, len(c.keys))
	}
	k := &c.keys[i]
	p0, p, p1 := k.Position, k.Position, k.Position
	v0, v, v1 := k.Value, k.Value, k.Value
	if i > 0 {
		p0, v0 = c.keys[i-1].Position, c.keys[i-1].Value
	}
	if i < len(c.keys)-1 {
		p1, v1 = c.keys[i+1].Position, c.keys[i+1].Value
	}
	pn := p1 - p0

	switch in {
	case TangentFlat:
		k.TangentIn = 0
	case TangentLinear:
		k.TangentIn = v - v0
	case TangentSmooth:
		k.TangentIn = 0
		if pn != 0 {
			k.TangentIn = (v1 - v0) * ((p - p0) / pn)
		}
	}
	switch out {
	case TangentFlat:
		k.TangentOut = 0
	case TangentLinear:
		k.TangentOut = v1 - v
	case TangentSmooth:
		k.TangentOut = 0
		if pn != 0 {
			k.TangentOut = (v1 - v0) * ((p1 - p) / pn)
		}
	}
	return nil
}

// ComputeTangents sets the tangents of every key with ComputeTangent, using
// t for both sides.
func (c *Curve) ComputeTangents(t Tangent) {
	for i := range c.keys {
		// The index is always valid.
		_ = c.ComputeTangent(i, t, t)
	}
}
