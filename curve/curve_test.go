// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func near(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) <= 1e-5
}

// ramp returns a two key curve from (0, 0) to (1, 1) whose segment is the
// straight line v = position.
func ramp(pre, post LoopType) *Curve {
	c := &Curve{PreLoop: pre, PostLoop: post}
	c.Add(Key{Position: 0, Value: 0})
	c.Add(Key{Position: 1, Value: 1})
	c.ComputeTangents(TangentLinear)
	return c
}

func positionsOf(keys []Key) []float32 {
	ps := make([]float32, len(keys))
	for i, k := range keys {
		ps[i] = k.Position
	}
	return ps
}

func TestEmptyAndSingle(t *testing.T) {
	var c Curve
	if got := c.Evaluate(3); got != 0 {
		t.Errorf("empty curve: got %v, want 0", got)
	}
	if !c.IsConstant() {
		t.Error("empty curve is not constant")
	}
	c.Add(Key{Position: 1, Value: 7})
	for _, p := range []float32{-100, 0, 1, 2, 1e6} {
		if got := c.Evaluate(p); got != 7 {
			t.Errorf("single key at %v: got %v, want 7", p, got)
		}
	}
	if !c.IsConstant() {
		t.Error("single key curve is not constant")
	}
	c.Add(Key{Position: 2, Value: 7})
	if c.IsConstant() {
		t.Error("two key curve is constant")
	}
}

func TestAddKeepsOrder(t *testing.T) {
	var c Curve
	indices := []int{
		c.Add(Key{Position: 2, Value: 20}),
		c.Add(Key{Position: 0, Value: 0}),
		c.Add(Key{Position: 1, Value: 10}),
		c.Add(Key{Position: 1, Value: 11}),
	}
	if diff := cmp.Diff([]int{0, 0, 1, 2}, indices); diff != "" {
		t.Errorf("Add indices mismatch (-want +got):\n%s", diff)
	}
	want := []Key{{Position: 0, Value: 0}, {Position: 1, Value: 10}, {Position: 1, Value: 11}, {Position: 2, Value: 20}}
	if diff := cmp.Diff(want, c.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if got := c.Len(); got != 4 {
		t.Errorf("Len: got %d, want 4", got)
	}
}

func TestRemoveAndSetKey(t *testing.T) {
	var c Curve
	for i := range 3 {
		c.Add(Key{Position: float32(i), Value: float32(i)})
	}
	i, err := c.SetKey(0, Key{Position: 5, Value: 50})
	if err != nil {
		t.Fatal(err)
	}
	if i != 2 {
		t.Errorf("SetKey index: got %d, want 2", i)
	}
	if diff := cmp.Diff([]float32{1, 2, 5}, positionsOf(c.Keys())); diff != "" {
		t.Errorf("positions after SetKey (-want +got):\n%s", diff)
	}
	if err := c.RemoveAt(1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float32{1, 5}, positionsOf(c.Keys())); diff != "" {
		t.Errorf("positions after RemoveAt (-want +got):\n%s", diff)
	}

	for _, i := range []int{-1, 2, 10} {
		if err := c.RemoveAt(i); !errors.Is(err, ErrKeyIndex) {
			t.Errorf("RemoveAt(%d): got %v, want ErrKeyIndex", i, err)
		}
		if _, err := c.SetKey(i, Key{}); !errors.Is(err, ErrKeyIndex) {
			t.Errorf("SetKey(%d): got %v, want ErrKeyIndex", i, err)
		}
		if err := c.ComputeTangent(i, TangentFlat, TangentFlat); !errors.Is(err, ErrKeyIndex) {
			t.Errorf("ComputeTangent(%d): got %v, want ErrKeyIndex", i, err)
		}
	}
	if c.Len() != 2 {
		t.Errorf("failed calls changed the curve: Len %d", c.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := ramp(LoopCycle, LoopOscillate)
	d := c.Clone()
	d.Add(Key{Position: 3, Value: 3})
	d.PreLoop = LoopConstant
	if c.Len() != 2 || c.PreLoop != LoopCycle {
		t.Errorf("Clone shares state: Len %d PreLoop %v", c.Len(), c.PreLoop)
	}
	keys := c.Keys()
	keys[0].Value = 99
	if c.Key(0).Value != 0 {
		t.Error("Keys returned the curve's own storage")
	}
}

// TestKeysAreExact checks that evaluating at a key's position returns the
// key's value bit for bit.
func TestKeysAreExact(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		var c Curve
		p := float32(r.NormFloat64())
		for range 2 + r.IntN(8) {
			c.Add(Key{
				Position:   p,
				Value:      float32(r.NormFloat64() * 100),
				TangentIn:  float32(r.NormFloat64()),
				TangentOut: float32(r.NormFloat64()),
			})
			p += 0.01 + r.Float32()*5
		}
		for i, k := range c.Keys() {
			if got := c.Evaluate(k.Position); got != k.Value {
				t.Fatalf("key %d at %v: got %v, want %v", i, k.Position, got, k.Value)
			}
		}
	}
}

func TestSegment(t *testing.T) {
	var c Curve
	c.Add(Key{Position: 0, Value: 0})
	c.Add(Key{Position: 2, Value: 1})
	c.Add(Key{Position: 4, Value: 0})
	testCases := []struct {
		position, want float32
	}{
		{0, 0},
		{1, 0.5},
		{0.5, 0.15625},
		{2, 1},
		{3, 0.5},
		{4, 0},
	}
	for _, tc := range testCases {
		if got := c.Evaluate(tc.position); !near(got, tc.want) {
			t.Errorf("Evaluate(%v): got %v, want %v", tc.position, got, tc.want)
		}
	}
}

func TestStepContinuity(t *testing.T) {
	var c Curve
	c.Add(Key{Position: 0, Value: 1, Continuity: ContinuityStep})
	c.Add(Key{Position: 1, Value: 5, Continuity: ContinuityStep})
	c.Add(Key{Position: 2, Value: 3})
	testCases := []struct {
		position, want float32
	}{
		{0, 1},
		{0.5, 1},
		{0.999, 1},
		{1, 5},
		{1.5, 5},
		{2, 3},
	}
	for _, tc := range testCases {
		if got := c.Evaluate(tc.position); got != tc.want {
			t.Errorf("Evaluate(%v): got %v, want %v", tc.position, got, tc.want)
		}
	}
}

func TestLoops(t *testing.T) {
	testCases := []struct {
		loop      LoopType
		position  float32
		wantValue float32
	}{
		{LoopConstant, -3, 0},
		{LoopConstant, 4, 1},
		{LoopCycle, 1.25, 0.25},
		{LoopCycle, 3.5, 0.5},
		{LoopCycle, -0.75, 0.25},
		{LoopCycle, -2, 0},
		{LoopCycleOffset, 2.5, 2.5},
		{LoopCycleOffset, 1.25, 1.25},
		{LoopCycleOffset, -0.5, -0.5},
		{LoopOscillate, 1.25, 0.75},
		{LoopOscillate, 2.25, 0.25},
		{LoopOscillate, -0.25, 0.25},
		{LoopOscillate, -1.75, 0.25},
		{LoopOscillate, -1.25, 0.75},
	}
	for _, tc := range testCases {
		c := ramp(tc.loop, tc.loop)
		if got := c.Evaluate(tc.position); !near(got, tc.wantValue) {
			t.Errorf("%v at %v: got %v, want %v", tc.loop, tc.position, got, tc.wantValue)
		}
	}
}

func TestLinearLoop(t *testing.T) {
	c := &Curve{PreLoop: LoopLinear, PostLoop: LoopLinear}
	c.Add(Key{Position: 0, Value: 0, TangentIn: 2})
	c.Add(Key{Position: 1, Value: 1, TangentOut: 3})
	if got := c.Evaluate(-1); got != -2 {
		t.Errorf("pre-loop: got %v, want -2", got)
	}
	if got := c.Evaluate(2); got != 4 {
		t.Errorf("post-loop: got %v, want 4", got)
	}
}

// TestLoopsWithCoincidentKeys checks that a curve whose keys share one
// position falls back to the end values instead of dividing by zero.
func TestLoopsWithCoincidentKeys(t *testing.T) {
	c := &Curve{PreLoop: LoopCycle, PostLoop: LoopOscillate}
	c.Add(Key{Position: 1, Value: 2})
	c.Add(Key{Position: 1, Value: 3})
	if got := c.Evaluate(0); got != 2 {
		t.Errorf("pre-loop: got %v, want 2", got)
	}
	if got := c.Evaluate(5); got != 3 {
		t.Errorf("post-loop: got %v, want 3", got)
	}
	if got := c.Evaluate(1); got != 2 {
		t.Errorf("at key: got %v, want 2", got)
	}
}

func TestComputeTangent(t *testing.T) {
	newCurve := func() *Curve {
		c := new(Curve)
		c.Add(Key{Position: 0, Value: 0, TangentIn: 9, TangentOut: 9})
		c.Add(Key{Position: 1, Value: 2, TangentIn: 9, TangentOut: 9})
		c.Add(Key{Position: 3, Value: 4, TangentIn: 9, TangentOut: 9})
		return c
	}
	testCases := []struct {
		tangent Tangent
		want    [3][2]float32
	}{
		{TangentFlat, [3][2]float32{{0, 0}, {0, 0}, {0, 0}}},
		{TangentLinear, [3][2]float32{{0, 2}, {2, 2}, {2, 0}}},
		{TangentSmooth, [3][2]float32{{0, 2}, {4.0 / 3, 8.0 / 3}, {2, 0}}},
	}
	for _, tc := range testCases {
		c := newCurve()
		c.ComputeTangents(tc.tangent)
		for i, want := range tc.want {
			k := c.Key(i)
			if !near(k.TangentIn, want[0]) || !near(k.TangentOut, want[1]) {
				t.Errorf("%v key %d: got (%v, %v), want (%v, %v)",
					tc.tangent, i, k.TangentIn, k.TangentOut, want[0], want[1])
			}
		}
	}

	c := newCurve()
	if err := c.ComputeTangent(1, TangentFlat, TangentLinear); err != nil {
		t.Fatal(err)
	}
	if k := c.Key(1); k.TangentIn != 0 || k.TangentOut != 2 {
		t.Errorf("mixed tangents: got (%v, %v), want (0, 2)", k.TangentIn, k.TangentOut)
	}
	if k := c.Key(0); k.TangentIn != 9 {
		t.Errorf("neighbouring key changed: %+v", k)
	}
}

func TestNames(t *testing.T) {
	for l := LoopConstant; l <= LoopLinear; l++ {
		got, err := ParseLoopType(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLoopType(%q): got %v, %v", l.String(), got, err)
		}
	}
	if got, err := ParseLoopType("CycleOffset"); err != nil || got != LoopCycleOffset {
		t.Errorf("ParseLoopType is case sensitive: got %v, %v", got, err)
	}
	for tg := TangentFlat; tg <= TangentSmooth; tg++ {
		got, err := ParseTangent(tg.String())
		if err != nil || got != tg {
			t.Errorf("ParseTangent(%q): got %v, %v", tg.String(), got, err)
		}
	}
	if _, err := ParseLoopType("bounce"); err == nil {
		t.Error("ParseLoopType(bounce): got nil error")
	}
	if _, err := ParseTangent(""); err == nil {
		t.Error("ParseTangent(\"\"): got nil error")
	}
	if got, want := LoopType(9).String(), "LoopType(9)"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := ContinuityStep.String(), "step"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
