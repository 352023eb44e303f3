// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Curvesample evaluates a keyframe curve at evenly spaced positions and
// prints one "position value" pair per line.
//
// Usage:
//
//	curvesample -keys 0:0,1:10,2:0 [-tangent smooth] [-pre constant] [-post cycle]
//	            [-from 0] [-to 4] [-steps 16]
//
// A key is position:value, optionally followed by :step for a key that
// holds its value until the next one.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xnago/xna/curve"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fatalf("curvesample: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("curvesample", flag.ContinueOnError)
	var (
		keys    = fs.String("keys", "", "Comma separated keys, each position:value[:step].")
		tangent = fs.String("tangent", "smooth", "flat|linear|smooth tangents computed for every key.")
		pre     = fs.String("pre", "constant", "Loop before the first key: constant|cycle|cycleoffset|oscillate|linear.")
		post    = fs.String("post", "constant", "Loop after the last key.")
		from    = fs.Float64("from", 0, "First sampled position.")
		to      = fs.Float64("to", 1, "Last sampled position.")
		steps   = fs.Int("steps", 10, "Number of intervals between from and to.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keys == "" {
		return errors.New("no keys: use -keys position:value,...")
	}
	if *steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", *steps)
	}

	c, err := buildCurve(*keys, *tangent, *pre, *post)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for i := 0; i <= *steps; i++ {
		p := float32(*from + (*to-*from)*float64(i)/float64(*steps))
		fmt.Fprintf(w, "%g %g\n", p, c.Evaluate(p))
	}
	return w.Flush()
}

func buildCurve(keys, tangent, pre, post string) (*curve.Curve, error) {
	var (
		c   curve.Curve
		err error
	)
	if c.PreLoop, err = curve.ParseLoopType(pre); err != nil {
		return nil, err
	}
	if c.PostLoop, err = curve.ParseLoopType(post); err != nil {
		return nil, err
	}
	t, err := curve.ParseTangent(tangent)
	if err != nil {
		return nil, err
	}
	for _, s := range strings.Split(keys, ",") {
		k, err := parseKey(s)
		if err != nil {
			return nil, err
		}
		c.Add(k)
	}
	c.ComputeTangents(t)
	return &c, nil
}

func parseKey(s string) (curve.Key, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) < 2 || len(fields) > 3 {
		return curve.Key{}, fmt.Errorf("key %q: want position:value[:step]", s)
	}
	pos, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return curve.Key{}, fmt.Errorf("key %q: position: %w", s, err)
	}
	val, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return curve.Key{}, fmt.Errorf("key %q: value: %w", s, err)
	}
	k := curve.Key{Position: float32(pos), Value: float32(val)}
	if len(fields) == 3 {
		if fields[2] != "step" {
			return curve.Key{}, fmt.Errorf("key %q: unknown continuity %q", s, fields[2])
		}
		k.Continuity = curve.ContinuityStep
	}
	return k, nil
}
