// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch transforms large vector slices on several goroutines.
//
// A Transformer splits a call into contiguous chunks and runs each chunk
// through the sequential functions in package vecmath, so results are
// bit-identical to a single-goroutine call. Arguments are validated once,
// before any element is written, with the same errors vecmath returns.
//
// Typical use is skinning or pre-transforming vertex buffers of tens of
// thousands of elements; short slices are handled on the calling goroutine.
package batch // import "github.com/xnago/xna/math/vecmath/batch"

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/xnago/xna/math/vecmath"
)

// Transformer runs bulk transforms in parallel. It holds no per-call state
// and is safe for concurrent use.
type Transformer struct {
	opts options
}

// New returns a Transformer configured by opts.
func New(opts ...Option) *Transformer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Transformer{opts: o}
}

// Workers returns the maximum number of goroutines a call uses.
func (t *Transformer) Workers() int { return t.opts.workers }

func (t *Transformer) logger() *slog.Logger {
	if t.opts.logger != nil {
		return t.opts.logger
	}
	return Logger()
}

// workersFor returns how many chunks to split n elements into.
func (t *Transformer) workersFor(n int) int {
	return max(1, min(t.opts.workers, n/t.opts.minChunk))
}

// run validates the request and applies f to matching chunks of src and dst.
//
// If ctx is canceled after validation, chunks that have not started are
// skipped and the context's error is returned; chunks already finished stay
// written.
func run[V vecmath.Vector](ctx context.Context, t *Transformer, op string,
	src []V, srcIndex int, dst []V, dstIndex, length int,
	f func(src, dst []V) error) error {
	if err := vecmath.CheckRange(src, srcIndex, dst, dstIndex, length); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	src = src[srcIndex : srcIndex+length]
	dst = dst[dstIndex : dstIndex+length]

	workers := t.workersFor(length)
	if workers == 1 {
		return f(src, dst)
	}
	chunk := (length + workers - 1) / workers

	log := t.logger()
	if log.Enabled(ctx, slog.LevelDebug) {
		log.DebugContext(ctx, "batch: splitting transform",
			"op", op, "elements", length, "workers", workers, "chunk", chunk)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < length; start += chunk {
		end := min(start+chunk, length)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(src[start:end], dst[start:end])
		})
	}
	return g.Wait()
}

// Transform2 is the parallel form of vecmath.TransformVec2s.
func (t *Transformer) Transform2(ctx context.Context, src []vecmath.Vec2, srcIndex int, m vecmath.Mat4, dst []vecmath.Vec2, dstIndex, length int) error {
	return run(ctx, t, "Transform2", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec2) error {
		return vecmath.TransformVec2Slice(s, m, d)
	})
}

// TransformNormal2 is the parallel form of vecmath.TransformNormalVec2s.
func (t *Transformer) TransformNormal2(ctx context.Context, src []vecmath.Vec2, srcIndex int, m vecmath.Mat4, dst []vecmath.Vec2, dstIndex, length int) error {
	return run(ctx, t, "TransformNormal2", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec2) error {
		return vecmath.TransformNormalVec2Slice(s, m, d)
	})
}

// Rotate2 is the parallel form of vecmath.RotateVec2s.
func (t *Transformer) Rotate2(ctx context.Context, src []vecmath.Vec2, srcIndex int, q vecmath.Quaternion, dst []vecmath.Vec2, dstIndex, length int) error {
	return run(ctx, t, "Rotate2", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec2) error {
		return vecmath.RotateVec2Slice(s, q, d)
	})
}

// Transform3 is the parallel form of vecmath.TransformVec3s.
func (t *Transformer) Transform3(ctx context.Context, src []vecmath.Vec3, srcIndex int, m vecmath.Mat4, dst []vecmath.Vec3, dstIndex, length int) error {
	return run(ctx, t, "Transform3", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec3) error {
		return vecmath.TransformVec3Slice(s, m, d)
	})
}

// TransformNormal3 is the parallel form of vecmath.TransformNormalVec3s.
func (t *Transformer) TransformNormal3(ctx context.Context, src []vecmath.Vec3, srcIndex int, m vecmath.Mat4, dst []vecmath.Vec3, dstIndex, length int) error {
	return run(ctx, t, "TransformNormal3", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec3) error {
		return vecmath.TransformNormalVec3Slice(s, m, d)
	})
}

// Rotate3 is the parallel form of vecmath.RotateVec3s.
func (t *Transformer) Rotate3(ctx context.Context, src []vecmath.Vec3, srcIndex int, q vecmath.Quaternion, dst []vecmath.Vec3, dstIndex, length int) error {
	return run(ctx, t, "Rotate3", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec3) error {
		return vecmath.RotateVec3Slice(s, q, d)
	})
}

// Transform4 is the parallel form of vecmath.TransformVec4s.
func (t *Transformer) Transform4(ctx context.Context, src []vecmath.Vec4, srcIndex int, m vecmath.Mat4, dst []vecmath.Vec4, dstIndex, length int) error {
	return run(ctx, t, "Transform4", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec4) error {
		return vecmath.TransformVec4Slice(s, m, d)
	})
}

// Rotate4 is the parallel form of vecmath.RotateVec4s.
func (t *Transformer) Rotate4(ctx context.Context, src []vecmath.Vec4, srcIndex int, q vecmath.Quaternion, dst []vecmath.Vec4, dstIndex, length int) error {
	return run(ctx, t, "Rotate4", src, srcIndex, dst, dstIndex, length, func(s, d []vecmath.Vec4) error {
		return vecmath.RotateVec4Slice(s, q, d)
	})
}
