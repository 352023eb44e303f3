// Copyright 2026 The xnago Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"log/slog"
	"runtime"
)

// DefaultMinChunk is the smallest number of elements handed to one worker
// unless WithMinChunk says otherwise.
const DefaultMinChunk = 4096

// Option configures a Transformer.
type Option func(*options)

type options struct {
	workers  int
	minChunk int
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		workers:  runtime.GOMAXPROCS(0),
		minChunk: DefaultMinChunk,
	}
}

// WithWorkers sets the maximum number of goroutines a single call uses.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithMinChunk sets the smallest number of elements worth giving to a worker.
// Calls shorter than twice this run on the calling goroutine. Values below 1
// select DefaultMinChunk.
func WithMinChunk(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultMinChunk
		}
		o.minChunk = n
	}
}

// WithLogger sets the logger for one Transformer, overriding the package
// logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
