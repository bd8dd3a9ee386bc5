//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool

import "runtime"

type options struct {
	concurrency int
	callLogging bool
	callbacks   *Callbacks
}

func newOptions(opts ...Option) options {
	o := options{
		concurrency: runtime.GOMAXPROCS(0),
		callLogging: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a ToolSet.
type Option func(*options)

// WithConcurrency bounds the number of goroutines used by Documents and
// CallAll. Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithCallLogging turns the per call info log on or off. It is on by default.
func WithCallLogging(enabled bool) Option {
	return func(o *options) {
		o.callLogging = enabled
	}
}

// WithCallbacks installs hooks run around every Call.
func WithCallbacks(cb *Callbacks) Option {
	return func(o *options) {
		o.callbacks = cb
	}
}
