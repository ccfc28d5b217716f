//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package runner

import "trpc.group/trpc-go/trpc-taubench-go/env"

const (
	defaultConcurrency = 4
	defaultMaxSteps    = 30
)

// Options configures a Runner.
type Options struct {
	// Concurrency is the worker pool size for episode sweeps.
	Concurrency int
	// MaxSteps caps the number of environment steps per episode.
	MaxSteps int
	// EnvOptions are passed to every per-episode environment.
	EnvOptions []env.Option
}

// Option mutates Options.
type Option func(*Options)

func newOptions(opt ...Option) *Options {
	opts := &Options{
		Concurrency: defaultConcurrency,
		MaxSteps:    defaultMaxSteps,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithConcurrency sets the worker pool size.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

// WithMaxSteps sets the per-episode step budget.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}

// WithEnvOptions sets options applied to each episode's environment.
func WithEnvOptions(opt ...env.Option) Option {
	return func(o *Options) {
		o.EnvOptions = append(o.EnvOptions, opt...)
	}
}
