//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package idpool allocates entity IDs from a fixed candidate list.
// Grading requires that IDs created during an episode are deterministic
// and reproducible, so pools are small, ordered and re-seeded fresh at
// every reset instead of drawing from a global generator.
package idpool

import "fmt"

// Pool hands out the first unused candidate ID. Exhaustion is an error
// value: the pools are deliberately sized for at most a handful of
// allocations per episode.
type Pool struct {
	candidates []string
}

// New creates a Pool over the given ordered candidates. The slice is
// copied so callers cannot mutate the pool afterwards.
func New(candidates []string) *Pool {
	c := make([]string, len(candidates))
	copy(c, candidates)
	return &Pool{candidates: c}
}

// Next returns the first candidate for which taken reports false.
func (p *Pool) Next(taken func(id string) bool) (string, error) {
	for _, id := range p.candidates {
		if !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("id pool exhausted after %d candidates", len(p.candidates))
}

// Size returns the number of candidates in the pool.
func (p *Pool) Size() int { return len(p.candidates) }
