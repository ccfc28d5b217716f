//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package reward grades an episode against its task. Two independent
// checks combine into one scalar: the working database must match the
// state obtained by replaying the task's ground-truth trace from the
// same seed, restricted to the collections that trace writes, and every
// expected output must appear verbatim in the transcript. The reward is
// 1.0 only when both pass; the sub-scores travel in the result for
// diagnostics.
package reward

import (
	"fmt"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/idpool"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
	"trpc.group/trpc-go/trpc-taubench-go/task"
)

// Result carries the scalar reward and its diagnostic sub-scores.
type Result struct {
	// Reward is 1.0 when both checks pass, otherwise 0.0.
	Reward float64 `json:"reward"`
	// DatabaseMatch reports the restricted end-state comparison.
	DatabaseMatch bool `json:"database_match"`
	// OutputMatch reports whether every expected output was observed.
	OutputMatch bool `json:"output_match"`
	// MissingOutputs lists expected outputs absent from the transcript.
	MissingOutputs []string `json:"missing_outputs,omitempty"`
	// ComparedCollections names the collections the state check covered.
	ComparedCollections []string `json:"compared_collections,omitempty"`
}

// Calculator grades episodes for one domain. It replays ground-truth
// traces on its own fresh seed copies and never touches the episode's
// working database.
type Calculator struct {
	seed  map[string]database.Collection
	tools *registry.Registry
	pools map[string][]string
}

// New creates a Calculator over the domain's seed, tool catalog and ID
// pool candidates.
func New(seed map[string]database.Collection, tools *registry.Registry, pools map[string][]string) *Calculator {
	return &Calculator{seed: seed, tools: tools, pools: pools}
}

// Compute grades the current episode state. It is a pure function of
// the working database, the transcript accumulated so far and the task;
// callers may invoke it after every step.
func (c *Calculator) Compute(db *database.Database, t task.Task, transcript []string) (Result, error) {
	expected, touched, err := c.replay(t)
	if err != nil {
		return Result{}, fmt.Errorf("replay ground truth for task %s: %w", t.ID, err)
	}

	res := Result{
		DatabaseMatch:       db.EqualCollections(expected, touched),
		OutputMatch:         true,
		ComparedCollections: touched,
	}
	joined := strings.Join(transcript, "\n")
	for _, want := range t.Outputs {
		if !strings.Contains(joined, want) {
			res.OutputMatch = false
			res.MissingOutputs = append(res.MissingOutputs, want)
		}
	}
	if res.DatabaseMatch && res.OutputMatch {
		res.Reward = 1.0
	}
	return res, nil
}

// replay executes the task's ground-truth actions on a fresh seed copy
// with fresh ID pools, and returns the resulting database together with
// the sorted union of collections those actions may write. Respond
// actions carry no database effect and are skipped.
func (c *Calculator) replay(t task.Task) (*database.Database, []string, error) {
	db, err := database.New(c.seed)
	if err != nil {
		return nil, nil, fmt.Errorf("copy seed: %w", err)
	}
	pools := make(map[string]*idpool.Pool, len(c.pools))
	for name, candidates := range c.pools {
		pools[name] = idpool.New(candidates)
	}
	tc := &registry.Context{DB: db, Pools: pools}

	touched := map[string]bool{}
	for i, a := range t.Actions {
		if a.IsRespond() {
			continue
		}
		tl, ok := c.tools.Get(a.Name)
		if !ok {
			return nil, nil, fmt.Errorf("ground-truth action %d references unknown tool %s", i, a.Name)
		}
		if _, err := tl.Handler(tc, a.Args); err != nil {
			return nil, nil, fmt.Errorf("ground-truth action %d (%s): %w", i, a.Name, err)
		}
		for _, coll := range tl.Writes {
			touched[coll] = true
		}
	}
	names := make([]string, 0, len(touched))
	for name := range touched {
		names = append(names, name)
	}
	sort.Strings(names)
	return db, names, nil
}
