//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package domain bundles everything that defines one mock domain: the
// immutable seed data, the tool catalog, the terminal action set, the
// deterministic ID pools and the task catalog. Domains are static
// registration tables built at startup.
package domain

import (
	"fmt"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/idpool"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
	"trpc.group/trpc-go/trpc-taubench-go/task"
)

// Domain describes one mock backend. The Seed must be treated as
// read-only; every episode works on a fresh deep copy.
type Domain struct {
	// Name identifies the domain, e.g. "airline" or "retail".
	Name string
	// Seed holds the baseline collections each episode copies from.
	Seed map[string]database.Collection
	// Tools is the fixed tool catalog.
	Tools *registry.Registry
	// TerminalActions force episode completion when executed.
	TerminalActions []string
	// Pools maps pool name to its ordered ID candidates.
	Pools map[string][]string
	// Tasks is the ordered task catalog.
	Tasks task.Catalog
}

// NewDatabase returns a fresh working copy of the seed.
func (d *Domain) NewDatabase() (*database.Database, error) {
	db, err := database.New(d.Seed)
	if err != nil {
		return nil, fmt.Errorf("copy %s seed: %w", d.Name, err)
	}
	return db, nil
}

// NewPools seeds fresh ID pools for one episode.
func (d *Domain) NewPools() map[string]*idpool.Pool {
	pools := make(map[string]*idpool.Pool, len(d.Pools))
	for name, candidates := range d.Pools {
		pools[name] = idpool.New(candidates)
	}
	return pools
}

// IsTerminal reports whether the action name forces episode completion.
func (d *Domain) IsTerminal(name string) bool {
	for _, t := range d.TerminalActions {
		if t == name {
			return true
		}
	}
	return false
}
