//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package registry holds the fixed tool catalog of one mock domain.
// Tools are registered explicitly at startup; there is no runtime
// discovery. Each tool transforms (arguments, database) into an
// observation string, where domain failures are "Error: ..." values
// rather than Go errors. The Go error return is reserved for contract
// violations that should abort the episode.
package registry

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/idpool"
)

// Context carries the per-episode state a tool may touch: the working
// database and the deterministic ID pools seeded at reset.
type Context struct {
	DB    *database.Database
	Pools map[string]*idpool.Pool
}

// Pool returns the named ID pool.
func (c *Context) Pool(name string) (*idpool.Pool, error) {
	p, ok := c.Pools[name]
	if !ok {
		return nil, fmt.Errorf("id pool %q not configured for this domain", name)
	}
	return p, nil
}

// Handler executes one tool call against the episode context.
type Handler func(tc *Context, args map[string]any) (string, error)

// Tool is one catalog entry: agent-facing metadata plus the handler and
// the collections the handler may write. Writes drives the reward
// calculator's restricted-state comparison; read-only tools leave it
// nil.
type Tool struct {
	Declaration *tool.Declaration
	Writes      []string
	Handler     Handler
}

// Name returns the tool's declared name.
func (t Tool) Name() string {
	if t.Declaration == nil {
		return ""
	}
	return t.Declaration.Name
}

// Registry is a fixed name-to-tool catalog for one domain.
type Registry struct {
	tools map[string]Tool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the catalog. Registering an unnamed tool or
// the same name twice is a programming error in domain setup.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if name == "" {
		return fmt.Errorf("tool declaration missing name")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %s has no handler", name)
	}
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("tool %s already registered", name)
	}
	r.tools[name] = t
	return nil
}

// MustRegister registers each tool and panics on setup errors. Domain
// catalogs are wired at init time where a broken registration is fatal.
func (r *Registry) MustRegister(ts ...Tool) {
	for _, t := range ts {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns all registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declarations returns the agent-facing metadata for every tool,
// ordered by name.
func (r *Registry) Declarations() []*tool.Declaration {
	decls := make([]*tool.Declaration, 0, len(r.tools))
	for _, name := range r.Names() {
		decls = append(decls, r.tools[name].Declaration)
	}
	return decls
}

// DecodeArgs decodes loose keyword arguments into a typed argument
// struct. Decoding is weakly typed because arguments arrive as
// JSON-decoded values (all numbers are float64). Missing keys decode to
// zero values; tools validate those defensively and report domain
// errors in-band.
func DecodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build args decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}
	return nil
}
