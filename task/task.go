//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package task defines the immutable task records a domain catalog
// serves: one instruction, the ground-truth action trace an ideal agent
// would execute, and the literal outputs the final transcript must
// contain.
package task

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ActionRespond is the reserved action name for a natural-language
// reply to the user. It carries a single "content" argument and never
// mutates the database.
const ActionRespond = "respond"

// ComparisonMode annotates how a task's ground-truth trace was meant to
// be compared. Both modes grade on the database end state produced by
// replay; the annotation is kept for catalog fidelity.
type ComparisonMode string

const (
	// CompareSequence grades outcome of the trace replayed in order.
	CompareSequence ComparisonMode = "sequence"
	// CompareOutcome grades only the resulting database state.
	CompareOutcome ComparisonMode = "outcome"
)

// Action is a named, argument-carrying instruction submitted to the
// environment: either a tool invocation or the reserved respond action.
type Action struct {
	Name string         `json:"name" mapstructure:"name"`
	Args map[string]any `json:"kwargs,omitempty" mapstructure:"kwargs"`
}

// IsRespond reports whether the action is the reserved respond action.
func (a Action) IsRespond() bool { return a.Name == ActionRespond }

// Content returns the respond action's content argument.
func (a Action) Content() string {
	if s, ok := a.Args["content"].(string); ok {
		return s
	}
	return ""
}

// Respond builds a respond action with the given content.
func Respond(content string) Action {
	return Action{Name: ActionRespond, Args: map[string]any{"content": content}}
}

// Task is one benchmark scenario. Tasks are created at catalog load
// time and never mutated afterwards.
type Task struct {
	ID          string         `json:"id,omitempty" mapstructure:"id"`
	UserID      string         `json:"user_id" mapstructure:"user_id"`
	Instruction string         `json:"instruction" mapstructure:"instruction"`
	Actions     []Action       `json:"actions" mapstructure:"actions"`
	Outputs     []string       `json:"outputs,omitempty" mapstructure:"outputs"`
	Mode        ComparisonMode `json:"comparison_mode,omitempty" mapstructure:"comparison_mode"`
}

// Catalog is a static ordered sequence of tasks for one domain/split.
type Catalog []Task

// Get returns the task at the given index.
func (c Catalog) Get(index int) (Task, error) {
	if index < 0 || index >= len(c) {
		return Task{}, fmt.Errorf("task index %d out of range [0, %d)", index, len(c))
	}
	return c[index], nil
}

// Len returns the number of tasks in the catalog.
func (c Catalog) Len() int { return len(c) }

// FromMap normalizes a legacy map-shaped task definition into a Task.
// Older task files represented tasks as loose dictionaries; the
// conversion happens once here at load time so every consumer sees a
// single canonical record type.
func FromMap(raw map[string]any) (Task, error) {
	var t Task
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &t,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Task{}, fmt.Errorf("build task decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return Task{}, fmt.Errorf("decode task: %w", err)
	}
	if t.Mode == "" {
		t.Mode = CompareSequence
	}
	return t, nil
}
