//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package env implements the episode state machine that drives one mock
// domain: reset copies the seed database and selects a task, and each
// step dispatches one action through the tool catalog, recomputing the
// reward as it goes. One Env serves exactly one episode at a time and
// is not safe for concurrent use; parallel sweeps own one Env each.
package env

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-agent-go/log"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/domain"
	"trpc.group/trpc-go/trpc-taubench-go/idpool"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
	"trpc.group/trpc-go/trpc-taubench-go/reward"
	"trpc.group/trpc-go/trpc-taubench-go/task"
)

// Status is the lifecycle state of an Env.
type Status int

// Lifecycle states: NotStarted -> Active -> Done, with Reset returning
// to Active from either end state.
const (
	StatusNotStarted Status = iota
	StatusActive
	StatusDone
)

// Info carries per-episode diagnostics alongside each observation.
type Info struct {
	// EpisodeID uniquely identifies this episode for tracing. It is
	// never used for gradable entity IDs.
	EpisodeID string `json:"episode_id"`
	// Domain names the mock domain.
	Domain string `json:"domain"`
	// TaskIndex is the catalog index selected at reset.
	TaskIndex int `json:"task_index"`
	// TaskID is the task's catalog identifier.
	TaskID string `json:"task_id,omitempty"`
	// UserID is the task's persona user.
	UserID string `json:"user_id"`
	// Steps counts the actions taken so far this episode.
	Steps int `json:"steps"`
	// RewardInfo holds the latest reward breakdown.
	RewardInfo *reward.Result `json:"reward_info,omitempty"`
}

// StepResult is what one step observes.
type StepResult struct {
	Observation string
	Reward      float64
	Done        bool
	Info        Info
}

// Env owns the working database and episode state for one domain.
type Env struct {
	dom  *domain.Domain
	calc *reward.Calculator
	user UserSimulator

	status     Status
	episodeID  string
	taskIndex  int
	task       task.Task
	db         *database.Database
	pools      map[string]*idpool.Pool
	steps      int
	transcript []string
	lastReward *reward.Result
}

// New creates an Env for the given domain.
func New(dom *domain.Domain, opt ...Option) (*Env, error) {
	if dom == nil {
		return nil, fmt.Errorf("domain is nil")
	}
	opts := newOptions(opt...)
	return &Env{
		dom:  dom,
		calc: reward.New(dom.Seed, dom.Tools, dom.Pools),
		user: opts.user,
	}, nil
}

// Reset starts a fresh episode on the task at the given catalog index.
// The working database is deep-copied from the immutable seed and the
// ID pools are re-seeded, so every episode starts from identical state
// and mutations never leak across episodes. It returns the initial
// observation: the task instruction.
func (e *Env) Reset(ctx context.Context, taskIndex int) (string, Info, error) {
	t, err := e.dom.Tasks.Get(taskIndex)
	if err != nil {
		return "", Info{}, fmt.Errorf("select task: %w", err)
	}
	db, err := e.dom.NewDatabase()
	if err != nil {
		return "", Info{}, fmt.Errorf("reset database: %w", err)
	}

	e.status = StatusActive
	e.episodeID = uuid.NewString()
	e.taskIndex = taskIndex
	e.task = t
	e.db = db
	e.pools = e.dom.NewPools()
	e.steps = 0
	e.transcript = nil
	e.lastReward = nil

	log.Debugf("env reset: domain=%s task=%d episode=%s", e.dom.Name, taskIndex, e.episodeID)
	return t.Instruction, e.info(), nil
}

// Step executes one action in an active episode. Recoverable failures
// (unknown action, tool validation errors) surface as the observation
// text so the agent can react in-band; the returned error is reserved
// for contract violations that void the episode.
func (e *Env) Step(ctx context.Context, a task.Action) (StepResult, error) {
	if e.status != StatusActive {
		return StepResult{}, fmt.Errorf("step called while episode is not active (status %d)", e.status)
	}
	e.steps++

	var observation string
	done := false
	switch {
	case a.IsRespond():
		content := a.Content()
		e.transcript = append(e.transcript, content)
		utterance, stop, err := e.user.Reply(ctx, content)
		if err != nil {
			return StepResult{}, fmt.Errorf("user simulator: %w", err)
		}
		observation = utterance
		done = stop
		if utterance != "" {
			e.transcript = append(e.transcript, utterance)
		}
	default:
		tl, ok := e.dom.Tools.Get(a.Name)
		if !ok {
			observation = "Error: action not found"
		} else {
			var err error
			observation, err = tl.Handler(&registry.Context{DB: e.db, Pools: e.pools}, a.Args)
			if err != nil {
				return StepResult{}, fmt.Errorf("tool %s: %w", a.Name, err)
			}
		}
		e.transcript = append(e.transcript, observation)
		if e.dom.IsTerminal(a.Name) {
			done = true
		}
	}

	// Reward is a pure function of the current database, the transcript
	// and the task; recompute it on every step rather than accumulating.
	res, err := e.calc.Compute(e.db, e.task, e.transcript)
	if err != nil {
		return StepResult{}, fmt.Errorf("compute reward: %w", err)
	}
	e.lastReward = &res

	if done {
		e.status = StatusDone
	}
	return StepResult{
		Observation: observation,
		Reward:      res.Reward,
		Done:        done,
		Info:        e.info(),
	}, nil
}

// Status returns the lifecycle state.
func (e *Env) Status() Status { return e.status }

// Task returns the task selected at the last reset.
func (e *Env) Task() task.Task { return e.task }

// Transcript returns the observations and responses accumulated so far.
func (e *Env) Transcript() []string {
	out := make([]string, len(e.transcript))
	copy(out, e.transcript)
	return out
}

func (e *Env) info() Info {
	return Info{
		EpisodeID:  e.episodeID,
		Domain:     e.dom.Name,
		TaskIndex:  e.taskIndex,
		TaskID:     e.task.ID,
		UserID:     e.task.UserID,
		Steps:      e.steps,
		RewardInfo: e.lastReward,
	}
}
