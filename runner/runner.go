//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package runner drives episode sweeps over a domain's task catalog.
// Each episode owns its own Env, so episodes can run concurrently on a
// worker pool while the domain seed stays read-only. The runner also
// owns the step budget; the environment itself never limits steps.
package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"trpc.group/trpc-go/trpc-agent-go/log"

	"trpc.group/trpc-go/trpc-taubench-go/domain"
	"trpc.group/trpc-go/trpc-taubench-go/env"
	"trpc.group/trpc-go/trpc-taubench-go/task"
)

// Policy decides the next action from the latest observation. Act
// returns ok=false when the policy has nothing further to do and the
// episode should end.
type Policy interface {
	Act(ctx context.Context, observation string) (action task.Action, ok bool, err error)
}

// PolicyFactory builds a fresh policy for one episode's task.
type PolicyFactory func(t task.Task) Policy

// GroundTruth returns a factory whose policies replay the task's
// recorded action trace verbatim. Sweeping a catalog with it checks
// that every task graded against its own trace scores 1.0.
func GroundTruth() PolicyFactory {
	return func(t task.Task) Policy {
		return &groundTruthPolicy{actions: t.Actions}
	}
}

type groundTruthPolicy struct {
	actions []task.Action
	next    int
}

func (p *groundTruthPolicy) Act(context.Context, string) (task.Action, bool, error) {
	if p.next >= len(p.actions) {
		return task.Action{}, false, nil
	}
	a := p.actions[p.next]
	p.next++
	return a, true, nil
}

// EpisodeResult summarizes one completed episode.
type EpisodeResult struct {
	RunID     string
	TaskIndex int
	Reward    float64
	Steps     int
	Done      bool
	Info      env.Info
	Err       error
}

// Runner sweeps a domain's catalog with one Env per episode.
type Runner struct {
	dom  *domain.Domain
	opts *Options
}

// New creates a Runner for the given domain.
func New(dom *domain.Domain, opt ...Option) (*Runner, error) {
	if dom == nil {
		return nil, fmt.Errorf("domain is nil")
	}
	return &Runner{dom: dom, opts: newOptions(opt...)}, nil
}

// Run executes one episode per task index on a worker pool and returns
// the results in index order. An empty index list sweeps the whole
// catalog. Episode failures are recorded per episode and aggregated in
// the returned error; one broken episode does not stop the sweep.
func (r *Runner) Run(ctx context.Context, factory PolicyFactory, indices ...int) ([]*EpisodeResult, error) {
	if factory == nil {
		return nil, fmt.Errorf("policy factory is nil")
	}
	if len(indices) == 0 {
		for i := 0; i < r.dom.Tasks.Len(); i++ {
			indices = append(indices, i)
		}
	}

	runID := uuid.NewString()
	results := make([]*EpisodeResult, len(indices))
	pool, err := createEpisodePool(r.opts.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("create episode pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, taskIndex := range indices {
		wg.Add(1)
		param := episodeParamPool.Get().(*episodeParam)
		param.idx = i
		param.ctx = ctx
		param.runner = r
		param.factory = factory
		param.taskIndex = taskIndex
		param.runID = runID
		param.results = results
		param.wg = &wg
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			episodeParamPool.Put(param)
			results[i] = &EpisodeResult{
				RunID:     runID,
				TaskIndex: taskIndex,
				Err:       fmt.Errorf("invoke episode worker: %w", err),
			}
		}
	}
	wg.Wait()

	var merr *multierror.Error
	for _, res := range results {
		if res != nil && res.Err != nil {
			merr = multierror.Append(merr, fmt.Errorf("task %d: %w", res.TaskIndex, res.Err))
		}
	}
	return results, merr.ErrorOrNil()
}

// runEpisode runs one full episode; failures are recorded on the
// result rather than propagated, so a sweep always yields one result
// per requested index.
func (r *Runner) runEpisode(ctx context.Context, factory PolicyFactory, runID string, taskIndex int) *EpisodeResult {
	result := &EpisodeResult{RunID: runID, TaskIndex: taskIndex}

	e, err := env.New(r.dom, r.opts.EnvOptions...)
	if err != nil {
		result.Err = fmt.Errorf("create env: %w", err)
		return result
	}
	observation, info, err := e.Reset(ctx, taskIndex)
	if err != nil {
		result.Err = fmt.Errorf("reset: %w", err)
		return result
	}
	result.Info = info

	policy := factory(e.Task())
	for step := 0; step < r.opts.MaxSteps; step++ {
		action, ok, err := policy.Act(ctx, observation)
		if err != nil {
			result.Err = fmt.Errorf("policy: %w", err)
			return result
		}
		if !ok {
			break
		}
		sr, err := e.Step(ctx, action)
		if err != nil {
			result.Err = fmt.Errorf("step %d: %w", step, err)
			return result
		}
		observation = sr.Observation
		result.Reward = sr.Reward
		result.Steps = sr.Info.Steps
		result.Done = sr.Done
		result.Info = sr.Info
		if sr.Done {
			break
		}
	}
	log.Debugf("episode done: run=%s domain=%s task=%d reward=%v steps=%d",
		runID, r.dom.Name, taskIndex, result.Reward, result.Steps)
	return result
}
