//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package runner

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-taubench-go/domain"
	"trpc.group/trpc-go/trpc-taubench-go/domain/airline"
	"trpc.group/trpc-go/trpc-taubench-go/domain/retail"
)

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	dom, err := airline.Domain()
	require.NoError(t, err)
	r, err := New(dom)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestGroundTruthSweep(t *testing.T) {
	domains := []func() (*domain.Domain, error){airline.Domain, retail.Domain}
	for _, build := range domains {
		dom, err := build()
		require.NoError(t, err)
		t.Run(dom.Name, func(t *testing.T) {
			r, err := New(dom, WithConcurrency(2))
			require.NoError(t, err)

			results, err := r.Run(context.Background(), GroundTruth())
			require.NoError(t, err)
			require.Len(t, results, dom.Tasks.Len())

			for i, res := range results {
				require.NotNil(t, res)
				assert.NoError(t, res.Err)
				assert.Equal(t, i, res.TaskIndex)
				assert.Equal(t, 1.0, res.Reward, "task %d (%s)", i, res.Info.TaskID)
				assert.NotEmpty(t, res.RunID)
			}
			// All episodes belong to the same run.
			assert.Equal(t, results[0].RunID, results[1].RunID)
		})
	}
}

func TestRunSubset(t *testing.T) {
	dom, err := retail.Domain()
	require.NoError(t, err)
	r, err := New(dom)
	require.NoError(t, err)

	results, err := r.Run(context.Background(), GroundTruth(), 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].TaskIndex)
	assert.Equal(t, 1.0, results[0].Reward)
}

func TestRunBadIndexAggregatesError(t *testing.T) {
	dom, err := airline.Domain()
	require.NoError(t, err)
	r, err := New(dom)
	require.NoError(t, err)

	results, err := r.Run(context.Background(), GroundTruth(), 0, 99)
	assert.Error(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1.0, results[0].Reward)
	assert.Error(t, results[1].Err)
}

func TestEpisodeParamResetClearsReferences(t *testing.T) {
	dom, err := airline.Domain()
	require.NoError(t, err)
	r, err := New(dom)
	require.NoError(t, err)

	var wg sync.WaitGroup
	p := &episodeParam{
		idx:       2,
		ctx:       context.Background(),
		runner:    r,
		factory:   GroundTruth(),
		taskIndex: 1,
		runID:     "run",
		results:   make([]*EpisodeResult, 3),
		wg:        &wg,
	}
	p.reset()
	assert.Equal(t, &episodeParam{}, p, "recycled params must not retain references")
}

func TestMaxStepsBudget(t *testing.T) {
	// The place-order trace needs two steps; with a budget of one the
	// episode stops early and cannot reach the goal state.
	dom, err := retail.Domain()
	require.NoError(t, err)
	r, err := New(dom, WithMaxSteps(1))
	require.NoError(t, err)

	results, err := r.Run(context.Background(), GroundTruth(), 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Reward)
	assert.Equal(t, 1, results[0].Steps)
}
