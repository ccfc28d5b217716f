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
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type episodeParam struct {
	idx       int
	ctx       context.Context
	runner    *Runner
	factory   PolicyFactory
	taskIndex int
	runID     string
	results   []*EpisodeResult
	wg        *sync.WaitGroup
}

func (p *episodeParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.runner = nil
	p.factory = nil
	p.taskIndex = 0
	p.runID = ""
	p.results = nil
	p.wg = nil
}

var episodeParamPool = &sync.Pool{
	New: func() any { return new(episodeParam) },
}

func createEpisodePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*episodeParam)
		if !ok {
			panic("episode pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			episodeParamPool.Put(param)
		}()
		param.results[param.idx] = param.runner.runEpisode(param.ctx, param.factory, param.runID, param.taskIndex)
	})
	if err != nil {
		return nil, fmt.Errorf("create episode pool: %w", err)
	}
	return pool, nil
}
