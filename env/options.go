//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package env

import "context"

// UserSimulator produces the next user utterance after the agent
// responds, and signals when the conversation is over. The core treats
// it as an opaque collaborator; the default simulator never speaks and
// never ends the episode, leaving completion to terminal actions.
type UserSimulator interface {
	// Reply consumes the agent's response and returns the next user
	// utterance and whether the conversation is over.
	Reply(ctx context.Context, content string) (string, bool, error)
}

// silentUser is the default simulator: no utterances, no stop signal.
type silentUser struct{}

func (silentUser) Reply(context.Context, string) (string, bool, error) {
	return "", false, nil
}

// ScriptedUser replays a fixed list of utterances and then ends the
// conversation. Useful for tests and offline replays.
type ScriptedUser struct {
	Utterances []string

	next int
}

// Reply returns the next scripted utterance, signalling completion once
// the script is exhausted.
func (u *ScriptedUser) Reply(context.Context, string) (string, bool, error) {
	if u.next >= len(u.Utterances) {
		return "", true, nil
	}
	utterance := u.Utterances[u.next]
	u.next++
	return utterance, false, nil
}

// Options configure an Env.
type Options struct {
	user UserSimulator
}

func newOptions(opt ...Option) *Options {
	opts := &Options{user: silentUser{}}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an Env at construction time.
type Option func(*Options)

// WithUserSimulator sets the user simulator consulted by respond
// actions.
func WithUserSimulator(u UserSimulator) Option {
	return func(o *Options) {
		if u != nil {
			o.user = u
		}
	}
}
