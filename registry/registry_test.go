//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/idpool"
)

func noopHandler(*Context, map[string]any) (string, error) { return "", nil }

func namedTool(name string) Tool {
	return Tool{
		Declaration: &tool.Declaration{Name: name},
		Handler:     noopHandler,
	}
}

func TestRegisterValidation(t *testing.T) {
	r := New()

	assert.Error(t, r.Register(Tool{Handler: noopHandler}))
	assert.Error(t, r.Register(Tool{Declaration: &tool.Declaration{Name: "no_handler"}}))

	require.NoError(t, r.Register(namedTool("calculate")))
	assert.Error(t, r.Register(namedTool("calculate")))
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	r := New()
	assert.Panics(t, func() {
		r.MustRegister(namedTool("think"), namedTool("think"))
	})
}

func TestGetAndNames(t *testing.T) {
	r := New()
	r.MustRegister(namedTool("think"), namedTool("calculate"), namedTool("cancel_order"))

	got, ok := r.Get("calculate")
	require.True(t, ok)
	assert.Equal(t, "calculate", got.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"calculate", "cancel_order", "think"}, r.Names())

	decls := r.Declarations()
	require.Len(t, decls, 3)
	assert.Equal(t, "calculate", decls[0].Name)
}

func TestContextPool(t *testing.T) {
	c := &Context{Pools: map[string]*idpool.Pool{
		"order": idpool.New([]string{"#W1"}),
	}}

	p, err := c.Pool("order")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Size())

	_, err = c.Pool("certificate")
	assert.Error(t, err)
}

func TestDecodeArgsWeaklyTyped(t *testing.T) {
	var out struct {
		UserID   string  `mapstructure:"user_id"`
		Quantity int     `mapstructure:"quantity"`
		Amount   float64 `mapstructure:"amount"`
	}
	// Arguments arrive JSON-decoded: numbers are float64, and agents
	// sometimes send numerics as strings.
	err := DecodeArgs(map[string]any{
		"user_id":  "u1",
		"quantity": 2.0,
		"amount":   "49.5",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, 2, out.Quantity)
	assert.Equal(t, 49.5, out.Amount)
}

func TestDecodeArgsMissingKeysZeroValued(t *testing.T) {
	var out struct {
		OrderID string `mapstructure:"order_id"`
	}
	require.NoError(t, DecodeArgs(map[string]any{}, &out))
	assert.Equal(t, "", out.OrderID)
}

func TestJSONSortsKeys(t *testing.T) {
	got, err := JSON(map[string]any{"b": 1, "a": "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":1}`, got)

	got, err = JSON([]any{})
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}
