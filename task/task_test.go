//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondAction(t *testing.T) {
	a := Respond("hello")
	assert.True(t, a.IsRespond())
	assert.Equal(t, "hello", a.Content())

	tool := Action{Name: "get_user_details", Args: map[string]any{"user_id": "u1"}}
	assert.False(t, tool.IsRespond())
	assert.Equal(t, "", tool.Content())
}

func TestCatalogGet(t *testing.T) {
	c := Catalog{{ID: "t0"}, {ID: "t1"}}
	assert.Equal(t, 2, c.Len())

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = c.Get(-1)
	assert.Error(t, err)
	_, err = c.Get(2)
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	raw := map[string]any{
		"user_id":     "sara_doe_496",
		"instruction": "Cancel the order.",
		"actions": []any{
			map[string]any{
				"name":   "cancel_order",
				"kwargs": map[string]any{"order_id": "#W1390542"},
			},
			map[string]any{
				"name":   "respond",
				"kwargs": map[string]any{"content": "done"},
			},
		},
		"outputs": []any{"cancelled"},
	}
	got, err := FromMap(raw)
	require.NoError(t, err)

	assert.Equal(t, "sara_doe_496", got.UserID)
	assert.Equal(t, "Cancel the order.", got.Instruction)
	require.Len(t, got.Actions, 2)
	assert.Equal(t, "cancel_order", got.Actions[0].Name)
	assert.Equal(t, "#W1390542", got.Actions[0].Args["order_id"])
	assert.True(t, got.Actions[1].IsRespond())
	assert.Equal(t, []string{"cancelled"}, got.Outputs)
	assert.Equal(t, CompareSequence, got.Mode)
}

func TestFromMapExplicitMode(t *testing.T) {
	got, err := FromMap(map[string]any{
		"user_id":         "u1",
		"instruction":     "Ask a question.",
		"comparison_mode": "outcome",
	})
	require.NoError(t, err)
	assert.Equal(t, CompareOutcome, got.Mode)
}
