//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package retail

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

func newTestContext(t *testing.T) *registry.Context {
	t.Helper()
	dom, err := Domain()
	require.NoError(t, err)
	db, err := dom.NewDatabase()
	require.NoError(t, err)
	return &registry.Context{DB: db, Pools: dom.NewPools()}
}

func call(t *testing.T, tc *registry.Context, name string, args map[string]any) string {
	t.Helper()
	tl, ok := Tools().Get(name)
	require.True(t, ok, "tool %s not registered", name)
	obs, err := tl.Handler(tc, args)
	require.NoError(t, err)
	return obs
}

func orderArgs() map[string]any {
	return map[string]any{
		"user_id": "sara_doe_496",
		"items": []any{
			map[string]any{"product_id": "6086499569", "item_id": "1434748144", "quantity": 1},
			map[string]any{"product_id": "6086499569", "item_id": "4579334072", "quantity": 1},
		},
		"payment_methods": []any{
			map[string]any{"payment_id": "gift_card_8541487", "amount": 103.75},
		},
	}
}

func TestDomainBundle(t *testing.T) {
	dom, err := Domain()
	require.NoError(t, err)
	assert.Equal(t, "retail", dom.Name)
	assert.True(t, dom.IsTerminal("transfer_to_human_agents"))
	assert.Contains(t, dom.Tools.Names(), "place_order")
	assert.Equal(t, 3, dom.Tasks.Len())
}

func TestFindUserIDByEmail(t *testing.T) {
	tc := newTestContext(t)

	obs := call(t, tc, "find_user_id_by_email", map[string]any{"email": "sara.doe496@example.com"})
	assert.Equal(t, "sara_doe_496", obs)

	// Email matching is case-insensitive.
	obs = call(t, tc, "find_user_id_by_email", map[string]any{"email": "SARA.DOE496@EXAMPLE.COM"})
	assert.Equal(t, "sara_doe_496", obs)

	obs = call(t, tc, "find_user_id_by_email", map[string]any{"email": "nobody@example.com"})
	assert.Equal(t, "Error: user not found", obs)
}

func TestPlaceOrder(t *testing.T) {
	tc := newTestContext(t)
	obs := call(t, tc, "place_order", orderArgs())

	var order map[string]any
	require.NoError(t, json.Unmarshal([]byte(obs), &order))
	assert.Equal(t, "#W9001000", order["order_id"])
	assert.Equal(t, "pending", order["status"])
	items := order["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Water Bottle", items[0].(map[string]any)["name"])

	stored, ok := tc.DB.Get("orders", "#W9001000")
	require.True(t, ok)
	assert.Equal(t, createdAt, stored["created_at"])

	user, _ := tc.DB.Get("users", "sara_doe_496")
	assert.Contains(t, database.Slice(user, "orders"), "#W9001000")
	giftCard := database.Map(user, "payment_methods")["gift_card_8541487"].(map[string]any)
	assert.Equal(t, 16.25, database.Num(giftCard, "amount"))
}

func TestPlaceOrderValidationLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(args map[string]any)
		want   string
	}{
		{
			name: "unavailable item",
			mutate: func(args map[string]any) {
				args["items"] = []any{
					map[string]any{"product_id": "6086499569", "item_id": "6469567736", "quantity": 1},
				}
			},
			want: "Error: item 6469567736 is not available",
		},
		{
			name: "zero quantity",
			mutate: func(args map[string]any) {
				args["items"] = []any{
					map[string]any{"product_id": "6086499569", "item_id": "1434748144", "quantity": 0},
				}
			},
			want: "Error: invalid quantity for item 1434748144",
		},
		{
			name: "unknown product",
			mutate: func(args map[string]any) {
				args["items"] = []any{
					map[string]any{"product_id": "0000000000", "item_id": "1434748144", "quantity": 1},
				}
			},
			want: "Error: product 0000000000 not found",
		},
		{
			name: "unknown payment method",
			mutate: func(args map[string]any) {
				args["payment_methods"] = []any{
					map[string]any{"payment_id": "gift_card_0000000", "amount": 103.75},
				}
			},
			want: "Error: payment method gift_card_0000000 not found",
		},
		{
			name: "payment does not add up",
			mutate: func(args map[string]any) {
				args["payment_methods"] = []any{
					map[string]any{"payment_id": "gift_card_8541487", "amount": 100},
				}
			},
			want: "Error: payment amount does not add up, total price is 103.75, but paid 100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContext(t)
			before, err := tc.DB.Snapshot()
			require.NoError(t, err)

			args := orderArgs()
			tt.mutate(args)
			assert.Equal(t, tt.want, call(t, tc, "place_order", args))
			assert.True(t, tc.DB.Equal(before), "failed order must not mutate the database")
		})
	}
}

func TestPlaceOrderInsufficientGiftCard(t *testing.T) {
	tc := newTestContext(t)
	args := map[string]any{
		"user_id": "james_kim_7213",
		"items": []any{
			map[string]any{"product_id": "9523456873", "item_id": "8384507844", "quantity": 1},
		},
		"payment_methods": []any{
			map[string]any{"payment_id": "gift_card_6904152", "amount": 130.25},
		},
	}
	obs := call(t, tc, "place_order", args)
	assert.Equal(t, "Error: not enough balance in payment method gift_card_6904152", obs)
}

func TestCancelOrderDoubleRefund(t *testing.T) {
	tc := newTestContext(t)
	args := map[string]any{"order_id": "#W1390542"}

	call(t, tc, "cancel_order", args)
	order, _ := tc.DB.Get("orders", "#W1390542")
	assert.Equal(t, "cancelled", order["status"])
	history := database.Slice(order, "payment_history")
	require.Len(t, history, 2)
	refund := history[1].(map[string]any)
	assert.Equal(t, -49.5, database.Num(refund, "amount"))

	call(t, tc, "cancel_order", args)
	order, _ = tc.DB.Get("orders", "#W1390542")
	assert.Len(t, database.Slice(order, "payment_history"), 4)
}

func TestCancelOrderUnknown(t *testing.T) {
	tc := newTestContext(t)
	obs := call(t, tc, "cancel_order", map[string]any{"order_id": "#W0000000"})
	assert.Equal(t, "Error: order not found", obs)
}

func TestLookupsDoNotMutate(t *testing.T) {
	tc := newTestContext(t)
	before, err := tc.DB.Snapshot()
	require.NoError(t, err)

	obs := call(t, tc, "get_user_details", map[string]any{"user_id": "james_kim_7213"})
	assert.Contains(t, obs, "james.kim7213@example.com")

	obs = call(t, tc, "get_order_details", map[string]any{"order_id": "#W1390542"})
	assert.Contains(t, obs, `"status":"pending"`)
	obs = call(t, tc, "get_order_details", map[string]any{"order_id": "#W0000000"})
	assert.Equal(t, "Error: order not found", obs)

	obs = call(t, tc, "get_product_details", map[string]any{"product_id": "9523456873"})
	assert.Contains(t, obs, "Desk Lamp")
	obs = call(t, tc, "get_product_details", map[string]any{"product_id": "0000000000"})
	assert.Equal(t, "Error: product not found", obs)

	assert.True(t, tc.DB.Equal(before))
}
