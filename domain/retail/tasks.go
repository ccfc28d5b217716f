//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package retail

import "trpc.group/trpc-go/trpc-taubench-go/task"

// Tasks returns the retail task catalog.
func Tasks() task.Catalog {
	return task.Catalog{
		{
			ID:     "retail_place_order",
			UserID: "sara_doe_496",
			Instruction: "Your email is sara.doe496@example.com. You want to order one blue 750ml stainless " +
				"steel water bottle (item 1434748144) and one black 1000ml one (item 4579334072), both from " +
				"product 6086499569. Pay the whole amount with your gift card.",
			Actions: []task.Action{
				{
					Name: "find_user_id_by_email",
					Args: map[string]any{"email": "sara.doe496@example.com"},
				},
				{
					Name: "place_order",
					Args: map[string]any{
						"user_id": "sara_doe_496",
						"items": []any{
							map[string]any{"product_id": "6086499569", "item_id": "1434748144", "quantity": 1},
							map[string]any{"product_id": "6086499569", "item_id": "4579334072", "quantity": 1},
						},
						"payment_methods": []any{
							map[string]any{"payment_id": "gift_card_8541487", "amount": 103.75},
						},
					},
				},
			},
		},
		{
			ID:     "retail_cancel_order",
			UserID: "sara_doe_496",
			Instruction: "Your user id is sara_doe_496. You want to cancel your pending order #W1390542 " +
				"because you ordered the wrong size. You want the refund to go back to your credit card.",
			Actions: []task.Action{
				{
					Name: "cancel_order",
					Args: map[string]any{"order_id": "#W1390542"},
				},
			},
		},
		{
			ID:     "retail_quote_lamp_price",
			UserID: "james_kim_7213",
			Instruction: "Your user id is james_kim_7213. You want to know the price of the white desk lamp " +
				"(item 8384507844) before deciding anything. You are not ordering today.",
			Actions: []task.Action{
				task.Respond("The white desk lamp (item 8384507844) is 130.25."),
			},
			Outputs: []string{"130.25"},
			Mode:    task.CompareOutcome,
		},
	}
}
