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
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

func findUserIDByEmail() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "find_user_id_by_email",
			Description: "Find user id by email. If the user is not found, the function will return an error message.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"email": {
						Type:        "string",
						Description: "The email of the user, such as 'something@example.com'.",
					},
				},
				Required: []string{"email"},
			},
		},
		Handler: handleFindUserIDByEmail,
	}
}

func handleFindUserIDByEmail(tc *registry.Context, args map[string]any) (string, error) {
	var in struct {
		Email string `mapstructure:"email"`
	}
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	users := tc.DB.Collection(collUsers)
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if strings.EqualFold(database.Str(users[id], "email"), in.Email) {
			return id, nil
		}
	}
	return "Error: user not found", nil
}

func getUserDetails() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "get_user_details",
			Description: "Get the details of a user, including their orders.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"user_id": {
						Type:        "string",
						Description: "The user id, such as 'sara_doe_496'.",
					},
				},
				Required: []string{"user_id"},
			},
		},
		Handler: func(tc *registry.Context, args map[string]any) (string, error) {
			var in struct {
				UserID string `mapstructure:"user_id"`
			}
			if err := registry.DecodeArgs(args, &in); err != nil {
				return "", err
			}
			user, ok := tc.DB.Get(collUsers, in.UserID)
			if !ok {
				return "Error: user not found", nil
			}
			return registry.JSON(user)
		},
	}
}

func getOrderDetails() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "get_order_details",
			Description: "Get the status and details of an order.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"order_id": {
						Type: "string",
						Description: "The order id, such as '#W0000000'. Be careful there is a '#' symbol " +
							"at the beginning of the order id.",
					},
				},
				Required: []string{"order_id"},
			},
		},
		Handler: func(tc *registry.Context, args map[string]any) (string, error) {
			var in struct {
				OrderID string `mapstructure:"order_id"`
			}
			if err := registry.DecodeArgs(args, &in); err != nil {
				return "", err
			}
			order, ok := tc.DB.Get(collOrders, in.OrderID)
			if !ok {
				return "Error: order not found", nil
			}
			return registry.JSON(order)
		},
	}
}

func getProductDetails() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "get_product_details",
			Description: "Get the inventory details of a product.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"product_id": {
						Type: "string",
						Description: "The product id, such as '6086499569'. Be careful the product id is " +
							"different from the item id.",
					},
				},
				Required: []string{"product_id"},
			},
		},
		Handler: func(tc *registry.Context, args map[string]any) (string, error) {
			var in struct {
				ProductID string `mapstructure:"product_id"`
			}
			if err := registry.DecodeArgs(args, &in); err != nil {
				return "", err
			}
			product, ok := tc.DB.Get(collProducts, in.ProductID)
			if !ok {
				return "Error: product not found", nil
			}
			return registry.JSON(product)
		},
	}
}
