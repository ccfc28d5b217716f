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
	"fmt"

	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

type orderItemArgs struct {
	ProductID string `mapstructure:"product_id"`
	ItemID    string `mapstructure:"item_id"`
	Quantity  int    `mapstructure:"quantity"`
}

type orderPaymentArgs struct {
	PaymentID string  `mapstructure:"payment_id"`
	Amount    float64 `mapstructure:"amount"`
}

type placeOrderArgs struct {
	UserID         string             `mapstructure:"user_id"`
	Items          []orderItemArgs    `mapstructure:"items"`
	PaymentMethods []orderPaymentArgs `mapstructure:"payment_methods"`
}

func placeOrder() registry.Tool {
	return registry.Tool{
		Declaration: placeOrderDecl(),
		Writes:      []string{collOrders, collUsers},
		Handler:     handlePlaceOrder,
	}
}

// handlePlaceOrder mirrors the airline booking contract: the entire
// order is validated first, and the database is mutated only after
// every check has passed.
func handlePlaceOrder(tc *registry.Context, args map[string]any) (string, error) {
	var in placeOrderArgs
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	user, ok := tc.DB.Get(collUsers, in.UserID)
	if !ok {
		return "Error: user not found", nil
	}

	pool, err := tc.Pool(PoolOrders)
	if err != nil {
		return "", err
	}
	orderID, err := pool.Next(func(id string) bool {
		_, taken := tc.DB.Get(collOrders, id)
		return taken
	})
	if err != nil {
		return "Error: no order id available", nil
	}

	items := make([]any, 0, len(in.Items))
	totalPrice := 0.0
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return fmt.Sprintf("Error: invalid quantity for item %s", item.ItemID), nil
		}
		product, ok := tc.DB.Get(collProducts, item.ProductID)
		if !ok {
			return fmt.Sprintf("Error: product %s not found", item.ProductID), nil
		}
		variant, ok := database.Map(product, "variants")[item.ItemID].(map[string]any)
		if !ok {
			return fmt.Sprintf("Error: item %s not found in product %s", item.ItemID, item.ProductID), nil
		}
		if !database.Bool(variant, "available") {
			return fmt.Sprintf("Error: item %s is not available", item.ItemID), nil
		}
		price := database.Num(variant, "price")
		items = append(items, map[string]any{
			"name":       database.Str(product, "name"),
			"product_id": item.ProductID,
			"item_id":    item.ItemID,
			"quantity":   item.Quantity,
			"price":      price,
		})
		totalPrice += price * float64(item.Quantity)
	}

	methods := database.Map(user, "payment_methods")
	paid := 0.0
	for _, pm := range in.PaymentMethods {
		method, ok := methods[pm.PaymentID].(map[string]any)
		if !ok {
			return fmt.Sprintf("Error: payment method %s not found", pm.PaymentID), nil
		}
		source := database.Str(method, "source")
		if source == "gift_card" || source == "certificate" {
			if database.Num(method, "amount") < pm.Amount {
				return fmt.Sprintf("Error: not enough balance in payment method %s", pm.PaymentID), nil
			}
		}
		paid += pm.Amount
	}
	if paid != totalPrice {
		return fmt.Sprintf("Error: payment amount does not add up, total price is %v, but paid %v",
			totalPrice, paid), nil
	}

	for _, pm := range in.PaymentMethods {
		method, _ := methods[pm.PaymentID].(map[string]any)
		switch database.Str(method, "source") {
		case "gift_card":
			method["amount"] = database.Num(method, "amount") - pm.Amount
		case "certificate":
			delete(methods, pm.PaymentID)
		}
	}

	payments := make([]any, 0, len(in.PaymentMethods))
	for _, pm := range in.PaymentMethods {
		payments = append(payments, map[string]any{
			"payment_id": pm.PaymentID,
			"amount":     pm.Amount,
		})
	}
	order := database.Record{
		"order_id":        orderID,
		"user_id":         in.UserID,
		"address":         user["address"],
		"items":           items,
		"status":          "pending",
		"payment_history": payments,
		"created_at":      createdAt,
		"fulfillments":    []any{},
	}
	tc.DB.Put(collOrders, orderID, order)
	user["orders"] = append(database.Slice(user, "orders"), orderID)

	return registry.JSON(order)
}

func cancelOrder() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "cancel_order",
			Description: "Cancel the whole order and refund every payment made on it.",
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
		Writes:  []string{collOrders},
		Handler: handleCancelOrder,
	}
}

// handleCancelOrder appends refund entries negating every prior payment
// and flips the status to cancelled. Like the airline cancellation it
// is deliberately not idempotent: a second cancel appends a second set
// of refunds.
func handleCancelOrder(tc *registry.Context, args map[string]any) (string, error) {
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

	history := database.Slice(order, "payment_history")
	refunds := make([]any, 0, len(history))
	for _, entry := range history {
		payment, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		refunds = append(refunds, map[string]any{
			"payment_id": database.Str(payment, "payment_id"),
			"amount":     -database.Num(payment, "amount"),
		})
	}
	order["payment_history"] = append(history, refunds...)
	order["status"] = "cancelled"

	return registry.JSON(order)
}

func placeOrderDecl() *tool.Declaration {
	return &tool.Declaration{
		Name:        "place_order",
		Description: "Place a new order for a user.",
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"user_id": {
					Type:        "string",
					Description: "The ID of the user placing the order, such as 'sara_doe_496'.",
				},
				"items": {
					Type:        "array",
					Description: "An array of objects containing details about each ordered item.",
					Items: &tool.Schema{
						Type: "object",
						Properties: map[string]*tool.Schema{
							"product_id": {
								Type:        "string",
								Description: "The product id, such as '6086499569'.",
							},
							"item_id": {
								Type:        "string",
								Description: "The item id (product variant), such as '1434748144'.",
							},
							"quantity": {
								Type:        "integer",
								Description: "The number of units to order.",
							},
						},
						Required: []string{"product_id", "item_id", "quantity"},
					},
				},
				"payment_methods": {
					Type:        "array",
					Description: "An array of objects containing details about each payment method.",
					Items: &tool.Schema{
						Type: "object",
						Properties: map[string]*tool.Schema{
							"payment_id": {
								Type: "string",
								Description: "The payment id stored in user profile, such as " +
									"'credit_card_7815826' or 'gift_card_7815826'.",
							},
							"amount": {
								Type:        "number",
								Description: "The amount to be paid.",
							},
						},
						Required: []string{"payment_id", "amount"},
					},
				},
			},
			Required: []string{"user_id", "items", "payment_methods"},
		},
	}
}
