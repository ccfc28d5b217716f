//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package airline

import (
	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

func cancelReservation() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "cancel_reservation",
			Description: "Cancel the whole reservation.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"reservation_id": {
						Type:        "string",
						Description: "The reservation ID, such as 'ZFA04Y'.",
					},
				},
				Required: []string{"reservation_id"},
			},
		},
		Writes:  []string{collReservations},
		Handler: handleCancelReservation,
	}
}

// handleCancelReservation appends refund entries that negate every
// prior payment and flips the status to cancelled. Refunds are appended
// to history, never substituted for it, so cancelling twice refunds
// twice. That non-idempotence is part of the recorded ground truth and
// must not be fixed here.
func handleCancelReservation(tc *registry.Context, args map[string]any) (string, error) {
	var in struct {
		ReservationID string `mapstructure:"reservation_id"`
	}
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	reservation, ok := tc.DB.Get(collReservations, in.ReservationID)
	if !ok {
		return "Error: reservation not found", nil
	}

	history := database.Slice(reservation, "payment_history")
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
	reservation["payment_history"] = append(history, refunds...)
	reservation["status"] = "cancelled"

	return registry.JSON(reservation)
}
