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

	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

func getUserDetails() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "get_user_details",
			Description: "Get the details of an user, including their reservations.",
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

func getReservationDetails() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "get_reservation_details",
			Description: "Get the details of a reservation.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"reservation_id": {
						Type:        "string",
						Description: "The reservation id, such as '8JX2WO'.",
					},
				},
				Required: []string{"reservation_id"},
			},
		},
		Handler: func(tc *registry.Context, args map[string]any) (string, error) {
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
			return registry.JSON(reservation)
		},
	}
}
