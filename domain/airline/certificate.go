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
	"fmt"

	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

func sendCertificate() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "send_certificate",
			Description: "Send a certificate to a user. Be careful!",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"user_id": {
						Type:        "string",
						Description: "The ID of the user to send the certificate to, such as 'sara_doe_496'.",
					},
					"amount": {
						Type:        "number",
						Description: "Certificate amount to send.",
					},
				},
				Required: []string{"user_id", "amount"},
			},
		},
		Writes:  []string{collUsers},
		Handler: handleSendCertificate,
	}
}

func handleSendCertificate(tc *registry.Context, args map[string]any) (string, error) {
	var in struct {
		UserID string  `mapstructure:"user_id"`
		Amount float64 `mapstructure:"amount"`
	}
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	user, ok := tc.DB.Get(collUsers, in.UserID)
	if !ok {
		return "Error: user not found", nil
	}

	pool, err := tc.Pool(PoolCertificates)
	if err != nil {
		return "", err
	}
	methods := database.Map(user, "payment_methods")
	if methods == nil {
		methods = map[string]any{}
		user["payment_methods"] = methods
	}
	certID, err := pool.Next(func(id string) bool {
		_, taken := methods[id]
		return taken
	})
	if err != nil {
		return "Error: No available certificate slots", nil
	}

	methods[certID] = map[string]any{
		"source": "certificate",
		"amount": in.Amount,
		"id":     certID,
	}
	return fmt.Sprintf("Certificate %s added to user %s with amount %v.", certID, in.UserID, in.Amount), nil
}
