//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package common provides the tools shared by every mock domain:
// a restricted arithmetic calculator, a no-op think tool and the
// transfer-to-human escalation that domains designate as terminal.
package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

// Tool names shared across domains.
const (
	CalculateName = "calculate"
	ThinkName     = "think"
	TransferName  = "transfer_to_human_agents"
)

// TransferConfirmation is the fixed observation of a successful
// escalation.
const TransferConfirmation = "Transfer successful"

// allowedExprChars is the full character whitelist for calculator
// expressions. Anything else is rejected before evaluation.
const allowedExprChars = "0123456789+-*/(). "

// Calculate returns the restricted arithmetic calculator tool.
func Calculate() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        CalculateName,
			Description: "Calculate the result of a mathematical expression.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"expression": {
						Type: "string",
						Description: "The mathematical expression to calculate, such as '2 + 2'. " +
							"The expression can contain numbers, operators (+, -, *, /), parentheses, and spaces.",
					},
				},
				Required: []string{"expression"},
			},
		},
		Handler: calculate,
	}
}

func calculate(_ *registry.Context, args map[string]any) (string, error) {
	var in struct {
		Expression string `mapstructure:"expression"`
	}
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	for _, r := range in.Expression {
		if !strings.ContainsRune(allowedExprChars, r) {
			return "Error: invalid characters in expression", nil
		}
	}
	expr, err := govaluate.NewEvaluableExpression(in.Expression)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), nil
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), nil
	}
	value, ok := result.(float64)
	if !ok {
		return fmt.Sprintf("Error: expression did not evaluate to a number: %v", result), nil
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "Error: expression did not evaluate to a finite number", nil
	}
	return FormatAmount(value), nil
}

// FormatAmount renders a number rounded to two decimal places, keeping
// at least one digit after the point: 4 -> "4.0", 2.5 -> "2.5",
// 3.14159 -> "3.14".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// Think returns the side-effect-free reasoning tool. It never mutates
// state and always observes as the empty string.
func Think() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name: ThinkName,
			Description: "Use the tool to think about something. It will not obtain new information or " +
				"change the database, but just append the thought to the log. Use it when complex reasoning is needed.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"thought": {
						Type:        "string",
						Description: "A thought to think about.",
					},
				},
				Required: []string{"thought"},
			},
		},
		Handler: func(_ *registry.Context, _ map[string]any) (string, error) {
			return "", nil
		},
	}
}

// TransferToHumanAgents returns the escalation tool. Domains list it in
// their terminal action set.
func TransferToHumanAgents() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name: TransferName,
			Description: "Transfer the user to a human agent, with a summary of the user's issue. " +
				"Only transfer if the user explicitly asks for a human agent, or if the user's issue cannot be " +
				"resolved by the agent with the available tools.",
			InputSchema: &tool.Schema{
				Type: "object",
				Properties: map[string]*tool.Schema{
					"summary": {
						Type:        "string",
						Description: "A summary of the user's issue.",
					},
				},
				Required: []string{"summary"},
			},
		},
		Handler: func(_ *registry.Context, _ map[string]any) (string, error) {
			return TransferConfirmation, nil
		},
	}
}
