//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package retail implements the mock retail domain: seed data for
// users, products and orders, the retail tool catalog, and its task
// catalog.
package retail

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/domain"
	"trpc.group/trpc-go/trpc-taubench-go/domain/common"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

// Name is the domain identifier.
const Name = "retail"

// Collection names.
const (
	collUsers    = "users"
	collProducts = "products"
	collOrders   = "orders"
)

// PoolOrders allocates the IDs of orders placed during an episode.
const PoolOrders = "order"

var orderIDs = []string{"#W9001000", "#W9001001", "#W9001002"}

// createdAt is the fixed timestamp stamped on orders placed during an
// episode.
const createdAt = "2024-05-15T15:00:00"

var (
	//go:embed data/users.json
	usersJSON []byte
	//go:embed data/products.json
	productsJSON []byte
	//go:embed data/orders.json
	ordersJSON []byte
)

// Seed decodes the embedded baseline collections.
func Seed() (map[string]database.Collection, error) {
	seed := make(map[string]database.Collection, 3)
	for name, raw := range map[string][]byte{
		collUsers:    usersJSON,
		collProducts: productsJSON,
		collOrders:   ordersJSON,
	} {
		var c database.Collection
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode retail %s seed: %w", name, err)
		}
		seed[name] = c
	}
	return seed, nil
}

// Tools builds the retail tool catalog.
func Tools() *registry.Registry {
	r := registry.New()
	r.MustRegister(
		common.Calculate(),
		common.Think(),
		common.TransferToHumanAgents(),
		findUserIDByEmail(),
		getUserDetails(),
		getOrderDetails(),
		getProductDetails(),
		placeOrder(),
		cancelOrder(),
	)
	return r
}

// Domain assembles the retail domain bundle.
func Domain() (*domain.Domain, error) {
	seed, err := Seed()
	if err != nil {
		return nil, err
	}
	return &domain.Domain{
		Name:            Name,
		Seed:            seed,
		Tools:           Tools(),
		TerminalActions: []string{common.TransferName},
		Pools: map[string][]string{
			PoolOrders: orderIDs,
		},
		Tasks: Tasks(),
	}, nil
}
