//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package airline implements the mock airline domain: seed data for
// users, flights and reservations, the airline tool catalog, and its
// task catalog.
package airline

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
const Name = "airline"

// Collection names.
const (
	collUsers        = "users"
	collFlights      = "flights"
	collReservations = "reservations"
)

// ID pool names. Reservation and certificate IDs come from small fixed
// candidate lists so that IDs created during an episode are
// reproducible for grading.
const (
	PoolReservations = "reservation"
	PoolCertificates = "certificate"
)

var (
	reservationIDs = []string{"HATHAT", "HATHAU", "HATHAV"}
	certificateIDs = []string{"certificate_3221322", "certificate_3221323", "certificate_3221324"}
)

// createdAt is the fixed timestamp stamped on records created during an
// episode. The simulation clock never advances.
const createdAt = "2024-05-15T15:00:00"

var (
	//go:embed data/users.json
	usersJSON []byte
	//go:embed data/flights.json
	flightsJSON []byte
	//go:embed data/reservations.json
	reservationsJSON []byte
)

// Seed decodes the embedded baseline collections.
func Seed() (map[string]database.Collection, error) {
	seed := make(map[string]database.Collection, 3)
	for name, raw := range map[string][]byte{
		collUsers:        usersJSON,
		collFlights:      flightsJSON,
		collReservations: reservationsJSON,
	} {
		var c database.Collection
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode airline %s seed: %w", name, err)
		}
		seed[name] = c
	}
	return seed, nil
}

// Tools builds the airline tool catalog.
func Tools() *registry.Registry {
	r := registry.New()
	r.MustRegister(
		common.Calculate(),
		common.Think(),
		common.TransferToHumanAgents(),
		bookReservation(),
		cancelReservation(),
		getUserDetails(),
		getReservationDetails(),
		searchDirectFlight(),
		searchOnestopFlight(),
		listAllAirports(),
		sendCertificate(),
	)
	return r
}

// Domain assembles the airline domain bundle.
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
			PoolReservations: reservationIDs,
			PoolCertificates: certificateIDs,
		},
		Tasks: Tasks(),
	}, nil
}
