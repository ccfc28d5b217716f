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

// Per-unit surcharges applied on top of the seat prices.
const (
	insuranceFeePerPassenger = 30
	nonfreeBaggageFee        = 50
)

type bookLegArgs struct {
	FlightNumber string `mapstructure:"flight_number"`
	Date         string `mapstructure:"date"`
}

type passengerArgs struct {
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	DOB       string `mapstructure:"dob"`
}

type paymentArgs struct {
	PaymentID string  `mapstructure:"payment_id"`
	Amount    float64 `mapstructure:"amount"`
}

type bookReservationArgs struct {
	UserID          string          `mapstructure:"user_id"`
	Origin          string          `mapstructure:"origin"`
	Destination     string          `mapstructure:"destination"`
	FlightType      string          `mapstructure:"flight_type"`
	Cabin           string          `mapstructure:"cabin"`
	Flights         []bookLegArgs   `mapstructure:"flights"`
	Passengers      []passengerArgs `mapstructure:"passengers"`
	PaymentMethods  []paymentArgs   `mapstructure:"payment_methods"`
	TotalBaggages   int             `mapstructure:"total_baggages"`
	NonfreeBaggages int             `mapstructure:"nonfree_baggages"`
	Insurance       string          `mapstructure:"insurance"`
}

func bookReservation() registry.Tool {
	return registry.Tool{
		Declaration: bookReservationDecl(),
		Writes:      []string{collReservations, collUsers},
		Handler:     handleBookReservation,
	}
}

// handleBookReservation validates the whole booking before touching the
// database: either every check passes and the full mutation is applied,
// or the database is left byte-for-byte unchanged and an error string
// is observed. There is no partial-apply state.
func handleBookReservation(tc *registry.Context, args map[string]any) (string, error) {
	var in bookReservationArgs
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	user, ok := tc.DB.Get(collUsers, in.UserID)
	if !ok {
		return "Error: user not found", nil
	}

	pool, err := tc.Pool(PoolReservations)
	if err != nil {
		return "", err
	}
	reservationID, err := pool.Next(func(id string) bool {
		_, taken := tc.DB.Get(collReservations, id)
		return taken
	})
	if err != nil {
		return "Error: no reservation id available", nil
	}

	// Resolve every leg and compute the total before any mutation.
	numPassengers := len(in.Passengers)
	legs := make([]any, 0, len(in.Flights))
	totalPrice := 0.0
	for _, leg := range in.Flights {
		flight, ok := tc.DB.Get(collFlights, leg.FlightNumber)
		if !ok {
			return fmt.Sprintf("Error: flight %s not found", leg.FlightNumber), nil
		}
		dates := database.Map(flight, "dates")
		day, ok := dates[leg.Date].(map[string]any)
		if !ok {
			return fmt.Sprintf("Error: flight %s not found on date %s", leg.FlightNumber, leg.Date), nil
		}
		if database.Str(day, "status") != "available" {
			return fmt.Sprintf("Error: flight %s not available on date %s", leg.FlightNumber, leg.Date), nil
		}
		seats := database.Map(day, "available_seats")
		if database.Num(seats, in.Cabin) < float64(numPassengers) {
			return fmt.Sprintf("Error: not enough seats on flight %s", leg.FlightNumber), nil
		}
		price := database.Num(database.Map(day, "prices"), in.Cabin)
		legs = append(legs, map[string]any{
			"flight_number": leg.FlightNumber,
			"date":          leg.Date,
			"price":         price,
			"origin":        database.Str(flight, "origin"),
			"destination":   database.Str(flight, "destination"),
		})
		totalPrice += price * float64(numPassengers)
	}
	if in.Insurance == "yes" {
		totalPrice += insuranceFeePerPassenger * float64(numPassengers)
	}
	totalPrice += nonfreeBaggageFee * float64(in.NonfreeBaggages)

	// Validate the declared payments: methods must exist, stored-value
	// sources must cover their share, and the declared amounts must sum
	// to the computed total exactly.
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

	// All checks passed: deduct stored-value payments and append the
	// reservation. Certificates are single-use and removed entirely.
	for _, pm := range in.PaymentMethods {
		method, _ := methods[pm.PaymentID].(map[string]any)
		switch database.Str(method, "source") {
		case "gift_card":
			method["amount"] = database.Num(method, "amount") - pm.Amount
		case "certificate":
			delete(methods, pm.PaymentID)
		}
	}

	passengers := make([]any, 0, numPassengers)
	for _, p := range in.Passengers {
		passengers = append(passengers, map[string]any{
			"first_name": p.FirstName,
			"last_name":  p.LastName,
			"dob":        p.DOB,
		})
	}
	payments := make([]any, 0, len(in.PaymentMethods))
	for _, pm := range in.PaymentMethods {
		payments = append(payments, map[string]any{
			"payment_id": pm.PaymentID,
			"amount":     pm.Amount,
		})
	}
	reservation := database.Record{
		"reservation_id":   reservationID,
		"user_id":          in.UserID,
		"origin":           in.Origin,
		"destination":      in.Destination,
		"flight_type":      in.FlightType,
		"cabin":            in.Cabin,
		"flights":          legs,
		"passengers":       passengers,
		"payment_history":  payments,
		"created_at":       createdAt,
		"total_baggages":   in.TotalBaggages,
		"nonfree_baggages": in.NonfreeBaggages,
		"insurance":        in.Insurance,
	}
	tc.DB.Put(collReservations, reservationID, reservation)
	user["reservations"] = append(database.Slice(user, "reservations"), reservationID)

	return registry.JSON(reservation)
}

func bookReservationDecl() *tool.Declaration {
	return &tool.Declaration{
		Name:        "book_reservation",
		Description: "Book a reservation.",
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"user_id": {
					Type:        "string",
					Description: "The ID of the user to book the reservation, such as 'sara_doe_496'.",
				},
				"origin": {
					Type:        "string",
					Description: "The IATA code for the origin city, such as 'SFO'.",
				},
				"destination": {
					Type:        "string",
					Description: "The IATA code for the destination city, such as 'JFK'.",
				},
				"flight_type": {
					Type: "string",
					Enum: []any{"one_way", "round_trip"},
				},
				"cabin": {
					Type: "string",
					Enum: []any{"basic_economy", "economy", "business"},
				},
				"flights": {
					Type:        "array",
					Description: "An array of objects containing details about each piece of flight.",
					Items: &tool.Schema{
						Type: "object",
						Properties: map[string]*tool.Schema{
							"flight_number": {
								Type:        "string",
								Description: "Flight number, such as 'HAT001'.",
							},
							"date": {
								Type:        "string",
								Description: "The date for the flight in the format 'YYYY-MM-DD', such as '2024-05-01'.",
							},
						},
						Required: []string{"flight_number", "date"},
					},
				},
				"passengers": {
					Type:        "array",
					Description: "An array of objects containing details about each passenger.",
					Items: &tool.Schema{
						Type: "object",
						Properties: map[string]*tool.Schema{
							"first_name": {
								Type:        "string",
								Description: "The first name of the passenger, such as 'Noah'.",
							},
							"last_name": {
								Type:        "string",
								Description: "The last name of the passenger, such as 'Brown'.",
							},
							"dob": {
								Type:        "string",
								Description: "The date of birth of the passenger in the format 'YYYY-MM-DD', such as '1990-01-01'.",
							},
						},
						Required: []string{"first_name", "last_name", "dob"},
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
								Description: "The payment id stored in user profile, such as 'credit_card_7815826', " +
									"'gift_card_7815826', 'certificate_7815826'.",
							},
							"amount": {
								Type:        "number",
								Description: "The amount to be paid.",
							},
						},
						Required: []string{"payment_id", "amount"},
					},
				},
				"total_baggages": {
					Type:        "integer",
					Description: "The total number of baggage items included in the reservation.",
				},
				"nonfree_baggages": {
					Type:        "integer",
					Description: "The number of non-free baggage items included in the reservation.",
				},
				"insurance": {
					Type: "string",
					Enum: []any{"yes", "no"},
				},
			},
			Required: []string{
				"user_id", "origin", "destination", "flight_type", "cabin",
				"flights", "passengers", "payment_methods", "total_baggages",
				"nonfree_baggages", "insurance",
			},
		},
	}
}
