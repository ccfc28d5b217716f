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
	"sort"

	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-taubench-go/database"
	"trpc.group/trpc-go/trpc-taubench-go/registry"
)

type searchArgs struct {
	Origin      string `mapstructure:"origin"`
	Destination string `mapstructure:"destination"`
	Date        string `mapstructure:"date"`
}

func searchDirectFlight() registry.Tool {
	return registry.Tool{
		Declaration: searchDecl("search_direct_flight",
			"Search direct flights between two cities on a specific date."),
		Handler: handleSearchDirectFlight,
	}
}

func handleSearchDirectFlight(tc *registry.Context, args map[string]any) (string, error) {
	var in searchArgs
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	results := []any{}
	for _, flight := range flightsByNumber(tc.DB) {
		if database.Str(flight, "origin") != in.Origin ||
			database.Str(flight, "destination") != in.Destination {
			continue
		}
		if day, ok := availableOn(flight, in.Date); ok {
			results = append(results, mergeFlightDay(flight, day))
		}
	}
	return registry.JSON(results)
}

func searchOnestopFlight() registry.Tool {
	return registry.Tool{
		Declaration: searchDecl("search_onestop_flight",
			"Search one-stop flights between two cities on a specific date."),
		Handler: handleSearchOnestopFlight,
	}
}

// handleSearchOnestopFlight pairs a first leg out of the origin with a
// second leg into the destination through the same connecting city,
// both available on the requested date.
func handleSearchOnestopFlight(tc *registry.Context, args map[string]any) (string, error) {
	var in searchArgs
	if err := registry.DecodeArgs(args, &in); err != nil {
		return "", err
	}
	flights := flightsByNumber(tc.DB)
	results := []any{}
	for _, first := range flights {
		if database.Str(first, "origin") != in.Origin {
			continue
		}
		firstDay, ok := availableOn(first, in.Date)
		if !ok {
			continue
		}
		for _, second := range flights {
			if database.Str(second, "origin") != database.Str(first, "destination") ||
				database.Str(second, "destination") != in.Destination {
				continue
			}
			secondDay, ok := availableOn(second, in.Date)
			if !ok {
				continue
			}
			results = append(results, []any{
				mergeFlightDay(first, firstDay),
				mergeFlightDay(second, secondDay),
			})
		}
	}
	return registry.JSON(results)
}

// flightsByNumber returns the flight records ordered by flight number
// so search observations are deterministic.
func flightsByNumber(db *database.Database) []database.Record {
	coll := db.Collection(collFlights)
	numbers := make([]string, 0, len(coll))
	for number := range coll {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	flights := make([]database.Record, 0, len(numbers))
	for _, number := range numbers {
		flights = append(flights, coll[number])
	}
	return flights
}

func availableOn(flight database.Record, date string) (map[string]any, bool) {
	day, ok := database.Map(flight, "dates")[date].(map[string]any)
	if !ok || database.Str(day, "status") != "available" {
		return nil, false
	}
	return day, true
}

// mergeFlightDay flattens the per-date fields into the flight record,
// dropping the full dates map.
func mergeFlightDay(flight database.Record, day map[string]any) map[string]any {
	merged := make(map[string]any, len(flight)+len(day))
	for k, v := range flight {
		if k == "dates" {
			continue
		}
		merged[k] = v
	}
	for k, v := range day {
		merged[k] = v
	}
	return merged
}

func searchDecl(name, description string) *tool.Declaration {
	return &tool.Declaration{
		Name:        name,
		Description: description,
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"origin": {
					Type:        "string",
					Description: "The origin city airport in three letters, such as 'JFK'.",
				},
				"destination": {
					Type:        "string",
					Description: "The destination city airport in three letters, such as 'LAX'.",
				},
				"date": {
					Type:        "string",
					Description: "The date of the flight in the format 'YYYY-MM-DD', such as '2024-01-01'.",
				},
			},
			Required: []string{"origin", "destination", "date"},
		},
	}
}

// airportCities is the static airport directory.
var airportCities = map[string]string{
	"SFO": "San Francisco", "JFK": "New York", "LAX": "Los Angeles",
	"ORD": "Chicago", "DFW": "Dallas", "DEN": "Denver", "SEA": "Seattle",
	"ATL": "Atlanta", "MIA": "Miami", "BOS": "Boston", "PHX": "Phoenix",
	"IAH": "Houston", "LAS": "Las Vegas", "MCO": "Orlando", "EWR": "Newark",
	"CLT": "Charlotte", "MSP": "Minneapolis", "DTW": "Detroit",
	"PHL": "Philadelphia", "LGA": "LaGuardia",
}

func listAllAirports() registry.Tool {
	return registry.Tool{
		Declaration: &tool.Declaration{
			Name:        "list_all_airports",
			Description: "List all airports and their cities.",
			InputSchema: &tool.Schema{
				Type:       "object",
				Properties: map[string]*tool.Schema{},
			},
		},
		Handler: func(_ *registry.Context, _ map[string]any) (string, error) {
			return registry.JSON(airportCities)
		},
	}
}
