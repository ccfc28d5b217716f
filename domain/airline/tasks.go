//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package airline

import "trpc.group/trpc-go/trpc-taubench-go/task"

// Tasks returns the airline task catalog. Ground-truth traces replay
// deterministically against the embedded seed; tasks whose grading
// depends on expected outputs end with a respond action carrying those
// figures.
func Tasks() task.Catalog {
	return task.Catalog{
		{
			ID:     "airline_book_one_way",
			UserID: "mia_li_3668",
			Instruction: "Your user id is mia_li_3668. You want to book a one-way flight from SFO to JFK " +
				"on 2024-05-20, flight HAT001, economy cabin, for yourself only. You have one checked bag " +
				"(free with your gold membership) and you do not want insurance. Pay with your gift card.",
			Actions: []task.Action{
				{
					Name: "book_reservation",
					Args: map[string]any{
						"user_id":     "mia_li_3668",
						"origin":      "SFO",
						"destination": "JFK",
						"flight_type": "one_way",
						"cabin":       "economy",
						"flights": []any{
							map[string]any{"flight_number": "HAT001", "date": "2024-05-20"},
						},
						"passengers": []any{
							map[string]any{"first_name": "Mia", "last_name": "Li", "dob": "1990-04-05"},
						},
						"payment_methods": []any{
							map[string]any{"payment_id": "gift_card_7815826", "amount": 117},
						},
						"total_baggages":   1,
						"nonfree_baggages": 0,
						"insurance":        "no",
					},
				},
			},
		},
		{
			ID:     "airline_cancel_reservation",
			UserID: "olivia_gonzalez_2305",
			Instruction: "Your user id is olivia_gonzalez_2305. You want to cancel your reservation Z7GOZK " +
				"because your trip was called off. You want a full refund to the original payment method.",
			Actions: []task.Action{
				{
					Name: "cancel_reservation",
					Args: map[string]any{"reservation_id": "Z7GOZK"},
				},
			},
		},
		{
			ID:     "airline_send_certificate",
			UserID: "mia_li_3668",
			Instruction: "Your user id is mia_li_3668. You were promised a travel certificate of 150 as " +
				"compensation for a delayed flight last month, but it never arrived. Ask the agent to send it.",
			Actions: []task.Action{
				{
					Name: "send_certificate",
					Args: map[string]any{"user_id": "mia_li_3668", "amount": 150},
				},
			},
		},
		{
			ID:     "airline_quote_business_fare",
			UserID: "mia_li_3668",
			Instruction: "Your user id is mia_li_3668. You want to know the business cabin price for flight " +
				"HAT001 from SFO to JFK on 2024-05-20, and the total cost for two passengers. You are not " +
				"booking anything today.",
			Actions: []task.Action{
				task.Respond("The business fare on HAT001 for 2024-05-20 is 319 per passenger, " +
					"so two passengers come to 638 in total."),
			},
			Outputs: []string{"319", "638"},
			Mode:    task.CompareOutcome,
		},
	}
}
