package search

import "testing"

func TestFlightParamsValidate(t *testing.T) {
	valid := FlightParams{
		Origin:        "LOS",
		Destination:   "ABV",
		DepartureDate: "2026-04-20",
		Adults:        1,
	}

	if err := valid.validate(); err != nil {
		t.Fatalf("expected valid params, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(p *FlightParams)
		badKeys []string
	}{
		{"origin too short", func(p *FlightParams) { p.Origin = "L" }, []string{"origin"}},
		{"destination too long", func(p *FlightParams) { p.Destination = "TOOLONG" }, []string{"destination"}},
		{"malformed departure date", func(p *FlightParams) { p.DepartureDate = "20-04-2026" }, []string{"departureDate"}},
		{"malformed return date", func(p *FlightParams) { p.ReturnDate = "soon" }, []string{"returnDate"}},
		{"zero adults", func(p *FlightParams) { p.Adults = 0 }, []string{"adults"}},
		{"too many adults", func(p *FlightParams) { p.Adults = 10 }, []string{"adults"}},
		{"negative children", func(p *FlightParams) { p.Children = -1 }, []string{"children"}},
		{"too many infants", func(p *FlightParams) { p.Infants = 10 }, []string{"infants"}},
		{"bogus cabin class", func(p *FlightParams) { p.CabinClass = "steerage" }, []string{"cabinClass"}},
		{
			"multiple failures reported together",
			func(p *FlightParams) { p.Origin = ""; p.Adults = 0 },
			[]string{"origin", "adults"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := valid
			tc.mutate(&params)

			inputErr := IsInputError(params.validate())
			if inputErr == nil {
				t.Fatalf("expected an input error")
			}

			for _, key := range tc.badKeys {
				if len(inputErr.Fields()[key]) == 0 {
					t.Fatalf("expected a failure for %q, got %v", key, inputErr.Fields())
				}
			}

			if inputErr.fieldsCount() != len(tc.badKeys) {
				t.Fatalf("expected %d failing fields, got %v", len(tc.badKeys), inputErr.Fields())
			}
		})
	}
}

func TestFlightParamsOptionalFieldsMayBeEmpty(t *testing.T) {
	params := FlightParams{
		Origin:        "LOS",
		Destination:   "ABV",
		DepartureDate: "2026-04-20",
		Adults:        2,
	}

	if err := params.validate(); err != nil {
		t.Fatalf("expected empty return date and cabin class to pass, got %v", err)
	}
}

func TestHotelParamsValidate(t *testing.T) {
	valid := HotelParams{
		Destination:  "-2092174",
		CheckInDate:  "2026-04-20",
		CheckOutDate: "2026-04-25",
		Adults:       2,
		Rooms:        1,
	}

	if err := valid.validate(); err != nil {
		t.Fatalf("expected valid params, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *HotelParams)
		badKey string
	}{
		{"missing destination", func(p *HotelParams) { p.Destination = "" }, "destination"},
		{"malformed check-in", func(p *HotelParams) { p.CheckInDate = "tomorrow" }, "checkInDate"},
		{"malformed check-out", func(p *HotelParams) { p.CheckOutDate = "" }, "checkOutDate"},
		{"zero adults", func(p *HotelParams) { p.Adults = 0 }, "adults"},
		{"too many children", func(p *HotelParams) { p.Children = 11 }, "children"},
		{"zero rooms", func(p *HotelParams) { p.Rooms = 0 }, "rooms"},
		{"too many rooms", func(p *HotelParams) { p.Rooms = 9 }, "rooms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := valid
			tc.mutate(&params)

			inputErr := IsInputError(params.validate())
			if inputErr == nil {
				t.Fatalf("expected an input error")
			}

			if len(inputErr.Fields()[tc.badKey]) == 0 {
				t.Fatalf("expected a failure for %q, got %v", tc.badKey, inputErr.Fields())
			}
		})
	}
}

func TestActivityParamsValidate(t *testing.T) {
	valid := ActivityParams{Destination: "293962", Date: "2026-04-21"}
	if err := valid.validate(); err != nil {
		t.Fatalf("expected valid params, got %v", err)
	}

	noDate := ActivityParams{Destination: "293962"}
	if err := noDate.validate(); err != nil {
		t.Fatalf("expected date to be optional, got %v", err)
	}

	if inputErr := IsInputError((&ActivityParams{}).validate()); inputErr == nil {
		t.Fatalf("expected missing destination to fail")
	} else if len(inputErr.Fields()["destination"]) == 0 {
		t.Fatalf("expected a destination failure, got %v", inputErr.Fields())
	}

	if inputErr := IsInputError((&ActivityParams{Destination: "x", Date: "never"}).validate()); inputErr == nil {
		t.Fatalf("expected malformed date to fail")
	}
}
