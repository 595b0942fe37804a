package normalize

import (
	"fmt"

	"github.com/avstrong/tripplan/internal/trip"
)

// FlightSearchResponse mirrors the sky-scanner roundtrip search payload.
type FlightSearchResponse struct {
	Status *bool       `json:"status"`
	Data   *FlightData `json:"data"`
}

type FlightData struct {
	Itineraries []RawFlight `json:"itineraries"`
}

type RawFlight struct {
	ID    *string   `json:"id"`
	Legs  []RawLeg  `json:"legs"`
	Price *RawPrice `json:"price"`
}

type RawPrice struct {
	Raw       *float64 `json:"raw"`
	Formatted *string  `json:"formatted"`
}

type RawLeg struct {
	Departure         *string      `json:"departure"`
	Arrival           *string      `json:"arrival"`
	Origin            *RawStation  `json:"origin"`
	Destination       *RawStation  `json:"destination"`
	DurationInMinutes *int         `json:"durationInMinutes"`
	StopCount         *int         `json:"stopCount"`
	Carriers          *RawCarriers `json:"carriers"`
}

type RawStation struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	City *string `json:"city"`
}

type RawCarriers struct {
	Marketing []RawCarrier `json:"marketing"`
}

type RawCarrier struct {
	ID      *FlexString `json:"id"`
	Name    *string     `json:"name"`
	LogoURL *string     `json:"logoUrl"`
}

// Flights maps a provider flight payload to canonical flights. The provider
// exposes no flight number, so one is synthesized from the carrier code and a
// random 3-digit suffix; callers must not treat it as a stable provider
// identifier.
func (n *Normalizer) Flights(resp FlightSearchResponse) []trip.Flight {
	var raws []RawFlight
	if resp.Data != nil {
		raws = resp.Data.Itineraries
	}

	flights := make([]trip.Flight, 0, len(raws))

	for idx, raw := range raws {
		var leg RawLeg
		if len(raw.Legs) > 0 {
			leg = raw.Legs[0]
		}

		var carrier RawCarrier
		if leg.Carriers != nil && len(leg.Carriers.Marketing) > 0 {
			carrier = leg.Carriers.Marketing[0]
		}

		code := "XX"
		if carrier.ID != nil && *carrier.ID != "" {
			code = string(*carrier.ID)
		}

		airline := "Unknown Airline"
		if carrier.Name != nil && *carrier.Name != "" {
			airline = *carrier.Name
		}

		minutes := intOr(leg.DurationInMinutes, 0)

		var price float64
		if raw.Price != nil {
			price = floatOr(raw.Price.Raw, 0)
		}

		flights = append(flights, trip.Flight{
			ID:               stringOr(raw.ID, fmt.Sprintf("flight-%d", idx)),
			Airline:          airline,
			AirlineCode:      code,
			FlightNumber:     fmt.Sprintf("%s-%d", code, n.rand.Intn(900)+100), //nolint:gomnd
			FlightClass:      trip.FlightClassEconomy,
			DepartureTime:    stringOr(leg.Departure, ""),
			ArrivalTime:      stringOr(leg.Arrival, ""),
			DepartureAirport: stationID(leg.Origin),
			ArrivalAirport:   stationID(leg.Destination),
			DepartureCity:    stationCity(leg.Origin),
			ArrivalCity:      stationCity(leg.Destination),
			Duration:         fmt.Sprintf("%dh %dm", minutes/60, minutes%60), //nolint:gomnd
			Stops:            intOr(leg.StopCount, 0),
			Price:            price,
			Currency:         defaultCurrency,
			Facilities:       defaultFlightFacilities(),
			BaggageAllowance: trip.BaggageAllowance{
				CheckedBaggage: "20kg",
				CabinBaggage:   "8kg",
			},
		})
	}

	return flights
}

func stationID(s *RawStation) string {
	if s == nil {
		return ""
	}

	return stringOr(s.ID, "")
}

func stationCity(s *RawStation) string {
	if s == nil {
		return ""
	}

	if s.City != nil && *s.City != "" {
		return *s.City
	}

	return stringOr(s.Name, "")
}

// The provider carries no facility data for legs; a canned set keeps the
// cards renderable.
func defaultFlightFacilities() []trip.FlightFacility {
	return []trip.FlightFacility{
		trip.FlightFacilityEntertainment,
		trip.FlightFacilityMeal,
		trip.FlightFacilityUSBPort,
	}
}
