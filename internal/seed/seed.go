package seed

import (
	"context"
	"fmt"

	"github.com/avstrong/tripplan/internal/logger"
	"github.com/avstrong/tripplan/internal/trip"
)

// Up creates a demo itinerary when the store is empty so a fresh install has
// something to render. Existing state is never touched.
func Up(ctx context.Context, l *logger.Logger, trips *trip.Manager) error {
	if len(trips.Itineraries()) > 0 {
		return nil
	}

	it, err := trips.CreateItinerary(ctx, trip.CreateItineraryInput{
		Name:        "Lagos getaway",
		Destination: "Lagos",
		StartDate:   "2026-04-20",
		EndDate:     "2026-04-25",
		TripType:    trip.TripTypeCouple,
	})
	if err != nil {
		return fmt.Errorf("create demo itinerary: %w", err)
	}

	nights := 5

	if err := trips.AddHotel(ctx, trip.Hotel{
		ID:            "seed-hotel-1",
		Name:          "Eko Hotel & Suites",
		Address:       "1415 Adetokunbo Ademola Street",
		City:          "Lagos",
		Rating:        4.5,
		ReviewCount:   1204,
		RoomType:      "Deluxe Room",
		PricePerNight: 90000,
		TotalPrice:    450000,
		Currency:      "NGN",
		CheckInDate:   it.StartDate,
		CheckOutDate:  it.EndDate,
		Nights:        nights,
		TaxesIncluded: true,
		Facilities:    []trip.HotelFacility{trip.HotelFacilityPool, trip.HotelFacilityBar, trip.HotelFacilityWifi},
		Images:        []string{},
		Coordinates:   trip.Coordinates{Latitude: 6.4281, Longitude: 3.4219},
	}); err != nil {
		return fmt.Errorf("add demo hotel: %w", err)
	}

	if err := trips.AddActivity(ctx, trip.Activity{
		ID:             "seed-activity-1",
		Name:           "Lekki Conservation Centre canopy walk",
		Description:    "Guided walk across the longest canopy bridge in Africa.",
		Location:       "Lekki",
		Rating:         4.6,
		ReviewCount:    873,
		Duration:       "2 hours",
		Price:          5000,
		Currency:       "NGN",
		DateTime:       "",
		Day:            1,
		WhatIsIncluded: []string{"Entry ticket", "Guide"},
		Images:         []string{},
		Category:       trip.ActivityCategorySightseeing,
	}); err != nil {
		return fmt.Errorf("add demo activity: %w", err)
	}

	l.LogInfo("Seeded demo itinerary %v", it.ID)

	return nil
}
