package normalize

import (
	"fmt"

	"github.com/avstrong/tripplan/internal/trip"
)

// ActivitySearchResponse mirrors the tripadvisor attraction search payload.
type ActivitySearchResponse struct {
	Data []RawActivity `json:"data"`
}

type RawActivity struct {
	ID               *FlexString       `json:"id"`
	Name             *string           `json:"name"`
	ShortDescription *string           `json:"shortDescription"`
	Description      *string           `json:"description"`
	Rating           *RawRating        `json:"rating"`
	Pictures         []string          `json:"pictures"`
	Price            *RawActivityPrice `json:"price"`
	Duration         *string           `json:"duration"`
	Location         *RawLocation      `json:"location"`
}

type RawRating struct {
	Average *float64 `json:"average"`
	Count   *int     `json:"count"`
}

type RawActivityPrice struct {
	Amount       *float64 `json:"amount"`
	CurrencyCode *string  `json:"currencyCode"`
}

type RawLocation struct {
	Address *string `json:"address"`
	City    *string `json:"city"`
}

// Activities maps a provider activity payload to canonical activities. The
// provider carries no category taxonomy compatible with ours, so every result
// lands in "sightseeing" until a real mapping exists; this is a known data
// gap, not a product decision. The day bucket defaults to 1 and the scheduled
// time stays empty for the caller to fill in.
func (n *Normalizer) Activities(resp ActivitySearchResponse) []trip.Activity {
	activities := make([]trip.Activity, 0, len(resp.Data))

	for idx, raw := range resp.Data {
		id := fmt.Sprintf("activity-%d", idx)
		if raw.ID != nil && *raw.ID != "" {
			id = string(*raw.ID)
		}

		description := ""
		switch {
		case raw.Description != nil && *raw.Description != "":
			description = *raw.Description
		case raw.ShortDescription != nil:
			description = *raw.ShortDescription
		}

		var rating float64
		reviewCount := 0

		if raw.Rating != nil {
			rating = floatOr(raw.Rating.Average, 0)
			reviewCount = intOr(raw.Rating.Count, 0)
		}

		var price float64
		currency := defaultCurrency

		if raw.Price != nil {
			price = floatOr(raw.Price.Amount, 0)
			currency = stringOr(raw.Price.CurrencyCode, defaultCurrency)
		}

		images := raw.Pictures
		if images == nil {
			images = []string{}
		}

		activities = append(activities, trip.Activity{
			ID:             id,
			Name:           stringOr(raw.Name, "Unknown Activity"),
			Description:    description,
			Location:       activityLocation(raw.Location),
			Rating:         rating,
			ReviewCount:    reviewCount,
			Duration:       stringOr(raw.Duration, "1 hour"),
			Price:          price,
			Currency:       currency,
			DateTime:       "",
			Day:            1,
			WhatIsIncluded: []string{},
			Images:         images,
			Category:       trip.ActivityCategorySightseeing,
		})
	}

	return activities
}

func activityLocation(loc *RawLocation) string {
	if loc == nil {
		return ""
	}

	if loc.Address != nil && *loc.Address != "" {
		return *loc.Address
	}

	return stringOr(loc.City, "")
}
