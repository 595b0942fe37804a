package normalize

import (
	"encoding/json"
	"testing"

	"github.com/avstrong/tripplan/internal/trip"
)

func decodeActivityResponse(t *testing.T, raw string) ActivitySearchResponse {
	t.Helper()

	var resp ActivitySearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("decode activity response: %v", err)
	}

	return resp
}

func TestActivitiesFullRecord(t *testing.T) {
	resp := decodeActivityResponse(t, `{"data": [{
		"id": 4711,
		"name": "Canopy walk",
		"description": "Guided walk across the canopy bridge.",
		"shortDescription": "Canopy bridge walk",
		"rating": {"average": 4.6, "count": 873},
		"pictures": ["https://cdn.example/a.jpg"],
		"price": {"amount": 5000, "currencyCode": "USD"},
		"duration": "2 hours",
		"location": {"address": "Lekki Conservation Centre", "city": "Lagos"}
	}]}`)

	activities := newTestNormalizer().Activities(resp)

	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}

	got := activities[0]

	if got.ID != "4711" || got.Name != "Canopy walk" {
		t.Fatalf("unexpected identity: %+v", got)
	}

	// full description wins over the short one
	if got.Description != "Guided walk across the canopy bridge." {
		t.Fatalf("unexpected description: %q", got.Description)
	}

	if got.Location != "Lekki Conservation Centre" {
		t.Fatalf("expected address preferred over city, got %q", got.Location)
	}

	if got.Rating != 4.6 || got.ReviewCount != 873 {
		t.Fatalf("unexpected rating: %+v", got)
	}

	if got.Price != 5000 || got.Currency != "USD" {
		t.Fatalf("unexpected price: %+v", got)
	}

	if got.Day != 1 || got.DateTime != "" {
		t.Fatalf("expected day 1 and empty schedule, got %+v", got)
	}
}

func TestActivitiesDescriptionFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"short only", `{"data": [{"shortDescription": "short"}]}`, "short"},
		{"neither", `{"data": [{}]}`, ""},
		{"empty full falls back", `{"data": [{"description": "", "shortDescription": "short"}]}`, "short"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := newTestNormalizer().Activities(decodeActivityResponse(t, tc.raw))[0]
			if got.Description != tc.want {
				t.Fatalf("expected description %q, got %q", tc.want, got.Description)
			}
		})
	}
}

func TestActivitiesDefaults(t *testing.T) {
	resp := decodeActivityResponse(t, `{"data": [{}, {}]}`)

	activities := newTestNormalizer().Activities(resp)

	for i, got := range activities {
		if want := "activity-" + string(rune('0'+i)); got.ID != want {
			t.Fatalf("expected positional id %q, got %q", want, got.ID)
		}

		if got.Name != "Unknown Activity" || got.Duration != "1 hour" || got.Currency != "NGN" {
			t.Fatalf("unexpected defaults: %+v", got)
		}

		// provider taxonomy gap: everything is bucketed as sightseeing
		if got.Category != trip.ActivityCategorySightseeing {
			t.Fatalf("expected sightseeing category, got %q", got.Category)
		}

		if got.WhatIsIncluded == nil || got.Images == nil {
			t.Fatalf("expected empty, non-nil lists: %+v", got)
		}
	}
}

func TestActivitiesLocationFallsBackToCity(t *testing.T) {
	resp := decodeActivityResponse(t, `{"data": [{"location": {"city": "Lagos"}}]}`)

	if got := newTestNormalizer().Activities(resp)[0]; got.Location != "Lagos" {
		t.Fatalf("expected city fallback, got %q", got.Location)
	}
}
