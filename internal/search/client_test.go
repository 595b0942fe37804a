package search

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avstrong/tripplan/internal/logger"
	"github.com/avstrong/tripplan/internal/normalize"
)

func newTestClient(t *testing.T, handler http.Handler, conf Conf) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf.FlightSearchURL = srv.URL + "/flights"
	conf.HotelSearchURL = srv.URL + "/hotels"
	conf.ActivitySearchURL = srv.URL + "/activities"

	normalizer := normalize.New(rand.New(rand.NewSource(1)))

	return NewClient(logger.NewNop(), conf, normalizer), srv
}

func validFlightParams() FlightParams {
	return FlightParams{
		Origin:        "LOS",
		Destination:   "ABV",
		DepartureDate: "2026-04-20",
		Adults:        1,
	}
}

func TestSearchFlightsSendsProviderHeadersAndQuery(t *testing.T) {
	var gotReq *http.Request

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"data": {"itineraries": [{"id": "it-1"}]}}`))
	})

	client, srv := newTestClient(t, handler, Conf{APIKey: "test-key"})

	params := validFlightParams()
	params.ReturnDate = "2026-04-27"
	params.CabinClass = "business"

	flights, err := client.SearchFlights(context.Background(), params)
	if err != nil {
		t.Fatalf("search flights: %v", err)
	}

	if len(flights) != 1 || flights[0].ID != "it-1" {
		t.Fatalf("unexpected flights: %+v", flights)
	}

	if got := gotReq.Header.Get("x-rapidapi-key"); got != "test-key" {
		t.Fatalf("expected api key header, got %q", got)
	}

	wantHost := srv.Listener.Addr().String()
	if got := gotReq.Header.Get("x-rapidapi-host"); got != wantHost {
		t.Fatalf("expected host header %q, got %q", wantHost, got)
	}

	q := gotReq.URL.Query()
	if q.Get("fromEntityId") != "LOS" || q.Get("toEntityId") != "ABV" {
		t.Fatalf("unexpected query: %v", q)
	}

	if q.Get("departDate") != "2026-04-20" || q.Get("returnDate") != "2026-04-27" {
		t.Fatalf("unexpected dates: %v", q)
	}

	if q.Get("adults") != "1" || q.Get("cabinClass") != "business" {
		t.Fatalf("unexpected passenger query: %v", q)
	}
}

func TestSearchFlightsInvalidParamsSkipProvider(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("provider must not be called for invalid params")
	})

	client, _ := newTestClient(t, handler, Conf{})

	_, err := client.SearchFlights(context.Background(), FlightParams{})
	if IsInputError(err) == nil {
		t.Fatalf("expected an input error, got %v", err)
	}
}

func TestSearchFlightsStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantCode   string
		wantStatus int
	}{
		{"rate limited", http.StatusTooManyRequests, CodeRateLimited, http.StatusTooManyRequests},
		{"unauthorized", http.StatusUnauthorized, CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden, CodeUnauthorized, http.StatusForbidden},
		{"provider fault", http.StatusBadGateway, CodeAPIError, http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			client, _ := newTestClient(t, handler, Conf{})

			_, err := client.SearchFlights(context.Background(), validFlightParams())

			searchErr := IsError(err)
			if searchErr == nil {
				t.Fatalf("expected a search error, got %v", err)
			}

			if searchErr.Code != tc.wantCode || searchErr.Status != tc.wantStatus {
				t.Fatalf("expected %s/%d, got %+v", tc.wantCode, tc.wantStatus, searchErr)
			}
		})
	}
}

func TestSearchFlightsGarbageBodyDegradesToEmpty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	client, _ := newTestClient(t, handler, Conf{})

	flights, err := client.SearchFlights(context.Background(), validFlightParams())
	if err != nil {
		t.Fatalf("expected best-effort success, got %v", err)
	}

	if len(flights) != 0 {
		t.Fatalf("expected no flights from a garbage body, got %+v", flights)
	}
}

func TestSearchFlightsTimeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	client, _ := newTestClient(t, handler, Conf{Timeout: 20 * time.Millisecond})

	_, err := client.SearchFlights(context.Background(), validFlightParams())

	searchErr := IsError(err)
	if searchErr == nil {
		t.Fatalf("expected a search error, got %v", err)
	}

	if searchErr.Code != CodeTimeout || searchErr.Status != http.StatusRequestTimeout {
		t.Fatalf("expected timeout mapping, got %+v", searchErr)
	}
}

func TestSearchHotelsPassesStayDatesToNormalizer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("dest_id") != "-2092174" || q.Get("search_type") != "CITY" {
			t.Errorf("unexpected destination query: %v", q)
		}

		if q.Get("arrival_date") != "2026-04-20" || q.Get("departure_date") != "2026-04-25" {
			t.Errorf("unexpected stay query: %v", q)
		}

		_, _ = w.Write([]byte(`{"result": [{"hotel_id": 1, "min_total_price": 100000}]}`))
	})

	client, _ := newTestClient(t, handler, Conf{})

	hotels, err := client.SearchHotels(context.Background(), HotelParams{
		Destination:  "-2092174",
		CheckInDate:  "2026-04-20",
		CheckOutDate: "2026-04-25",
		Adults:       2,
		Rooms:        1,
	})
	if err != nil {
		t.Fatalf("search hotels: %v", err)
	}

	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}

	if hotels[0].Nights != 5 || hotels[0].PricePerNight != 20000 {
		t.Fatalf("expected stay-derived pricing, got %+v", hotels[0])
	}
}

func TestSearchActivities(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("geoId"); got != "293962" {
			t.Errorf("unexpected geoId %q", got)
		}

		_, _ = w.Write([]byte(`{"data": [{"id": "act-1", "name": "Canopy walk"}]}`))
	})

	client, _ := newTestClient(t, handler, Conf{})

	activities, err := client.SearchActivities(context.Background(), ActivityParams{Destination: "293962"})
	if err != nil {
		t.Fatalf("search activities: %v", err)
	}

	if len(activities) != 1 || activities[0].Name != "Canopy walk" {
		t.Fatalf("unexpected activities: %+v", activities)
	}
}
