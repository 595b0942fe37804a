package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avstrong/tripplan/internal/rank"
	"github.com/avstrong/tripplan/internal/search"
	"github.com/avstrong/tripplan/internal/trip"
)

func writeJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

type pageEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

func page[T any](items []T) pageEnvelope[T] {
	return pageEnvelope[T]{
		Data: items,
		Pagination: pagination{
			Page:       1,
			PageSize:   len(items),
			TotalPages: 1,
			TotalItems: len(items),
		},
	}
}

// checkPersist implements the durability policy: a failed snapshot write is
// logged, the request still succeeds, because in-memory state stays
// authoritative for the session.
func (s *Server) checkPersist(op string, err error) {
	if errors.Is(err, trip.ErrPersist) {
		s.l.LogErrorf("Could not persist state after %s, continuing in memory: %v", op, err.Error())
	}
}

func (s *Server) listItinerariesHandler(w http.ResponseWriter, _ *http.Request) {
	out := map[string]any{
		"itineraries":      s.trips.Itineraries(),
		"currentItinerary": s.trips.Current(),
	}

	if err := writeJSON(w, http.StatusOK, out); err != nil {
		s.l.LogErrorf("Could not encode itineraries: %v", err.Error())
	}
}

func (s *Server) createItineraryHandler(w http.ResponseWriter, r *http.Request) {
	var input trip.CreateItineraryInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	out, err := s.trips.CreateItinerary(r.Context(), input)
	if err != nil && !errors.Is(err, trip.ErrPersist) {
		s.l.LogErrorf("Could not create itinerary: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.checkPersist("create itinerary", err)

	if err := writeJSON(w, http.StatusCreated, out); err != nil {
		s.l.LogErrorf("Could not encode created itinerary: %v", err.Error())
	}
}

func (s *Server) updateItineraryHandler(w http.ResponseWriter, r *http.Request) {
	var input trip.UpdateItineraryInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.checkPersist("update itinerary", s.trips.UpdateItinerary(r.Context(), r.PathValue("id"), input))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteItineraryHandler(w http.ResponseWriter, r *http.Request) {
	s.checkPersist("delete itinerary", s.trips.DeleteItinerary(r.Context(), r.PathValue("id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setCurrentItineraryHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.checkPersist("set current itinerary", s.trips.SetCurrentItinerary(r.Context(), input.ID))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addFlightHandler(w http.ResponseWriter, r *http.Request) {
	var flight trip.Flight

	if err := json.NewDecoder(r.Body).Decode(&flight); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.checkPersist("add flight", s.trips.AddFlight(r.Context(), flight))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeFlightHandler(w http.ResponseWriter, r *http.Request) {
	s.checkPersist("remove flight", s.trips.RemoveFlight(r.Context(), r.PathValue("id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addHotelHandler(w http.ResponseWriter, r *http.Request) {
	var hotel trip.Hotel

	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.checkPersist("add hotel", s.trips.AddHotel(r.Context(), hotel))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeHotelHandler(w http.ResponseWriter, r *http.Request) {
	s.checkPersist("remove hotel", s.trips.RemoveHotel(r.Context(), r.PathValue("id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addActivityHandler(w http.ResponseWriter, r *http.Request) {
	var activity trip.Activity

	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.checkPersist("add activity", s.trips.AddActivity(r.Context(), activity))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeActivityHandler(w http.ResponseWriter, r *http.Request) {
	s.checkPersist("remove activity", s.trips.RemoveActivity(r.Context(), r.PathValue("id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateActivityDayHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Day int `json:"day"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.checkPersist("update activity day", s.trips.UpdateActivityDay(r.Context(), r.PathValue("id"), input.Day))
	w.WriteHeader(http.StatusNoContent)
}

// writeSearchError maps the search error taxonomy onto HTTP responses.
func (s *Server) writeSearchError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	if inputErr := search.IsInputError(err); inputErr != nil {
		out := map[string]any{
			"code":    search.CodeValidation,
			"message": "Invalid search parameters",
			"status":  http.StatusBadRequest,
			"errors":  inputErr.Fields(),
		}
		if encErr := writeJSON(w, http.StatusBadRequest, out); encErr != nil {
			s.l.LogErrorf("Could not encode validation err: %v", encErr.Error())
		}

		return true
	}

	if searchErr := search.IsError(err); searchErr != nil {
		status := searchErr.Status
		if status < http.StatusBadRequest {
			// NETWORK_ERROR carries no upstream status
			status = http.StatusBadGateway
		}

		if encErr := writeJSON(w, status, searchErr); encErr != nil {
			s.l.LogErrorf("Could not encode search err: %v", encErr.Error())
		}

		return true
	}

	s.l.LogErrorf("Search failed: %v", err.Error())

	out := &search.Error{
		Code:    search.CodeInternal,
		Message: "An unexpected error occurred",
		Status:  http.StatusInternalServerError,
	}
	if encErr := writeJSON(w, http.StatusInternalServerError, out); encErr != nil {
		s.l.LogErrorf("Could not encode internal err: %v", encErr.Error())
	}

	return true
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		// out of every valid range, so validation reports the field
		return -1
	}

	return v
}

func (s *Server) searchFlightsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.FlightParams{
		Origin:        q.Get("origin"),
		Destination:   q.Get("destination"),
		DepartureDate: q.Get("departureDate"),
		ReturnDate:    q.Get("returnDate"),
		Adults:        intQuery(r, "adults", 1),
		Children:      intQuery(r, "children", 0),
		Infants:       intQuery(r, "infants", 0),
		CabinClass:    q.Get("cabinClass"),
	}

	flights, err := s.search.SearchFlights(r.Context(), params)
	if s.writeSearchError(w, err) {
		return
	}

	if strategy, ok := rank.Select(q.Get("sort"), func(f trip.Flight) float64 { return f.Price }, nil); ok {
		strategy.Apply(flights)
	}

	if err := writeJSON(w, http.StatusOK, page(flights)); err != nil {
		s.l.LogErrorf("Could not encode flight results: %v", err.Error())
	}
}

func (s *Server) searchHotelsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.HotelParams{
		Destination:  q.Get("destination"),
		CheckInDate:  q.Get("checkInDate"),
		CheckOutDate: q.Get("checkOutDate"),
		Adults:       intQuery(r, "adults", 1),
		Children:     intQuery(r, "children", 0),
		Rooms:        intQuery(r, "rooms", 1),
	}

	hotels, err := s.search.SearchHotels(r.Context(), params)
	if s.writeSearchError(w, err) {
		return
	}

	if strategy, ok := rank.Select(
		q.Get("sort"),
		func(h trip.Hotel) float64 { return h.TotalPrice },
		func(h trip.Hotel) float64 { return h.Rating },
	); ok {
		strategy.Apply(hotels)
	}

	if err := writeJSON(w, http.StatusOK, page(hotels)); err != nil {
		s.l.LogErrorf("Could not encode hotel results: %v", err.Error())
	}
}

func (s *Server) searchActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.ActivityParams{
		Destination: q.Get("destination"),
		Date:        q.Get("date"),
		Category:    q.Get("category"),
	}

	activities, err := s.search.SearchActivities(r.Context(), params)
	if s.writeSearchError(w, err) {
		return
	}

	if strategy, ok := rank.Select(
		q.Get("sort"),
		func(a trip.Activity) float64 { return a.Price },
		func(a trip.Activity) float64 { return a.Rating },
	); ok {
		strategy.Apply(activities)
	}

	if err := writeJSON(w, http.StatusOK, page(activities)); err != nil {
		s.l.LogErrorf("Could not encode activity results: %v", err.Error())
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern string, h http.HandlerFunc) {
		r.Handle(pattern, s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware()))
	}

	handle("GET /api/itineraries/v1", s.listItinerariesHandler)
	handle("POST /api/itineraries/v1", s.createItineraryHandler)
	handle("PATCH /api/itineraries/v1/{id}", s.updateItineraryHandler)
	handle("DELETE /api/itineraries/v1/{id}", s.deleteItineraryHandler)
	handle("PUT /api/itineraries/current/v1", s.setCurrentItineraryHandler)

	handle("POST /api/itineraries/current/flights/v1", s.addFlightHandler)
	handle("DELETE /api/itineraries/current/flights/v1/{id}", s.removeFlightHandler)
	handle("POST /api/itineraries/current/hotels/v1", s.addHotelHandler)
	handle("DELETE /api/itineraries/current/hotels/v1/{id}", s.removeHotelHandler)
	handle("POST /api/itineraries/current/activities/v1", s.addActivityHandler)
	handle("DELETE /api/itineraries/current/activities/v1/{id}", s.removeActivityHandler)
	handle("PATCH /api/itineraries/current/activities/v1/{id}/day", s.updateActivityDayHandler)

	handle("GET /api/flights/search/v1", s.searchFlightsHandler)
	handle("GET /api/hotels/search/v1", s.searchHotelsHandler)
	handle("GET /api/activities/search/v1", s.searchActivitiesHandler)

	handle("GET "+s.conf.LivenessEndpoint, s.livenessHandler)
}
