package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avstrong/tripplan/internal/logger"
)

// StateKey is the namespace key the manager persists its snapshot under. Kept
// identical to the storage bucket the web client used so existing state
// survives a backend swap.
const StateKey = "travel-itinerary-storage"

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

// StateStore is the persistence capability the manager writes through. It
// stores opaque bytes; the manager owns the serialization policy.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type snapshot struct {
	Itineraries []Itinerary `json:"itineraries"`
	Current     *Itinerary  `json:"currentItinerary"`
}

// Manager is the single source of truth for trip state: the set of
// itineraries plus the nullable "current" pointer the UI is editing.
//
// Invariant held after every mutation: current is nil, or an itinerary with
// current's id exists in the set and the two copies are structurally
// identical. Mutations apply to the entry and mirror into current so the two
// views never diverge.
type Manager struct {
	mu          sync.Mutex
	l           *logger.Logger
	store       StateStore
	idGenerator idGenerator

	itineraries []Itinerary
	current     *Itinerary
}

// New restores state from the store once. Missing or corrupt data seeds empty
// state rather than failing.
func New(ctx context.Context, l *logger.Logger, store StateStore, idGenerator idGenerator) *Manager {
	//nolint:exhaustruct
	m := &Manager{
		l:           l,
		store:       store,
		idGenerator: idGenerator,
	}

	m.restore(ctx)

	return m
}

func (m *Manager) restore(ctx context.Context) {
	data, err := m.store.Load(ctx, StateKey)
	if errors.Is(err, ErrStateNotFound) {
		return
	}

	if err != nil {
		m.l.LogErrorf("Could not load itinerary state, starting empty: %v", err.Error())

		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.l.LogErrorf("Could not decode itinerary state, starting empty: %v", err.Error())

		return
	}

	m.itineraries = snap.Itineraries
	m.current = snap.Current
}

// persist writes the full snapshot through the state store. A save failure is
// reported to the caller but never rolls back in-memory state: lost
// durability is preferred over lost progress.
func (m *Manager) persist(ctx context.Context) error {
	data, err := json.Marshal(snapshot{Itineraries: m.itineraries, Current: m.current})
	if err != nil {
		return fmt.Errorf("encode itinerary state: %w", err)
	}

	if err := m.store.Save(ctx, StateKey, data); err != nil {
		return fmt.Errorf("save itinerary state: %v: %w", err.Error(), ErrPersist)
	}

	return nil
}

func (m *Manager) indexOf(id string) int {
	for i := range m.itineraries {
		if m.itineraries[i].ID == id {
			return i
		}
	}

	return -1
}

// Current returns a deep copy of the current itinerary, or nil.
func (m *Manager) Current() *Itinerary {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current.Clone()
}

// Itineraries returns deep copies of all itineraries in insertion order.
func (m *Manager) Itineraries() []Itinerary {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Itinerary, 0, len(m.itineraries))
	for i := range m.itineraries {
		out = append(out, *m.itineraries[i].Clone())
	}

	return out
}

type CreateItineraryInput struct {
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	TripType    TripType `json:"tripType"`
}

// CreateItinerary appends a fresh itinerary with empty collections and makes
// it current. Date ordering is the caller's responsibility.
func (m *Manager) CreateItinerary(ctx context.Context, input CreateItineraryInput) (*Itinerary, error) {
	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	it := Itinerary{
		ID:          id,
		Name:        input.Name,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TripType:    input.TripType,
		Flights:     []Flight{},
		Hotels:      []Hotel{},
		Activities:  []Activity{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	m.itineraries = append(m.itineraries, it)
	m.current = it.Clone()

	return it.Clone(), m.persist(ctx)
}

type UpdateItineraryInput struct {
	Name        *string   `json:"name"`
	Destination *string   `json:"destination"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	TripType    *TripType `json:"tripType"`
}

func (in *UpdateItineraryInput) apply(it *Itinerary) {
	if in.Name != nil {
		it.Name = *in.Name
	}

	if in.Destination != nil {
		it.Destination = *in.Destination
	}

	if in.StartDate != nil {
		it.StartDate = *in.StartDate
	}

	if in.EndDate != nil {
		it.EndDate = *in.EndDate
	}

	if in.TripType != nil {
		it.TripType = *in.TripType
	}
}

// UpdateItinerary merges the set fields into the matching itinerary and into
// current when it points at the same id. Unknown id is a silent no-op.
func (m *Manager) UpdateItinerary(ctx context.Context, id string, input UpdateItineraryInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return nil
	}

	input.apply(&m.itineraries[idx])
	m.itineraries[idx].UpdatedAt = time.Now().UTC()

	if m.current != nil && m.current.ID == id {
		m.current = m.itineraries[idx].Clone()
	}

	return m.persist(ctx)
}

// DeleteItinerary removes the itinerary and clears current when it pointed at
// the deleted id. Unknown id is a silent no-op.
func (m *Manager) DeleteItinerary(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return nil
	}

	m.itineraries = append(m.itineraries[:idx], m.itineraries[idx+1:]...)

	if m.current != nil && m.current.ID == id {
		m.current = nil
	}

	return m.persist(ctx)
}

// SetCurrentItinerary points current at the itinerary with the given id. An
// empty id clears current; a lookup miss also leaves current nil, because "no
// such itinerary" means nothing is current.
func (m *Manager) SetCurrentItinerary(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		m.current = nil

		return m.persist(ctx)
	}

	if idx := m.indexOf(id); idx >= 0 {
		m.current = m.itineraries[idx].Clone()
	} else {
		m.current = nil
	}

	return m.persist(ctx)
}

// mutateCurrent runs fn against the entry current points at, refreshes its
// updatedAt and mirrors the result into current. Nil current is a deliberate
// silent no-op: the UI only offers item mutations once an itinerary is
// selected. fn reports whether it changed anything.
func (m *Manager) mutateCurrent(ctx context.Context, fn func(it *Itinerary) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}

	idx := m.indexOf(m.current.ID)
	if idx < 0 {
		return nil
	}

	if !fn(&m.itineraries[idx]) {
		return nil
	}

	m.itineraries[idx].UpdatedAt = time.Now().UTC()
	m.current = m.itineraries[idx].Clone()

	return m.persist(ctx)
}

func (m *Manager) AddFlight(ctx context.Context, flight Flight) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		it.Flights = append(it.Flights, flight)

		return true
	})
}

func (m *Manager) RemoveFlight(ctx context.Context, flightID string) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		kept, changed := removeByID(it.Flights, func(f Flight) string { return f.ID }, flightID)
		it.Flights = kept

		return changed
	})
}

func (m *Manager) AddHotel(ctx context.Context, hotel Hotel) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		it.Hotels = append(it.Hotels, hotel)

		return true
	})
}

func (m *Manager) RemoveHotel(ctx context.Context, hotelID string) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		kept, changed := removeByID(it.Hotels, func(h Hotel) string { return h.ID }, hotelID)
		it.Hotels = kept

		return changed
	})
}

func (m *Manager) AddActivity(ctx context.Context, activity Activity) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		it.Activities = append(it.Activities, activity)

		return true
	})
}

func (m *Manager) RemoveActivity(ctx context.Context, activityID string) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		kept, changed := removeByID(it.Activities, func(a Activity) string { return a.ID }, activityID)
		it.Activities = kept

		return changed
	})
}

// UpdateActivityDay moves an activity to another day bucket. The value is
// stored verbatim; clamping to >=1 is the caller's responsibility.
func (m *Manager) UpdateActivityDay(ctx context.Context, activityID string, day int) error {
	return m.mutateCurrent(ctx, func(it *Itinerary) bool {
		for i := range it.Activities {
			if it.Activities[i].ID == activityID {
				it.Activities[i].Day = day

				return true
			}
		}

		return false
	})
}

func removeByID[T any](items []T, id func(T) string, target string) ([]T, bool) {
	kept := items[:0]
	changed := false

	for _, item := range items {
		if id(item) == target {
			changed = true

			continue
		}

		kept = append(kept, item)
	}

	return kept, changed
}
