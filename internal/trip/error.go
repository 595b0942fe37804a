package trip

import "errors"

var (
	ErrNextID        = errors.New("get next id from generator")
	ErrStateNotFound = errors.New("itinerary state not found")
	ErrPersist       = errors.New("persist itinerary state")
)
