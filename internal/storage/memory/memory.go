package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/tripplan/internal/trip"
)

// DB is a map-backed byte store. State lives only for the process lifetime;
// useful for tests and for running without any storage dependency.
type DB struct {
	mu      sync.Mutex
	buckets map[string][]byte
}

func New() *DB {
	//nolint:exhaustruct
	return &DB{buckets: make(map[string][]byte)}
}

func (db *DB) Load(_ context.Context, key string) ([]byte, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	data, ok := db.buckets[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, trip.ErrStateNotFound)
	}

	cp := make([]byte, len(data))
	copy(cp, data)

	return cp, nil
}

func (db *DB) Save(_ context.Context, key string, data []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	db.buckets[key] = cp

	return nil
}
