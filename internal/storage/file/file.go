package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/avstrong/tripplan/internal/trip"
)

// DB stores each key as a file under a root directory. Saves go through a
// temp file and rename so a crash never leaves a half-written snapshot.
type DB struct {
	root string
}

func New(root string) (*DB, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", root, err)
	}

	return &DB{root: root}, nil
}

func (db *DB) path(key string) string {
	return filepath.Join(db.root, url.PathEscape(key)+".json")
}

func (db *DB) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(db.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("key %q: %w", key, trip.ErrStateNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}

	return data, nil
}

func (db *DB) Save(_ context.Context, key string, data []byte) error {
	path := db.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace key %q: %w", key, err)
	}

	return nil
}
