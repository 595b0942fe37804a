package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/avstrong/tripplan/internal/trip"
)

// DB keeps snapshots in redis so state survives process restarts when no
// local disk is available.
type DB struct {
	client *goredis.Client
}

func New(ctx context.Context, addr string) (*DB, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &DB{client: rdb}, nil
}

func (db *DB) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := db.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("key %q: %w", key, trip.ErrStateNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("get key %q: %w", key, err)
	}

	return data, nil
}

func (db *DB) Save(ctx context.Context, key string, data []byte) error {
	if err := db.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}

	return nil
}

func (db *DB) Close() error {
	return db.client.Close()
}
