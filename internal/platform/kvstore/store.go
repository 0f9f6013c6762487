// Package kvstore wraps redis as a durable key/value store holding one
// JSON-encoded collection per key. It is the substrate for the standalone
// storage backend used when no PostgreSQL database is configured: every
// mutation reads the whole collection, applies the change, and writes the
// whole collection back.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store is a collection store over a redis client. A per-key mutex
// serializes read-modify-write spans within the process; two tabs or
// processes racing on the same key remain last-write-wins.
type Store struct {
	rdb *redis.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store over the given redis client.
func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, locks: make(map[string]*sync.Mutex)}
}

// NewClient connects to redis and verifies the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Read loads the collection stored at key. A missing key yields an empty
// collection, not an error.
func Read[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("kvstore: decode %s: %w", key, err)
	}
	return items, nil
}

// Write replaces the collection stored at key.
func Write[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("kvstore: encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", key, err)
	}
	return nil
}

// Mutate runs a read-modify-write cycle on the collection at key under the
// key's mutex, so concurrent mutations in this process cannot interleave
// and lose an update. fn receives the current collection and returns the
// replacement; returning an error aborts without writing.
func Mutate[T any](ctx context.Context, s *Store, key string, fn func([]T) ([]T, error)) error {
	l := s.lockFor(key)
	l.Lock()
	defer l.Unlock()

	items, err := Read[T](ctx, s, key)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return Write(ctx, s, key, next)
}
