// Package db defines the storage facade the catalog repository and the
// seeder run on. Drivers live in subpackages; consumers depend on the
// narrow sub-interfaces they actually use.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashStore
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based record operations. Each catalog entity is
// one hash keyed by its ID.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ListStore provides ordered ID-list operations. Lists hold entity IDs in
// creation order; candidate pools must iterate in a stable order because
// first-match resolution is order-dependent.
type ListStore interface {
	ListPush(ctx context.Context, key string, values ...string) error
	ListRange(ctx context.Context, key string) ([]string, error)
}
