// Package badger implements db.Store on an embedded BadgerDB, for
// single-node and development deployments where no Redis is available.
// Hashes and ID lists are stored as JSON-encoded values; list appends are
// read-modify-write inside one transaction.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/gearstack/catsearch/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds open parameters for a Badger store.
type Config struct {
	// Path is the database directory. Empty with InMemory unset is invalid.
	Path string
	// InMemory opens a non-persistent database (tests, throwaway envs).
	InMemory bool
	Logger   *zap.Logger
}

// Store implements db.Store on BadgerDB.
type Store struct {
	bdb *badger.DB
}

// zapAdapter adapts zap to the badger.Logger interface.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

var _ badger.Logger = (*zapAdapter)(nil)

func (a *zapAdapter) Errorf(msg string, args ...any)   { a.logger.Errorf(msg, args...) }
func (a *zapAdapter) Warningf(msg string, args ...any) { a.logger.Warnf(msg, args...) }
func (a *zapAdapter) Infof(msg string, args ...any)    { a.logger.Debugf(msg, args...) }
func (a *zapAdapter) Debugf(msg string, args ...any)   { a.logger.Debugf(msg, args...) }

// NewStore opens a Badger database.
func NewStore(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("path is required")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.Logger = &zapAdapter{logger: logger.Sugar()}

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{bdb: bdb}, nil
}

// Ping reports whether the database is open.
func (s *Store) Ping(_ context.Context) error {
	if s.bdb.IsClosed() {
		return &db.Error{Op: db.OpPing, Err: fmt.Errorf("database closed")}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() {
	_ = s.bdb.Close()
}

// WaitForReady is immediate for an embedded store; it only propagates an
// already-expired context.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Ping(ctx)
}

// HSet sets hash fields, merging into any existing record.
func (s *Store) HSet(ctx context.Context, key string, fields map[string]string) error {
	err := s.bdb.Update(func(txn *badger.Txn) error {
		current, err := readMap(txn, key)
		if err != nil {
			return err
		}
		for k, v := range fields {
			current[k] = v
		}
		data, err := json.Marshal(current)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	return nil
}

// HGetAll returns all fields of a hash; a missing key yields an empty map.
func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	var out map[string]string
	err := s.bdb.View(func(txn *badger.Txn) error {
		m, err := readMap(txn, key)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpHGet, Err: err}
	}
	return out, nil
}

// HGetAllMulti fetches multiple hashes in one read transaction, preserving
// key order.
func (s *Store) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	out := make([]map[string]string, len(keys))
	err := s.bdb.View(func(txn *badger.Txn) error {
		for i, key := range keys {
			m, err := readMap(txn, key)
			if err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
			out[i] = m
		}
		return nil
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpHGet, Err: err}
	}
	return out, nil
}

// Del deletes a key.
func (s *Store) Del(ctx context.Context, key string) error {
	err := s.bdb.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// Exists checks if a key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	var found bool
	err := s.bdb.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	return found, nil
}

// ListPush appends values to an ordered ID list.
func (s *Store) ListPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	err := s.bdb.Update(func(txn *badger.Txn) error {
		current, err := readList(txn, key)
		if err != nil {
			return err
		}
		current = append(current, values...)
		data, err := json.Marshal(current)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return &db.Error{Op: db.OpLPush, Err: err}
	}
	return nil
}

// ListRange returns the full list in insertion order; a missing key yields
// an empty slice.
func (s *Store) ListRange(ctx context.Context, key string) ([]string, error) {
	var out []string
	err := s.bdb.View(func(txn *badger.Txn) error {
		vals, err := readList(txn, key)
		if err != nil {
			return err
		}
		out = vals
		return nil
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	return out, nil
}

func readMap(txn *badger.Txn, key string) (map[string]string, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &m)
	}); err != nil {
		return nil, err
	}
	return m, nil
}

func readList(txn *badger.Txn, key string) ([]string, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var vals []string
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &vals)
	}); err != nil {
		return nil, err
	}
	return vals, nil
}
