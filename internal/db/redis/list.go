package redis

import (
	"context"

	"github.com/gearstack/catsearch/internal/db"
)

// ListPush appends values to the tail of an ordered ID list (RPUSH).
func (s *Store) ListPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	cmd := s.b().Rpush().Key(key).Element(values...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpLPush, Err: err}
	}
	return nil
}

// ListRange returns the full list in insertion order. A missing key yields
// an empty slice, not an error.
func (s *Store) ListRange(ctx context.Context, key string) ([]string, error) {
	cmd := s.b().Lrange().Key(key).Start(0).Stop(-1).Build()
	vals, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	return vals, nil
}
