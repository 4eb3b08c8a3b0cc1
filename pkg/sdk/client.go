package sdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gearstack/catsearch/internal/db"
	dbBadger "github.com/gearstack/catsearch/internal/db/badger"
	dbRedis "github.com/gearstack/catsearch/internal/db/redis"
	"github.com/gearstack/catsearch/internal/domain"
	"github.com/gearstack/catsearch/internal/domain/search/match"
	"github.com/gearstack/catsearch/internal/domain/search/outcome"
	"github.com/gearstack/catsearch/internal/domain/search/query"
	catalogrepo "github.com/gearstack/catsearch/internal/repository/catalog"
	healthuc "github.com/gearstack/catsearch/internal/usecase/health"
	searchuc "github.com/gearstack/catsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// ErrQueryRequired is re-exported from the domain layer; check with errors.Is.
var ErrQueryRequired = domain.ErrQueryRequired

// resolver abstracts the search usecase for tests.
type resolver interface {
	Resolve(ctx context.Context, params query.Params) (outcome.Outcome, error)
}

// Client is the catsearch SDK entry point.
type Client struct {
	store  db.Store
	search resolver
	health healthChecker
	logger *zap.Logger
}

// New creates a Client and connects to the store. The provided context is
// used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("catsearch: database not ready: %w", err)
	}

	repo := catalogrepo.New(store)
	if cfg.keyPrefix != "" {
		repo = repo.WithKeyPrefix(cfg.keyPrefix)
	}

	svc := searchuc.New(repo)
	if cfg.bestMatch {
		svc = svc.WithStrategy(match.BestMatch{})
	}

	return &Client{
		store:  store,
		search: svc,
		health: healthuc.New(store),
		logger: cfg.logger,
	}, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("catsearch: create redis store: %w", err)
		}
		return s, nil
	case "badger":
		s, err := dbBadger.NewStore(dbBadger.Config{
			Path:     cfg.path,
			InMemory: cfg.inMemory,
			Logger:   cfg.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("catsearch: create badger store: %w", err)
		}
		return s, nil
	case "":
		return nil, errors.New("catsearch: store required (use WithRedis or WithBadger)")
	default:
		return nil, fmt.Errorf("catsearch: unknown driver %q", cfg.driver)
	}
}

// SmartSearch resolves a free-text query to the most specific unambiguous
// catalog level.
func (c *Client) SmartSearch(ctx context.Context, searchQuery string, opts ...SearchOption) (Result, error) {
	var sc searchConfig
	for _, o := range opts {
		o.applySearch(&sc)
	}

	params, err := query.New(searchQuery, sc.typeTag, sc.sortBy, sc.minPrice, sc.maxPrice)
	if err != nil {
		return Result{}, err
	}

	out, err := c.search.Resolve(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("catsearch: resolve: %w", err)
	}
	return resultFromOutcome(out), nil
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Close releases the underlying store.
func (c *Client) Close() {
	c.store.Close()
}
