package sdk

import "go.uber.org/zap"

type clientConfig struct {
	driver     string
	addrs      []string
	password   string
	path       string
	inMemory   bool
	keyPrefix  string
	bestMatch  bool
	logger     *zap.Logger
}

// Option configures the client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(cfg *clientConfig) { f(cfg) }

// WithRedis connects to a Redis store.
func WithRedis(addr, password string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.driver = "redis"
		cfg.addrs = []string{addr}
		cfg.password = password
	})
}

// WithBadger opens an embedded Badger store at path.
func WithBadger(path string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.driver = "badger"
		cfg.path = path
	})
}

// WithInMemoryBadger opens a non-persistent Badger store (tests).
func WithInMemoryBadger() Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.driver = "badger"
		cfg.inMemory = true
	})
}

// WithKeyPrefix overrides the catalog key namespace.
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.keyPrefix = prefix
	})
}

// WithBestMatch switches stage matching from the default greedy first-match
// policy to the global best-match policy.
func WithBestMatch() Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.bestMatch = true
	})
}

// WithLogger attaches a logger (default is a nop logger).
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.logger = logger
	})
}

// SearchOption narrows one SmartSearch call.
type SearchOption interface {
	applySearch(*searchConfig)
}

type searchConfig struct {
	typeTag  string
	sortBy   string
	minPrice *float64
	maxPrice *float64
}

type searchOptionFunc func(*searchConfig)

func (f searchOptionFunc) applySearch(cfg *searchConfig) { f(cfg) }

// WithType filters brands by type tag equality.
func WithType(typeTag string) SearchOption {
	return searchOptionFunc(func(cfg *searchConfig) {
		cfg.typeTag = typeTag
	})
}

// WithSort selects the product sort mode.
func WithSort(mode SortMode) SearchOption {
	return searchOptionFunc(func(cfg *searchConfig) {
		cfg.sortBy = string(mode)
	})
}

// WithPriceRange bounds product selling price inclusively.
func WithPriceRange(minPrice, maxPrice float64) SearchOption {
	return searchOptionFunc(func(cfg *searchConfig) {
		cfg.minPrice = &minPrice
		cfg.maxPrice = &maxPrice
	})
}

// WithMinPrice bounds product selling price from below.
func WithMinPrice(minPrice float64) SearchOption {
	return searchOptionFunc(func(cfg *searchConfig) {
		cfg.minPrice = &minPrice
	})
}

// WithMaxPrice bounds product selling price from above.
func WithMaxPrice(maxPrice float64) SearchOption {
	return searchOptionFunc(func(cfg *searchConfig) {
		cfg.maxPrice = &maxPrice
	})
}
