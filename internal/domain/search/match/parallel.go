package match

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/gearstack/catsearch/internal/domain/search/token"
)

// ParallelFirstMatch scores candidates concurrently on a shared worker pool
// and then selects the lowest candidate index with a hit. Every candidate
// evaluates only its own first passing token/word pair, so the selected hit
// is byte-for-byte the one FirstMatch would return; pools large enough to
// amortize goroutine hand-off are the only reason to prefer this strategy.
type ParallelFirstMatch struct {
	pool *ants.Pool
}

// NewParallelFirstMatch wraps a worker pool. The pool is shared and not
// released by the matcher.
func NewParallelFirstMatch(pool *ants.Pool) *ParallelFirstMatch {
	return &ParallelFirstMatch{pool: pool}
}

// Match implements Strategy.
func (p *ParallelFirstMatch) Match(
	names []string, tokens []string, used token.Set, threshold float64,
) (Hit, bool) {
	hits := make([]*Hit, len(names))

	var wg sync.WaitGroup
	for c, name := range names {
		c, name := c, name // per-iteration copies for the closure (pre-Go 1.22 loop semantics)
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if hit, ok := firstHitInName(name, tokens, used, threshold); ok {
				hit.Candidate = c
				hits[c] = &hit
			}
		}
		// Fall back to inline execution if the pool rejects the task
		// (released or overloaded beyond its blocking limit).
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	for _, hit := range hits {
		if hit != nil {
			return *hit, true
		}
	}
	return Hit{}, false
}
