package match

import (
	"strings"

	"github.com/gearstack/catsearch/internal/domain/search/token"
)

// Hit identifies a candidate selected by a stage matcher.
type Hit struct {
	// Candidate is the index of the selected entity in the pool.
	Candidate int
	// Token is the position of the consumed query token.
	Token int
	// Score is the similarity that crossed the threshold.
	Score float64
}

// Strategy locates a candidate whose name shares a sufficiently similar
// word with an unconsumed query token. names holds the candidate pool in
// iteration order; tokens is the full query token sequence with used
// marking already-consumed positions.
type Strategy interface {
	Match(names []string, tokens []string, used token.Set, threshold float64) (Hit, bool)
}

// FirstMatch is the greedy policy: candidates are scanned in pool order,
// tokens in query order, name words in name order, and the first pair at or
// above the threshold wins. The result therefore depends on pool iteration
// order; pools must be fetched in a stable order for idempotent responses.
type FirstMatch struct{}

// Match implements Strategy.
func (FirstMatch) Match(names []string, tokens []string, used token.Set, threshold float64) (Hit, bool) {
	for c, name := range names {
		if hit, ok := firstHitInName(name, tokens, used, threshold); ok {
			hit.Candidate = c
			return hit, true
		}
	}
	return Hit{}, false
}

// firstHitInName scans unconsumed tokens against the words of one candidate
// name and short-circuits on the first pair crossing the threshold.
func firstHitInName(name string, tokens []string, used token.Set, threshold float64) (Hit, bool) {
	words := strings.Fields(strings.ToLower(name))
	for ti, tok := range tokens {
		if used.Used(ti) {
			continue
		}
		for _, w := range words {
			if s := Similarity(tok, w); s >= threshold {
				return Hit{Token: ti, Score: s}, true
			}
		}
	}
	return Hit{}, false
}

// BestMatch is the alternative policy: every candidate/token/word pair is
// scored and the highest similarity at or above the threshold wins. Ties
// resolve to the earliest candidate, then the earliest token, making the
// result independent of where the best pair sits in the pool.
type BestMatch struct{}

// Match implements Strategy.
func (BestMatch) Match(names []string, tokens []string, used token.Set, threshold float64) (Hit, bool) {
	best := Hit{Score: -1}
	found := false
	for c, name := range names {
		words := strings.Fields(strings.ToLower(name))
		for ti, tok := range tokens {
			if used.Used(ti) {
				continue
			}
			for _, w := range words {
				s := Similarity(tok, w)
				if s < threshold || s <= best.Score {
					continue
				}
				best = Hit{Candidate: c, Token: ti, Score: s}
				found = true
			}
		}
	}
	return best, found
}
