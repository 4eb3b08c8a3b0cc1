// Package token splits search queries into ordered lowercase words and
// tracks which of them have already been consumed by a resolution stage.
package token

import "strings"

// Tokenize splits a raw query on whitespace runs into ordered, non-empty,
// lowercase tokens. Deterministic: the same input always yields the same
// sequence. Empty or whitespace-only input yields an empty slice.
func Tokenize(query string) []string {
	fields := strings.Fields(query)
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

// Set is an immutable set of consumed token positions. A stage receives the
// set from its predecessor and returns a new set with its own consumption
// added; the original is never mutated, so concurrent scoring passes can
// share it safely.
type Set struct {
	used map[int]struct{}
}

// NewSet creates an empty consumption set.
func NewSet() Set {
	return Set{}
}

// Used reports whether the token at position i has been consumed.
func (s Set) Used(i int) bool {
	_, ok := s.used[i]
	return ok
}

// With returns a copy of the set with position i marked consumed.
func (s Set) With(i int) Set {
	next := make(map[int]struct{}, len(s.used)+1)
	for k := range s.used {
		next[k] = struct{}{}
	}
	next[i] = struct{}{}
	return Set{used: next}
}

// Len returns the number of consumed positions.
func (s Set) Len() int {
	return len(s.used)
}

// Remaining returns the unconsumed tokens of the given sequence, preserving
// original query order.
func (s Set) Remaining(tokens []string) []string {
	out := make([]string, 0, len(tokens)-len(s.used))
	for i, t := range tokens {
		if !s.Used(i) {
			out = append(out, t)
		}
	}
	return out
}
