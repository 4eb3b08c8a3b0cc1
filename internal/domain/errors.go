// Package domain holds sentinel errors shared across layers. A stalled
// resolution stage is a suggestion outcome, not an error, so the only
// request-level sentinel is the missing query.
package domain

import "errors"

// ErrQueryRequired signals a missing or empty search query.
var ErrQueryRequired = errors.New("search query is required")
