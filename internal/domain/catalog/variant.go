package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Variant is a concrete trim of a model (immutable value object).
type Variant struct {
	id        string
	name      string
	modelID   string
	createdAt int64
}

// NewVariant validates and creates a Variant.
func NewVariant(id, name, modelID string) (Variant, error) {
	if id == "" {
		return Variant{}, fmt.Errorf("variant id is required")
	}
	if strings.TrimSpace(name) == "" {
		return Variant{}, fmt.Errorf("variant name is required")
	}
	if modelID == "" {
		return Variant{}, fmt.Errorf("variant model id is required")
	}
	return Variant{id: id, name: name, modelID: modelID, createdAt: time.Now().UnixMilli()}, nil
}

// ReconstructVariant creates a Variant without validation (storage hydration).
func ReconstructVariant(id, name, modelID string, createdAt int64) Variant {
	return Variant{id: id, name: name, modelID: modelID, createdAt: createdAt}
}

func (v Variant) ID() string       { return v.id }
func (v Variant) Name() string     { return v.name }
func (v Variant) ModelID() string  { return v.modelID }
func (v Variant) CreatedAt() int64 { return v.createdAt }
