package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Model is a brand's product line (immutable value object).
// Referential integrity (brandID resolves to an existing brand) is enforced
// by the catalog management layer, not here.
type Model struct {
	id        string
	name      string
	brandID   string
	createdAt int64
}

// NewModel validates and creates a Model.
func NewModel(id, name, brandID string) (Model, error) {
	if id == "" {
		return Model{}, fmt.Errorf("model id is required")
	}
	if strings.TrimSpace(name) == "" {
		return Model{}, fmt.Errorf("model name is required")
	}
	if brandID == "" {
		return Model{}, fmt.Errorf("model brand id is required")
	}
	return Model{id: id, name: name, brandID: brandID, createdAt: time.Now().UnixMilli()}, nil
}

// ReconstructModel creates a Model without validation (storage hydration).
func ReconstructModel(id, name, brandID string, createdAt int64) Model {
	return Model{id: id, name: name, brandID: brandID, createdAt: createdAt}
}

func (m Model) ID() string       { return m.id }
func (m Model) Name() string     { return m.name }
func (m Model) BrandID() string  { return m.brandID }
func (m Model) CreatedAt() int64 { return m.createdAt }
