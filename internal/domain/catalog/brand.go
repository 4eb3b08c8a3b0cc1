package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Status marks whether a brand is visible to shoppers.
type Status string

const (
	// StatusActive marks a brand available in the storefront.
	StatusActive Status = "active"
	// StatusInactive marks a brand hidden from the storefront.
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is a known value.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Brand is the root of the catalog hierarchy (immutable value object).
type Brand struct {
	id        string
	name      string
	status    Status
	typeTag   string
	createdAt int64
}

// NewBrand validates and creates a Brand. typeTag is an optional free-form
// grouping label (e.g. "bike", "car") used as an equality filter.
func NewBrand(id, name string, status Status, typeTag string) (Brand, error) {
	if id == "" {
		return Brand{}, fmt.Errorf("brand id is required")
	}
	if strings.TrimSpace(name) == "" {
		return Brand{}, fmt.Errorf("brand name is required")
	}
	if status == "" {
		status = StatusActive
	}
	if !status.IsValid() {
		return Brand{}, fmt.Errorf("invalid brand status: %q", status)
	}
	return Brand{
		id:        id,
		name:      name,
		status:    status,
		typeTag:   typeTag,
		createdAt: time.Now().UnixMilli(),
	}, nil
}

// ReconstructBrand creates a Brand without validation (storage hydration).
func ReconstructBrand(id, name string, status Status, typeTag string, createdAt int64) Brand {
	return Brand{id: id, name: name, status: status, typeTag: typeTag, createdAt: createdAt}
}

func (b Brand) ID() string       { return b.id }
func (b Brand) Name() string     { return b.name }
func (b Brand) Status() Status   { return b.status }
func (b Brand) TypeTag() string  { return b.typeTag }
func (b Brand) CreatedAt() int64 { return b.createdAt }

// IsActive reports whether the brand is visible to shoppers.
func (b Brand) IsActive() bool { return b.status == StatusActive }
