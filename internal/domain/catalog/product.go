package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Product is the leaf of the catalog hierarchy (immutable value object).
// A product belongs to one brand and one model but may span several
// variants of that model. Upstream data management keeps the three
// references mutually consistent; readers trust them.
type Product struct {
	id           string
	name         string
	brandID      string
	modelID      string
	variantIDs   []string
	sellingPrice float64
	searchTags   []string
	createdAt    int64
}

// NewProduct validates and creates a Product.
func NewProduct(
	id, name, brandID, modelID string,
	variantIDs []string,
	sellingPrice float64,
	searchTags []string,
) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product id is required")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if brandID == "" || modelID == "" {
		return Product{}, fmt.Errorf("product brand and model ids are required")
	}
	if len(variantIDs) == 0 {
		return Product{}, fmt.Errorf("product requires at least one variant")
	}
	if sellingPrice < 0 {
		return Product{}, fmt.Errorf("selling price must not be negative")
	}
	return Product{
		id:           id,
		name:         name,
		brandID:      brandID,
		modelID:      modelID,
		variantIDs:   variantIDs,
		sellingPrice: sellingPrice,
		searchTags:   searchTags,
		createdAt:    time.Now().UnixMilli(),
	}, nil
}

// ReconstructProduct creates a Product without validation (storage hydration).
func ReconstructProduct(
	id, name, brandID, modelID string,
	variantIDs []string,
	sellingPrice float64,
	searchTags []string,
	createdAt int64,
) Product {
	return Product{
		id:           id,
		name:         name,
		brandID:      brandID,
		modelID:      modelID,
		variantIDs:   variantIDs,
		sellingPrice: sellingPrice,
		searchTags:   searchTags,
		createdAt:    createdAt,
	}
}

func (p Product) ID() string            { return p.id }
func (p Product) Name() string          { return p.name }
func (p Product) BrandID() string       { return p.brandID }
func (p Product) ModelID() string       { return p.modelID }
func (p Product) VariantIDs() []string  { return p.variantIDs }
func (p Product) SellingPrice() float64 { return p.sellingPrice }
func (p Product) SearchTags() []string  { return p.searchTags }
func (p Product) CreatedAt() int64      { return p.createdAt }

// HasVariant reports whether the product covers the given variant.
func (p Product) HasVariant(variantID string) bool {
	for _, id := range p.variantIDs {
		if id == variantID {
			return true
		}
	}
	return false
}
