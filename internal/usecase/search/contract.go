package search

import (
	"context"

	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
)

// CatalogReader defines the read-only storage contract for the cascading
// resolver. Pools must be returned in a stable iteration order: first-match
// resolution depends on it.
type CatalogReader interface {
	// ActiveBrands returns the active brand pool, optionally filtered by
	// type tag equality.
	ActiveBrands(ctx context.Context, typeTag string) ([]domcat.Brand, error)
	// ModelsOf returns the models of a brand.
	ModelsOf(ctx context.Context, brandID string) ([]domcat.Model, error)
	// VariantsOf returns the variants of a model.
	VariantsOf(ctx context.Context, modelID string) ([]domcat.Variant, error)
	// ProductsOf returns the products referencing the resolved brand,
	// model, and variant.
	ProductsOf(ctx context.Context, brandID, modelID, variantID string) ([]domcat.Product, error)
}
