// Package outcome models the terminal state of a cascading search as a
// tagged union: exactly one resolution level per request, by construction.
package outcome

import "github.com/gearstack/catsearch/internal/domain/catalog"

// Level is the most specific catalog level the cascade resolved.
type Level string

const (
	// LevelBrand means no brand matched; the result is a suggestion list.
	LevelBrand Level = "brand"
	// LevelModel means a brand matched but none of its models did.
	LevelModel Level = "model"
	// LevelVariant means brand and model matched but no variant did.
	LevelVariant Level = "variant"
	// LevelProduct means the cascade fully resolved down to products.
	LevelProduct Level = "product"
)

// Outcome is the terminal state of one search request. Use the constructor
// matching the level reached; accessors for other levels return zero values.
type Outcome struct {
	level    Level
	brands   []catalog.Brand
	brand    catalog.Brand
	models   []catalog.Model
	model    catalog.Model
	variants []catalog.Variant
	variant  catalog.Variant
	products []catalog.Product
}

// BrandSuggestion reports a stalled brand stage. brands is the entire
// candidate pool fetched for the request — a "did you mean" list, not an
// error.
func BrandSuggestion(brands []catalog.Brand) Outcome {
	return Outcome{level: LevelBrand, brands: brands}
}

// ModelSuggestion reports a brand match with a stalled model stage.
func ModelSuggestion(brand catalog.Brand, models []catalog.Model) Outcome {
	return Outcome{level: LevelModel, brand: brand, models: models}
}

// VariantSuggestion reports brand and model matches with a stalled variant
// stage.
func VariantSuggestion(brand catalog.Brand, model catalog.Model, variants []catalog.Variant) Outcome {
	return Outcome{level: LevelVariant, brand: brand, model: model, variants: variants}
}

// ProductResult reports a fully resolved cascade.
func ProductResult(
	brand catalog.Brand, model catalog.Model, variant catalog.Variant, products []catalog.Product,
) Outcome {
	return Outcome{
		level:    LevelProduct,
		brand:    brand,
		model:    model,
		variant:  variant,
		products: products,
	}
}

// ResolvedLevel returns the level this outcome terminated at.
func (o Outcome) ResolvedLevel() Level { return o.level }

// Brands returns the suggestion pool of a LevelBrand outcome.
func (o Outcome) Brands() []catalog.Brand { return o.brands }

// Brand returns the matched brand (LevelModel and deeper).
func (o Outcome) Brand() catalog.Brand { return o.brand }

// Models returns the suggestion pool of a LevelModel outcome.
func (o Outcome) Models() []catalog.Model { return o.models }

// Model returns the matched model (LevelVariant and deeper).
func (o Outcome) Model() catalog.Model { return o.model }

// Variants returns the suggestion pool of a LevelVariant outcome.
func (o Outcome) Variants() []catalog.Variant { return o.variants }

// Variant returns the matched variant (LevelProduct only).
func (o Outcome) Variant() catalog.Variant { return o.variant }

// Products returns the product set of a LevelProduct outcome.
func (o Outcome) Products() []catalog.Product { return o.products }
