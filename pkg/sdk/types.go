package sdk

import (
	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
	"github.com/gearstack/catsearch/internal/domain/search/outcome"
)

// SortMode selects product ordering for fully resolved searches.
type SortMode string

const (
	// SortNameAsc orders products A-Z by name.
	SortNameAsc SortMode = "A-Z"
	// SortNameDesc orders products Z-A by name.
	SortNameDesc SortMode = "Z-A"
	// SortPriceAsc orders products low to high by price.
	SortPriceAsc SortMode = "L-H"
	// SortPriceDesc orders products high to low by price.
	SortPriceDesc SortMode = "H-L"
)

// Level is the catalog level a search resolved to.
type Level string

const (
	// LevelBrand means no brand matched; Brands holds suggestions.
	LevelBrand Level = "brand"
	// LevelModel means a brand matched; Models holds its models.
	LevelModel Level = "model"
	// LevelVariant means brand and model matched; Variants holds options.
	LevelVariant Level = "variant"
	// LevelProduct means the search fully resolved; Products holds results.
	LevelProduct Level = "product"
)

// Brand is a catalog brand.
type Brand struct {
	ID        string
	Name      string
	Status    string
	Type      string
	CreatedAt int64
}

// Model is a catalog model.
type Model struct {
	ID        string
	Name      string
	BrandID   string
	CreatedAt int64
}

// Variant is a catalog variant.
type Variant struct {
	ID        string
	Name      string
	ModelID   string
	CreatedAt int64
}

// Product is a catalog product.
type Product struct {
	ID           string
	Name         string
	BrandID      string
	ModelID      string
	VariantIDs   []string
	SellingPrice float64
	SearchTags   []string
	CreatedAt    int64
}

// Result is the terminal state of a smart search. Level says which fields
// are populated: Brands for LevelBrand; Brand+Models for LevelModel;
// Brand+Model+Variants for LevelVariant; Brand+Model+Variant+Products for
// LevelProduct.
type Result struct {
	Level    Level
	Brands   []Brand
	Brand    Brand
	Models   []Model
	Model    Model
	Variants []Variant
	Variant  Variant
	Products []Product
}

func resultFromOutcome(out outcome.Outcome) Result {
	switch out.ResolvedLevel() {
	case outcome.LevelModel:
		return Result{
			Level:  LevelModel,
			Brand:  brandFromDomain(out.Brand()),
			Models: modelsFromDomain(out.Models()),
		}
	case outcome.LevelVariant:
		return Result{
			Level:    LevelVariant,
			Brand:    brandFromDomain(out.Brand()),
			Model:    modelFromDomain(out.Model()),
			Variants: variantsFromDomain(out.Variants()),
		}
	case outcome.LevelProduct:
		return Result{
			Level:    LevelProduct,
			Brand:    brandFromDomain(out.Brand()),
			Model:    modelFromDomain(out.Model()),
			Variant:  variantFromDomain(out.Variant()),
			Products: productsFromDomain(out.Products()),
		}
	default:
		return Result{
			Level:  LevelBrand,
			Brands: brandsFromDomain(out.Brands()),
		}
	}
}

func brandFromDomain(b domcat.Brand) Brand {
	return Brand{
		ID:        b.ID(),
		Name:      b.Name(),
		Status:    string(b.Status()),
		Type:      b.TypeTag(),
		CreatedAt: b.CreatedAt(),
	}
}

func brandsFromDomain(brands []domcat.Brand) []Brand {
	out := make([]Brand, len(brands))
	for i, b := range brands {
		out[i] = brandFromDomain(b)
	}
	return out
}

func modelFromDomain(m domcat.Model) Model {
	return Model{ID: m.ID(), Name: m.Name(), BrandID: m.BrandID(), CreatedAt: m.CreatedAt()}
}

func modelsFromDomain(models []domcat.Model) []Model {
	out := make([]Model, len(models))
	for i, m := range models {
		out[i] = modelFromDomain(m)
	}
	return out
}

func variantFromDomain(v domcat.Variant) Variant {
	return Variant{ID: v.ID(), Name: v.Name(), ModelID: v.ModelID(), CreatedAt: v.CreatedAt()}
}

func variantsFromDomain(variants []domcat.Variant) []Variant {
	out := make([]Variant, len(variants))
	for i, v := range variants {
		out[i] = variantFromDomain(v)
	}
	return out
}

func productFromDomain(p domcat.Product) Product {
	return Product{
		ID:           p.ID(),
		Name:         p.Name(),
		BrandID:      p.BrandID(),
		ModelID:      p.ModelID(),
		VariantIDs:   p.VariantIDs(),
		SellingPrice: p.SellingPrice(),
		SearchTags:   p.SearchTags(),
		CreatedAt:    p.CreatedAt(),
	}
}

func productsFromDomain(products []domcat.Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = productFromDomain(p)
	}
	return out
}
