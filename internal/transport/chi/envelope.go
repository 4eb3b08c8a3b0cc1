package chi

import (
	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
	"github.com/gearstack/catsearch/internal/domain/search/outcome"
)

// envelope is the wire format of the smart-search endpoint. Exactly one
// is_* flag is true on success; all four are false on validation or
// internal failures.
type envelope struct {
	Success     bool   `json:"success"`
	SearchQuery string `json:"searchQuery,omitempty"`
	Error       string `json:"error,omitempty"`
	IsBrand     bool   `json:"is_brand"`
	IsModel     bool   `json:"is_model"`
	IsVariant   bool   `json:"is_variant"`
	IsProduct   bool   `json:"is_product"`
	Results     any    `json:"results,omitempty"`
}

type brandJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Type      string `json:"type,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type modelJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BrandID   string `json:"brand_id"`
	CreatedAt int64  `json:"created_at"`
}

type variantJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ModelID   string `json:"model_id"`
	CreatedAt int64  `json:"created_at"`
}

type productJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	BrandID      string   `json:"brand_id"`
	ModelID      string   `json:"model_id"`
	VariantIDs   []string `json:"variant_ids"`
	SellingPrice float64  `json:"selling_price"`
	SearchTags   []string `json:"search_tags,omitempty"`
	CreatedAt    int64    `json:"created_at"`
}

func envelopeFromOutcome(searchQuery string, out outcome.Outcome) envelope {
	env := envelope{
		Success:     true,
		SearchQuery: searchQuery,
	}

	switch out.ResolvedLevel() {
	case outcome.LevelBrand:
		env.IsBrand = true
		env.Results = brandsToJSON(out.Brands())
	case outcome.LevelModel:
		env.IsModel = true
		env.Results = map[string]any{
			"brand":  brandToJSON(out.Brand()),
			"models": modelsToJSON(out.Models()),
		}
	case outcome.LevelVariant:
		env.IsVariant = true
		env.Results = map[string]any{
			"brand":    brandToJSON(out.Brand()),
			"model":    modelToJSON(out.Model()),
			"variants": variantsToJSON(out.Variants()),
		}
	case outcome.LevelProduct:
		env.IsProduct = true
		env.Results = map[string]any{
			"brand":    brandToJSON(out.Brand()),
			"model":    modelToJSON(out.Model()),
			"variant":  variantToJSON(out.Variant()),
			"products": productsToJSON(out.Products()),
		}
	}

	return env
}

func brandToJSON(b domcat.Brand) brandJSON {
	return brandJSON{
		ID:        b.ID(),
		Name:      b.Name(),
		Status:    string(b.Status()),
		Type:      b.TypeTag(),
		CreatedAt: b.CreatedAt(),
	}
}

func brandsToJSON(brands []domcat.Brand) []brandJSON {
	out := make([]brandJSON, len(brands))
	for i, b := range brands {
		out[i] = brandToJSON(b)
	}
	return out
}

func modelToJSON(m domcat.Model) modelJSON {
	return modelJSON{ID: m.ID(), Name: m.Name(), BrandID: m.BrandID(), CreatedAt: m.CreatedAt()}
}

func modelsToJSON(models []domcat.Model) []modelJSON {
	out := make([]modelJSON, len(models))
	for i, m := range models {
		out[i] = modelToJSON(m)
	}
	return out
}

func variantToJSON(v domcat.Variant) variantJSON {
	return variantJSON{ID: v.ID(), Name: v.Name(), ModelID: v.ModelID(), CreatedAt: v.CreatedAt()}
}

func variantsToJSON(variants []domcat.Variant) []variantJSON {
	out := make([]variantJSON, len(variants))
	for i, v := range variants {
		out[i] = variantToJSON(v)
	}
	return out
}

func productToJSON(p domcat.Product) productJSON {
	return productJSON{
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

func productsToJSON(products []domcat.Product) []productJSON {
	out := make([]productJSON, len(products))
	for i, p := range products {
		out[i] = productToJSON(p)
	}
	return out
}
