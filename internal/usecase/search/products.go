package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
	"github.com/gearstack/catsearch/internal/domain/search/match"
	"github.com/gearstack/catsearch/internal/domain/search/query"
	"github.com/gearstack/catsearch/internal/domain/search/token"
)

// resolveProducts fetches the products of the resolved variant, applies the
// optional price range and the sort policy, then runs the tag refinement
// pass with whatever query tokens the cascade left unconsumed.
func (s *Service) resolveProducts(
	ctx context.Context,
	brand domcat.Brand, model domcat.Model, variant domcat.Variant,
	params query.Params,
	tokens []string, used token.Set,
) ([]domcat.Product, error) {
	products, err := s.catalog.ProductsOf(ctx, brand.ID(), model.ID(), variant.ID())
	if err != nil {
		return nil, fmt.Errorf("fetch product pool: %w", err)
	}

	products = filterPriceRange(products, params.MinPrice(), params.MaxPrice())
	sortProducts(products, params.SortMode())

	remaining := used.Remaining(tokens)
	if len(remaining) == 0 || len(products) == 0 {
		return products, nil
	}

	// Keep the refined subset only when it is non-empty; zero tag hits fall
	// back to the full filtered and sorted list.
	if matched := refineByTags(products, remaining); len(matched) > 0 {
		return matched, nil
	}
	return products, nil
}

// filterPriceRange applies the inclusive bounds independently.
func filterPriceRange(products []domcat.Product, minPrice, maxPrice *float64) []domcat.Product {
	if minPrice == nil && maxPrice == nil {
		return products
	}
	out := products[:0]
	for _, p := range products {
		if minPrice != nil && p.SellingPrice() < *minPrice {
			continue
		}
		if maxPrice != nil && p.SellingPrice() > *maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortProducts orders the slice in place. Stable sorts keep creation order
// for ties, so repeated identical requests return identical responses.
func sortProducts(products []domcat.Product, mode query.Sort) {
	switch mode {
	case query.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name()) < strings.ToLower(products[j].Name())
		})
	case query.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name()) > strings.ToLower(products[j].Name())
		})
	case query.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SellingPrice() < products[j].SellingPrice()
		})
	case query.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SellingPrice() > products[j].SellingPrice()
		})
	default:
		// Newest created first.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt() > products[j].CreatedAt()
		})
	}
}

// refineByTags keeps products with at least one tag scoring TagThreshold or
// better against any remaining token.
func refineByTags(products []domcat.Product, remaining []string) []domcat.Product {
	var matched []domcat.Product
	for _, p := range products {
		if productHasTagHit(p, remaining) {
			matched = append(matched, p)
		}
	}
	return matched
}

func productHasTagHit(p domcat.Product, remaining []string) bool {
	for _, tok := range remaining {
		for _, tag := range p.SearchTags() {
			if match.Similarity(tok, strings.ToLower(tag)) >= match.TagThreshold {
				return true
			}
		}
	}
	return false
}
