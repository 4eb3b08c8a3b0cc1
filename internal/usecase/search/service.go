// Package search implements the cascading Brand → Model → Variant → Product
// resolver behind GET /search/smart-search.
package search

import (
	"context"
	"fmt"

	"github.com/gearstack/catsearch/internal/domain"
	domcat "github.com/gearstack/catsearch/internal/domain/catalog"
	"github.com/gearstack/catsearch/internal/domain/search/match"
	"github.com/gearstack/catsearch/internal/domain/search/outcome"
	"github.com/gearstack/catsearch/internal/domain/search/query"
	"github.com/gearstack/catsearch/internal/domain/search/token"
)

// Service resolves free-text queries to the most specific unambiguous
// catalog level. Stages run strictly in sequence: each pool fetch depends
// on the entity the previous stage selected. A fetch failure at any stage
// aborts the whole request; partial results are never returned.
type Service struct {
	catalog  CatalogReader
	strategy match.Strategy
}

// New creates a search service with the greedy first-match policy.
func New(catalog CatalogReader) *Service {
	return &Service{catalog: catalog, strategy: match.FirstMatch{}}
}

// WithStrategy overrides the matching policy. The policy applies to every
// catalog-name stage of a request; mixing policies per stage would change
// results silently and is not supported.
func (s *Service) WithStrategy(strategy match.Strategy) *Service {
	if strategy != nil {
		s.strategy = strategy
	}
	return s
}

// Resolve runs the cascade and returns exactly one terminal outcome.
// Tokens a stage consumes are never reconsidered by later stages.
func (s *Service) Resolve(ctx context.Context, params query.Params) (outcome.Outcome, error) {
	tokens := token.Tokenize(params.Query())
	if len(tokens) == 0 {
		return outcome.Outcome{}, domain.ErrQueryRequired
	}
	used := token.NewSet()

	brands, err := s.catalog.ActiveBrands(ctx, params.TypeTag())
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("fetch brand pool: %w", err)
	}
	hit, ok := s.strategy.Match(brandNames(brands), tokens, used, match.NameThreshold)
	if !ok {
		// No brand matched: the whole pool becomes the suggestion list.
		return outcome.BrandSuggestion(brands), nil
	}
	brand := brands[hit.Candidate]
	used = used.With(hit.Token)

	models, err := s.catalog.ModelsOf(ctx, brand.ID())
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("fetch model pool: %w", err)
	}
	hit, ok = s.strategy.Match(modelNames(models), tokens, used, match.NameThreshold)
	if !ok {
		return outcome.ModelSuggestion(brand, models), nil
	}
	model := models[hit.Candidate]
	used = used.With(hit.Token)

	variants, err := s.catalog.VariantsOf(ctx, model.ID())
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("fetch variant pool: %w", err)
	}
	hit, ok = s.strategy.Match(variantNames(variants), tokens, used, match.NameThreshold)
	if !ok {
		return outcome.VariantSuggestion(brand, model, variants), nil
	}
	variant := variants[hit.Candidate]
	used = used.With(hit.Token)

	products, err := s.resolveProducts(ctx, brand, model, variant, params, tokens, used)
	if err != nil {
		return outcome.Outcome{}, err
	}
	return outcome.ProductResult(brand, model, variant, products), nil
}

func brandNames(brands []domcat.Brand) []string {
	names := make([]string, len(brands))
	for i, b := range brands {
		names[i] = b.Name()
	}
	return names
}

func modelNames(models []domcat.Model) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name()
	}
	return names
}

func variantNames(variants []domcat.Variant) []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name()
	}
	return names
}
