// Package query validates and normalizes smart-search request parameters.
package query

import (
	"strings"

	"github.com/gearstack/catsearch/internal/domain"
)

// Sort selects the product ordering of a fully resolved search.
type Sort string

const (
	// SortNameAsc orders products by name ascending ("A-Z").
	SortNameAsc Sort = "A-Z"
	// SortNameDesc orders products by name descending ("Z-A").
	SortNameDesc Sort = "Z-A"
	// SortPriceAsc orders products by selling price ascending ("L-H").
	SortPriceAsc Sort = "L-H"
	// SortPriceDesc orders products by selling price descending ("H-L").
	SortPriceDesc Sort = "H-L"
	// SortNewest orders products by creation time, newest first. Default,
	// and the fallback for absent or unrecognized sort_by values.
	SortNewest Sort = "newest"
)

// ParseSort maps a sort_by parameter to a Sort, falling back to SortNewest
// for anything unrecognized.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return Sort(s)
	default:
		return SortNewest
	}
}

// Params is a validated smart-search request.
type Params struct {
	query    string
	typeTag  string
	sort     Sort
	minPrice *float64
	maxPrice *float64
}

// New validates request parameters. The query must be non-blank; everything
// else is optional. Price bounds are inclusive and applied independently.
func New(rawQuery, typeTag, sortBy string, minPrice, maxPrice *float64) (Params, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return Params{}, domain.ErrQueryRequired
	}
	return Params{
		query:    rawQuery,
		typeTag:  typeTag,
		sort:     ParseSort(sortBy),
		minPrice: minPrice,
		maxPrice: maxPrice,
	}, nil
}

// Query returns the original query text as received.
func (p Params) Query() string { return p.query }

// TypeTag returns the optional brand type equality filter.
func (p Params) TypeTag() string { return p.typeTag }

// SortMode returns the resolved product sort order.
func (p Params) SortMode() Sort { return p.sort }

// MinPrice returns the optional inclusive lower price bound.
func (p Params) MinPrice() *float64 { return p.minPrice }

// MaxPrice returns the optional inclusive upper price bound.
func (p Params) MaxPrice() *float64 { return p.maxPrice }
