// Package query derives the currently visible product list from the
// catalog and the active search, category, and sort parameters. All
// functions are pure: identical inputs yield identical sequences and
// the catalog is never mutated.
package query

import (
	"slices"
	"strings"

	"github.com/xenking/storefront/internal/domain/product"
)

// SortMode selects the ordering of the visible product list.
type SortMode string

const (
	// SortFeatured preserves the catalog's original order.
	SortFeatured SortMode = "featured"
	// SortPriceAsc orders by unit price, lowest first.
	SortPriceAsc SortMode = "price-asc"
	// SortPriceDesc orders by unit price, highest first.
	SortPriceDesc SortMode = "price-desc"
)

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "All"

// Params holds the current browse parameters.
type Params struct {
	Search   string
	Category string
	Sort     SortMode
}

// DefaultParams returns the parameters a fresh session starts with.
func DefaultParams() Params {
	return Params{Category: CategoryAll, Sort: SortFeatured}
}

// Visible returns the filtered, sorted view of the catalog.
// Search matches case-insensitively against name or description;
// an empty search matches everything. The category filter applies
// unless it is CategoryAll. Sorting is stable: ties keep catalog
// relative order.
func Visible(catalog *product.Catalog, params Params) []product.Product {
	products := catalog.List()

	out := products[:0:0]
	needle := strings.ToLower(strings.TrimSpace(params.Search))
	for _, p := range products {
		if needle != "" && !matches(p, needle) {
			continue
		}
		if params.Category != "" && params.Category != CategoryAll && p.Category != params.Category {
			continue
		}
		out = append(out, p)
	}

	switch params.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return b.Price.Cmp(a.Price)
		})
	default:
		// SortFeatured: catalog order as-is.
	}

	return out
}

func matches(p product.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
