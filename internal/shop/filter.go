package shop

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dxlr/storefront/internal/catalog"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-low"
	SortPriceDesc SortKey = "price-high"
	SortName      SortKey = "name"
)

// PriceRange is one fixed bucket. Max is exclusive; the last bucket is
// unbounded above.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// PriceRanges are the selectable buckets, in whole EGP. Criteria refers
// to them by index.
var PriceRanges = []PriceRange{
	{Label: "Under EGP 1,000", Min: 0, Max: 1000},
	{Label: "EGP 1,000 - 2,500", Min: 1000, Max: 2500},
	{Label: "EGP 2,500 - 5,000", Min: 2500, Max: 5000},
	{Label: "Over EGP 5,000", Min: 5000, Max: math.Inf(1)},
}

// Criteria is one set of shop filters. The zero value matches the whole
// catalog in newest-first order.
type Criteria struct {
	Search      string
	Category    string
	PriceBucket *int
	NewOnly     bool
	SaleOnly    bool
	Sort        SortKey
}

// Active reports whether any narrowing filter is set, so an empty
// result can be told apart from an unfiltered view.
func (c Criteria) Active() bool {
	return c.Search != "" || c.Category != "" || c.PriceBucket != nil || c.NewOnly || c.SaleOnly
}

var nameCollator = collate.New(language.English)

// Apply runs the filter chain and sort over the given products and
// returns a fresh slice. It never mutates its input.
func Apply(products []catalog.Product, c Criteria) []catalog.Product {
	result := make([]catalog.Product, len(products))
	copy(result, products)

	if c.Search != "" {
		q := strings.ToLower(c.Search)
		result = keep(result, func(p catalog.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(p.Category), q)
		})
	}

	if c.Category != "" {
		result = keep(result, func(p catalog.Product) bool {
			return p.CategorySlug == c.Category
		})
	}

	if c.PriceBucket != nil && *c.PriceBucket >= 0 && *c.PriceBucket < len(PriceRanges) {
		r := PriceRanges[*c.PriceBucket]
		result = keep(result, func(p catalog.Product) bool {
			price := p.EffectivePrice()
			return price >= r.Min && price < r.Max
		})
	}

	if c.NewOnly {
		result = keep(result, func(p catalog.Product) bool { return p.New })
	}

	if c.SaleOnly {
		result = keep(result, func(p catalog.Product) bool { return p.Sale })
	}

	switch c.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() < result[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() > result[j].EffectivePrice()
		})
	case SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return nameCollator.CompareString(result[i].Name, result[j].Name) < 0
		})
	default:
		// "newest" is a stable partition, not a chronological sort: the
		// catalog has no timestamps, so new items simply come first in
		// their original relative order.
		result = append(keep(result, func(p catalog.Product) bool { return p.New }),
			keep(result, func(p catalog.Product) bool { return !p.New })...)
	}

	return result
}

func keep(products []catalog.Product, pred func(catalog.Product) bool) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
