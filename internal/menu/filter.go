package menu

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownPriceRange = errors.New("unknown price range")

// PriceRange is a fixed price bucket used by the listing filter.
type PriceRange string

const (
	PriceAll     PriceRange = "all"
	PriceUnder15 PriceRange = "under-15"
	Price15To20  PriceRange = "15-20"
	PriceOver20  PriceRange = "over-20"
)

// PriceRanges in display order, with their storefront labels.
var PriceRanges = []struct {
	Value PriceRange `json:"value"`
	Label string     `json:"label"`
}{
	{PriceAll, "All"},
	{PriceUnder15, "Under $15"},
	{Price15To20, "$15-$20"},
	{PriceOver20, "Over $20"},
}

var (
	fifteen = decimal.NewFromInt(15)
	twenty  = decimal.NewFromInt(20)
)

// ParsePriceRange accepts both query values and display labels.
// An empty string means All.
func ParsePriceRange(s string) (PriceRange, error) {
	if s == "" {
		return PriceAll, nil
	}
	for _, r := range PriceRanges {
		if strings.EqualFold(s, string(r.Value)) || s == r.Label {
			return r.Value, nil
		}
	}
	return "", ErrUnknownPriceRange
}

// Contains reports whether price falls in the bucket.
// 15 and 20 both belong to the middle bucket.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	switch r {
	case PriceAll, "":
		return true
	case PriceUnder15:
		return price.LessThan(fifteen)
	case Price15To20:
		return price.GreaterThanOrEqual(fifteen) && price.LessThanOrEqual(twenty)
	case PriceOver20:
		return price.GreaterThan(twenty)
	}
	return false
}

// Filter is the listing predicate. Category "" or "All" matches every category.
type Filter struct {
	Search   string
	Category string
	Price    PriceRange
}

func (f Filter) Match(p Product) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	if f.Category != "" && f.Category != "All" && Category(f.Category) != p.Category {
		return false
	}

	return f.Price.Contains(p.Price)
}

// Apply keeps matching products in their original order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
