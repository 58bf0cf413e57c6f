package menu

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySignature  Category = "Signature"
	CategoryPremium    Category = "Premium"
	CategoryClassic    Category = "Classic"
	CategoryGourmet    Category = "Gourmet"
	CategorySpicy      Category = "Spicy"
	CategoryVegetarian Category = "Vegetarian"
)

// Categories lists every category in display order.
// Stats break ties on top category by this order.
var Categories = []Category{
	CategorySignature,
	CategoryPremium,
	CategoryClassic,
	CategoryGourmet,
	CategorySpicy,
	CategoryVegetarian,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is one orderable catalog entry.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`
	Rating      float64         `json:"rating"`
	Ingredients []string        `json:"ingredients,omitempty"`
	Allergens   []string        `json:"allergens,omitempty"`
	Spicy       bool            `json:"is_spicy"`
	Vegetarian  bool            `json:"is_vegetarian"`
}

// ProductInput is the admin editor form
type ProductInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Image       string              `json:"image"`
	Category    string              `json:"category"`
	Rating      *float64            `json:"rating"`
	Ingredients []string            `json:"ingredients"`
	Allergens   []string            `json:"allergens"`
	Spicy       bool                `json:"is_spicy"`
	Vegetarian  bool                `json:"is_vegetarian"`
}

// Stats summarizes the catalog for the admin dashboard
type Stats struct {
	TotalItems  int             `json:"total_items"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	AvgRating   float64         `json:"avg_rating"`
	TopCategory Category        `json:"top_category"`
}
