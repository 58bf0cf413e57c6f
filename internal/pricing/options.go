package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownSize  = errors.New("unknown size")
	ErrUnknownExtra = errors.New("unknown extra")
)

const (
	SizeRegular = "Regular"
	SizeLarge   = "Large"
	SizeXL      = "XL"
)

// SizeOption is a mutually exclusive portion size with a fixed surcharge.
type SizeOption struct {
	Name      string          `json:"name"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

// ExtraOption is an additive topping, priced independently of size.
type ExtraOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

var sizes = []SizeOption{
	{Name: SizeRegular, Surcharge: decimal.Zero},
	{Name: SizeLarge, Surcharge: decimal.RequireFromString("3.00")},
	{Name: SizeXL, Surcharge: decimal.RequireFromString("5.00")},
}

var extras = []ExtraOption{
	{Name: "Extra Cheese", Price: decimal.RequireFromString("1.50")},
	{Name: "Bacon", Price: decimal.RequireFromString("2.00")},
	{Name: "Avocado", Price: decimal.RequireFromString("1.75")},
	{Name: "Mushrooms", Price: decimal.RequireFromString("1.25")},
	{Name: "Onion Rings", Price: decimal.RequireFromString("2.50")},
	{Name: "Extra Patty", Price: decimal.RequireFromString("4.00")},
}

// Sizes returns the global size options in display order.
func Sizes() []SizeOption {
	out := make([]SizeOption, len(sizes))
	copy(out, sizes)
	return out
}

// Extras returns the global extra options in display order.
func Extras() []ExtraOption {
	out := make([]ExtraOption, len(extras))
	copy(out, extras)
	return out
}

func LookupSize(name string) (SizeOption, error) {
	for _, s := range sizes {
		if s.Name == name {
			return s, nil
		}
	}
	return SizeOption{}, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

func LookupExtra(name string) (ExtraOption, error) {
	for _, e := range extras {
		if e.Name == name {
			return e, nil
		}
	}
	return ExtraOption{}, fmt.Errorf("%w: %q", ErrUnknownExtra, name)
}
