package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales tax applied to the cart subtotal.
var TaxRate = decimal.RequireFromString("0.085")

// Quote is the price breakdown of one customized product.
// Amounts are exact; rounding happens only in Money.
type Quote struct {
	BasePrice     decimal.Decimal `json:"base_price"`
	SizeSurcharge decimal.Decimal `json:"size_surcharge"`
	ExtrasTotal   decimal.Decimal `json:"extras_total"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
}

// Totals is the cart-wide aggregation.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// UnitPrice = base + size surcharge + sum of extras.
func UnitPrice(base, sizeSurcharge decimal.Decimal, extraPrices []decimal.Decimal) decimal.Decimal {
	return base.Add(sizeSurcharge).Add(decimal.Sum(decimal.Zero, extraPrices...))
}

// LineTotal = (base + size surcharge + sum of extras) x quantity.
func LineTotal(base, sizeSurcharge decimal.Decimal, extraPrices []decimal.Decimal, quantity int) decimal.Decimal {
	return UnitPrice(base, sizeSurcharge, extraPrices).Mul(decimal.NewFromInt(int64(quantity)))
}

// QuoteFor resolves size and extra names against the global option sets
// and prices the combination.
func QuoteFor(base decimal.Decimal, sizeName string, extraNames []string, quantity int) (Quote, error) {
	size, err := LookupSize(sizeName)
	if err != nil {
		return Quote{}, err
	}

	extraPrices := make([]decimal.Decimal, 0, len(extraNames))
	for _, name := range extraNames {
		extra, err := LookupExtra(name)
		if err != nil {
			return Quote{}, err
		}
		extraPrices = append(extraPrices, extra.Price)
	}

	unit := UnitPrice(base, size.Surcharge, extraPrices)

	return Quote{
		BasePrice:     base,
		SizeSurcharge: size.Surcharge,
		ExtrasTotal:   decimal.Sum(decimal.Zero, extraPrices...),
		UnitPrice:     unit,
		Quantity:      quantity,
		Total:         unit.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// ComputeTotals aggregates line totals into subtotal, tax and grand total.
func ComputeTotals(lineTotals []decimal.Decimal) Totals {
	subtotal := decimal.Sum(decimal.Zero, lineTotals...)
	tax := subtotal.Mul(TaxRate)

	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// Money formats an amount for display, rounded to cents.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
