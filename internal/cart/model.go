package cart

import (
	"aufburger/internal/pricing"

	"github.com/shopspring/decimal"
)

// LineItem is one customized product in the cart. Name and BasePrice are
// captured when the item is added, so later catalog edits do not change it.
type LineItem struct {
	ProductID  int             `json:"productId"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"basePrice"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	Size       string          `json:"size"`
	Extras     []string        `json:"extras"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// unit returns the stored unit price, or back-derives it from
// totalPrice / quantity for items saved without one.
func (li LineItem) unit() decimal.Decimal {
	if !li.UnitPrice.IsZero() || li.Quantity <= 0 {
		return li.UnitPrice
	}
	return li.TotalPrice.Div(decimal.NewFromInt(int64(li.Quantity)))
}

func (li *LineItem) setQuantity(q int) {
	unit := li.unit()
	li.UnitPrice = unit
	li.Quantity = q
	li.TotalPrice = unit.Mul(decimal.NewFromInt(int64(q)))
}

// Cart is an ordered sequence of line items.
type Cart struct {
	Items []LineItem `json:"items"`
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

func (c *Cart) Totals() pricing.Totals {
	lines := make([]decimal.Decimal, 0, len(c.Items))
	for _, li := range c.Items {
		lines = append(lines, li.TotalPrice)
	}
	return pricing.ComputeTotals(lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
