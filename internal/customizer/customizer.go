// Package customizer holds the transient per-product selection that
// precedes "add to cart": one size, a set of extras and a quantity.
package customizer

import (
	"aufburger/internal/cart"
	"aufburger/internal/menu"
	"aufburger/internal/pricing"
)

type Customizer struct {
	product  menu.Product
	size     string
	extras   []string
	quantity int
}

// New starts at Regular, no extras, quantity 1.
func New(product menu.Product) *Customizer {
	return &Customizer{
		product:  product,
		size:     pricing.SizeRegular,
		extras:   []string{},
		quantity: 1,
	}
}

func (c *Customizer) Size() string {
	return c.size
}

func (c *Customizer) Extras() []string {
	out := make([]string, len(c.extras))
	copy(out, c.extras)
	return out
}

func (c *Customizer) Quantity() int {
	return c.quantity
}

func (c *Customizer) SetSize(name string) error {
	if _, err := pricing.LookupSize(name); err != nil {
		return err
	}
	c.size = name
	return nil
}

// ToggleExtra adds or removes an extra. Selection order is kept for display.
func (c *Customizer) ToggleExtra(name string, included bool) error {
	if _, err := pricing.LookupExtra(name); err != nil {
		return err
	}

	idx := -1
	for i, e := range c.extras {
		if e == name {
			idx = i
			break
		}
	}

	switch {
	case included && idx < 0:
		c.extras = append(c.extras, name)
	case !included && idx >= 0:
		c.extras = append(c.extras[:idx], c.extras[idx+1:]...)
	}
	return nil
}

// SetQuantity clamps to 1.
func (c *Customizer) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	c.quantity = n
}

func (c *Customizer) Increment() {
	c.quantity++
}

func (c *Customizer) Decrement() {
	if c.CanDecrement() {
		c.quantity--
	}
}

func (c *Customizer) CanDecrement() bool {
	return c.quantity > 1
}

func (c *Customizer) Quote() pricing.Quote {
	// size and extras were validated on the way in
	q, _ := pricing.QuoteFor(c.product.Price, c.size, c.extras, c.quantity)
	return q
}

// LineItem captures the current selection as a cart line.
func (c *Customizer) LineItem() cart.LineItem {
	q := c.Quote()
	return cart.LineItem{
		ProductID:  c.product.ID,
		Name:       c.product.Name,
		BasePrice:  c.product.Price,
		UnitPrice:  q.UnitPrice,
		Quantity:   c.quantity,
		Size:       c.size,
		Extras:     c.Extras(),
		TotalPrice: q.Total,
	}
}

// Selection is the wire form of a customizer state.
type Selection struct {
	Size     string   `json:"size"`
	Extras   []string `json:"extras"`
	Quantity int      `json:"quantity"`
}

// FromSelection replays a selection onto a fresh customizer. Empty size
// means Regular and a missing quantity means 1.
func FromSelection(product menu.Product, sel Selection) (*Customizer, error) {
	c := New(product)

	if sel.Size != "" {
		if err := c.SetSize(sel.Size); err != nil {
			return nil, err
		}
	}

	for _, e := range sel.Extras {
		if err := c.ToggleExtra(e, true); err != nil {
			return nil, err
		}
	}

	if sel.Quantity != 0 {
		c.SetQuantity(sel.Quantity)
	}

	return c, nil
}
