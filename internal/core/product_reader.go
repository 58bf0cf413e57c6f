package core

import (
	"context"

	"aufburger/internal/menu"
)

// ProductReader is the read side of the catalog that the ordering flows
// depend on. *menu.Service satisfies it.
type ProductReader interface {
	Get(ctx context.Context, id int) (*menu.Product, error)
}
