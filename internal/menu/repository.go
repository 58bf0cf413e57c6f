package menu

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines catalog storage.
// List returns products in catalog order (ascending id).
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int) (*Product, error)

	// Create assigns the next id (max id + 1) to p
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int) error
}
