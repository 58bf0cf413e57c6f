package menu

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	products := make([]Product, len(seed))
	for i, p := range seed {
		products[i] = cloneProduct(p)
	}
	return &InMemoryRepository{products: products}
}

// cloneProduct copies the slice fields too, so callers never share
// backing arrays with the stored catalog.
func cloneProduct(p Product) Product {
	if p.Ingredients != nil {
		p.Ingredients = append([]string(nil), p.Ingredients...)
	}
	if p.Allergens != nil {
		p.Allergens = append([]string(nil), p.Allergens...)
	}
	return p
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	for i, p := range r.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := cloneProduct(p)
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	p.ID = maxID + 1
	r.products = append(r.products, cloneProduct(*p))
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = cloneProduct(*p)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
