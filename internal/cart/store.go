package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"aufburger/internal/menu"
	"aufburger/internal/pricing"

	"github.com/sirupsen/logrus"
)

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

const (
	NamespaceCart  = "cart"
	NamespaceOrder = "order"
)

// Store is the cart repository. Every mutation is a synchronous
// load, modify, save of the whole cart under one slot key.
type Store struct {
	slot      Slot
	namespace string
	log       logrus.FieldLogger

	// serializes read-modify-write so two requests for the same
	// session cannot interleave
	mu sync.Mutex
}

func NewStore(slot Slot, namespace string, log logrus.FieldLogger) *Store {
	return &Store{
		slot:      slot,
		namespace: namespace,
		log:       log.WithFields(logrus.Fields{"component": "cart", "namespace": namespace}),
	}
}

func (s *Store) key(session string) string {
	return s.namespace + ":" + session
}

// Load returns the session's cart. A missing or malformed slot yields an
// empty cart.
func (s *Store) Load(ctx context.Context, session string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, session)
}

func (s *Store) load(ctx context.Context, session string) (*Cart, error) {
	raw, err := s.slot.Load(ctx, s.key(session))
	if errors.Is(err, ErrSlotEmpty) {
		return &Cart{Items: []LineItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.WithError(err).WithField("session", session).Warn("discarding malformed cart slot")
		return &Cart{Items: []LineItem{}}, nil
	}
	if items == nil {
		items = []LineItem{}
	}

	return &Cart{Items: items}, nil
}

func (s *Store) save(ctx context.Context, session string, c *Cart) error {
	data, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}
	return s.slot.Save(ctx, s.key(session), data)
}

func (s *Store) mutate(ctx context.Context, session string, fn func(*Cart) error) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.save(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Add appends a customized line. Lines are never merged here.
func (s *Store) Add(ctx context.Context, session string, item LineItem) (*Cart, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item.Extras = dedupe(item.Extras)
	item.setQuantity(item.Quantity)

	return s.mutate(ctx, session, func(c *Cart) error {
		c.Items = append(c.Items, item)
		return nil
	})
}

// AddSimple is the quick order flow: lines are keyed by product id and
// adding an existing product increments its quantity.
func (s *Store) AddSimple(ctx context.Context, session string, p menu.Product) (*Cart, error) {
	return s.mutate(ctx, session, func(c *Cart) error {
		for i := range c.Items {
			if c.Items[i].ProductID == p.ID {
				c.Items[i].setQuantity(c.Items[i].Quantity + 1)
				return nil
			}
		}

		c.Items = append(c.Items, LineItem{
			ProductID:  p.ID,
			Name:       p.Name,
			BasePrice:  p.Price,
			UnitPrice:  p.Price,
			Quantity:   1,
			Size:       pricing.SizeRegular,
			Extras:     []string{},
			TotalPrice: p.Price,
		})
		return nil
	})
}

// DecrementProduct lowers the quantity of the product's line by one and
// removes the line when it reaches zero.
func (s *Store) DecrementProduct(ctx context.Context, session string, productID int) (*Cart, error) {
	return s.mutate(ctx, session, func(c *Cart) error {
		for i := range c.Items {
			if c.Items[i].ProductID != productID {
				continue
			}
			if c.Items[i].Quantity > 1 {
				c.Items[i].setQuantity(c.Items[i].Quantity - 1)
			} else {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return nil
		}
		return ErrLineNotFound
	})
}

// UpdateQuantity sets the line's quantity; zero or less removes it.
// The unit price is the one captured on the line, never re-read from the catalog.
func (s *Store) UpdateQuantity(ctx context.Context, session string, index, quantity int) (*Cart, error) {
	return s.mutate(ctx, session, func(c *Cart) error {
		if index < 0 || index >= len(c.Items) {
			return ErrLineNotFound
		}

		if quantity <= 0 {
			c.Items = append(c.Items[:index], c.Items[index+1:]...)
			return nil
		}

		c.Items[index].setQuantity(quantity)
		return nil
	})
}

func (s *Store) Remove(ctx context.Context, session string, index int) (*Cart, error) {
	return s.mutate(ctx, session, func(c *Cart) error {
		if index < 0 || index >= len(c.Items) {
			return ErrLineNotFound
		}
		c.Items = append(c.Items[:index], c.Items[index+1:]...)
		return nil
	})
}

// Take hands the session's cart to fn and erases the slot once fn
// succeeds. Both happen under one lock hold, so no mutation can land
// between reading the cart and clearing it. When fn fails the cart is
// left as it was.
func (s *Store) Take(ctx context.Context, session string, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, session)
	if err != nil {
		return err
	}

	if err := fn(c); err != nil {
		return err
	}

	return s.slot.Delete(ctx, s.key(session))
}

// Clear empties the cart and erases its slot.
func (s *Store) Clear(ctx context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slot.Delete(ctx, s.key(session))
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
