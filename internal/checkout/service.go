package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aufburger/internal/cart"
	"aufburger/internal/core"
	"aufburger/internal/customizer"
	"aufburger/internal/receipt"

	"github.com/sirupsen/logrus"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrEmptyCart            = errors.New("cart is empty")
)

// CustomerInfo is collected at checkout and printed on the receipt only.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (ci CustomerInfo) normalize() (receipt.Customer, error) {
	name := strings.TrimSpace(ci.Name)
	if name == "" {
		return receipt.Customer{}, ErrCustomerNameRequired
	}
	return receipt.Customer{
		Name:  name,
		Phone: strings.TrimSpace(ci.Phone),
		Notes: strings.TrimSpace(ci.Notes),
	}, nil
}

type Service struct {
	products core.ProductReader
	numbers  receipt.Generator
	header   receipt.Header
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewService(
	products core.ProductReader,
	numbers receipt.Generator,
	header receipt.Header,
	log logrus.FieldLogger,
) *Service {
	return &Service{
		products: products,
		numbers:  numbers,
		header:   header,
		now:      time.Now,
		log:      log.WithField("component", "checkout"),
	}
}

// Customize loads the product and replays the selection onto it.
func (s *Service) Customize(ctx context.Context, productID int, sel customizer.Selection) (*customizer.Customizer, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	return customizer.FromSelection(*p, sel)
}

// AddCustomized prices the selection against the current catalog and
// appends it as a new line.
func (s *Service) AddCustomized(
	ctx context.Context,
	store *cart.Store,
	session string,
	productID int,
	sel customizer.Selection,
) (*cart.Cart, error) {
	cz, err := s.Customize(ctx, productID, sel)
	if err != nil {
		return nil, err
	}
	return store.Add(ctx, session, cz.LineItem())
}

func (s *Service) AddSimple(ctx context.Context, store *cart.Store, session string, productID int) (*cart.Cart, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	return store.AddSimple(ctx, session, *p)
}

// Checkout renders a receipt for the session's cart and clears it.
// Nothing about the order is persisted.
func (s *Service) Checkout(
	ctx context.Context,
	store *cart.Store,
	session string,
	info CustomerInfo,
) (*receipt.Receipt, error) {
	customer, err := info.normalize()
	if err != nil {
		return nil, err
	}

	var r *receipt.Receipt
	err = store.Take(ctx, session, func(c *cart.Cart) error {
		if c.IsEmpty() {
			return ErrEmptyCart
		}

		number, err := s.numbers.Next(ctx)
		if err != nil {
			return fmt.Errorf("order number: %w", err)
		}

		r = receipt.Render(s.header, c, customer, number, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_number": r.OrderNumber,
		"lines":        len(r.Lines),
		"grand_total":  r.GrandTotal,
	}).Info("order placed")

	return r, nil
}
