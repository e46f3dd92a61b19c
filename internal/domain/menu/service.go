package menu

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Service encapsulates menu catalog logic.
type Service struct {
	items Repository
	now   func() time.Time
}

// NewService creates a menu Service. A nil clock defaults to time.Now.
func NewService(items Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		items: items,
		now:   now,
	}
}

// List returns the current menu.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list menu")
	}
	return items, nil
}

// Add validates and persists a new menu item, returning it with its
// store-assigned ID.
func (s *Service) Add(ctx context.Context, name string, price decimal.Decimal) (*Item, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	item := &Item{
		Name:      name,
		Price:     price,
		Active:    true,
		CreatedAt: s.now(),
	}

	id, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, errors.Wrap(err, "persist menu item")
	}
	item.ID = id

	return item, nil
}
