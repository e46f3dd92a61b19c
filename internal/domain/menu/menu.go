// Package menu holds the café menu catalog.
package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors for menu items.
var (
	ErrMissingName   = fmt.Errorf("menu item name is required")
	ErrNegativePrice = fmt.Errorf("menu item price must not be negative")
)

// Item is a single entry on the menu.
type Item struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Active    bool
	CreatedAt time.Time
}

// Repository defines persistence operations for menu items.
type Repository interface {
	// List returns all active menu items.
	List(ctx context.Context) ([]Item, error)
	// Create persists a new item and returns its store-assigned ID.
	Create(ctx context.Context, item *Item) (string, error)
}
