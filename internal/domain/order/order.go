package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fixed rendering formats for order timestamps. SubmittedDate uses
// dd/mm/yyyy and SubmittedTime uses 24h wall-clock time; both are derived
// from the authoritative SubmittedAt instant.
const (
	DateFormat = "02/01/2006"
	TimeFormat = "15:04:05"
)

// TaxRate is the fixed surcharge applied to every order's subtotal.
var TaxRate = decimal.RequireFromString("0.18")

// Sentinel errors for order validation.
var (
	ErrEmptyItems     = fmt.Errorf("order must contain at least one item")
	ErrMissingAccount = fmt.Errorf("submitting account is required")
)

// InvalidItemError indicates a malformed line item in a submission.
type InvalidItemError struct {
	Index  int
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid line item %d: %s", e.Index, e.Reason)
}

// LineItem is one product line within an order. The line subtotal is
// supplied by the caller and trusted as-is; it is never recomputed from a
// unit price.
type LineItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"lineSubtotal"`
}

// Order is an immutable, append-only record of a submitted order. ID is
// assigned by the repository at creation and never reused.
type Order struct {
	ID            string
	Account       string
	Items         []LineItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	SubmittedDate string
	SubmittedTime string
	SubmittedAt   time.Time
}

// Filter narrows an order history query. Zero-value fields match everything;
// set fields are combined with logical AND. Date is compared by string
// equality against the fixed DateFormat rendering, not as a range.
type Filter struct {
	Account string
	Date    string
}

// HistoryLimit caps order history results. Records beyond the most recent
// HistoryLimit are silently excluded; there is no pagination cursor.
const HistoryLimit = 50

// Repository defines persistence operations for orders.
type Repository interface {
	// Create durably appends the order and returns its store-assigned ID.
	Create(ctx context.Context, o *Order) (string, error)
	// List returns matching orders, newest first, capped at HistoryLimit.
	List(ctx context.Context, f Filter) ([]Order, error)
	// ListByDate returns every order matching the date (all orders when
	// date is empty), newest first, uncapped. Used by the reporting path.
	ListByDate(ctx context.Context, date string) ([]Order, error)
}

// CalculateTotals validates the line items and computes the order's monetary
// totals: subtotal is the sum of line subtotals, tax is subtotal times
// TaxRate, total is their sum. Pure; no rounding is applied.
func CalculateTotals(items []LineItem) (subtotal, tax, total decimal.Decimal, err error) {
	if len(items) == 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero, ErrEmptyItems
	}

	for i, item := range items {
		if item.Name == "" {
			return decimal.Zero, decimal.Zero, decimal.Zero, &InvalidItemError{Index: i, Reason: "name is required"}
		}
		if item.Quantity <= 0 {
			return decimal.Zero, decimal.Zero, decimal.Zero, &InvalidItemError{Index: i, Reason: "quantity must be greater than 0"}
		}
		if item.Subtotal.IsNegative() {
			return decimal.Zero, decimal.Zero, decimal.Zero, &InvalidItemError{Index: i, Reason: "line subtotal must not be negative"}
		}
		subtotal = subtotal.Add(item.Subtotal)
	}

	tax = subtotal.Mul(TaxRate)
	total = subtotal.Add(tax)
	return subtotal, tax, total, nil
}
