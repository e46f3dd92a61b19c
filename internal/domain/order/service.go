package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// Service encapsulates order submission and history business logic.
type Service struct {
	orders Repository
	now    func() time.Time
}

// NewService creates an order Service. A nil clock defaults to time.Now.
func NewService(orders Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		orders: orders,
		now:    now,
	}
}

// Submit validates the submission, computes its totals, stamps the current
// instant, and appends the record. The returned order carries the
// store-assigned ID.
func (s *Service) Submit(ctx context.Context, account string, items []LineItem) (*Order, error) {
	if account == "" {
		return nil, ErrMissingAccount
	}

	subtotal, tax, total, err := CalculateTotals(items)
	if err != nil {
		return nil, err
	}

	submittedAt := s.now()
	o := &Order{
		Account:       account,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		SubmittedDate: submittedAt.Format(DateFormat),
		SubmittedTime: submittedAt.Format(TimeFormat),
		SubmittedAt:   submittedAt,
	}

	id, err := s.orders.Create(ctx, o)
	if err != nil {
		return nil, errors.Wrap(err, "persist order")
	}
	o.ID = id

	return o, nil
}

// History returns orders matching the filter, newest first, capped at
// HistoryLimit. No matches is an empty slice, not an error.
func (s *Service) History(ctx context.Context, f Filter) ([]Order, error) {
	orders, err := s.orders.List(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}
