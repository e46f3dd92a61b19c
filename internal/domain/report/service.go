package report

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/calderon/cafepos/internal/domain/order"
)

// Service produces sales reports from the order repository.
type Service struct {
	orders order.Repository
}

// NewService creates a report Service over the given order repository.
func NewService(orders order.Repository) *Service {
	return &Service{orders: orders}
}

// Sales retrieves every order matching the date filter (all orders when date
// is empty) and aggregates them. Unlike order history, the reporting path is
// uncapped: a truncated window would understate totals.
func (s *Service) Sales(ctx context.Context, date string) (Report, error) {
	orders, err := s.orders.ListByDate(ctx, date)
	if err != nil {
		return Report{}, errors.Wrap(err, "list orders for report")
	}

	label := date
	if label == "" {
		label = AllDates
	}
	return Aggregate(label, orders), nil
}
