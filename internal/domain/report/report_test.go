package report

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calderon/cafepos/internal/domain/order"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testOrder(account, date, total string, items ...order.LineItem) order.Order {
	return order.Order{
		Account:       account,
		Items:         items,
		Total:         dec(total),
		SubmittedDate: date,
	}
}

func TestAggregate(t *testing.T) {
	orders := []order.Order{
		testOrder("A", "01/01/2024", "10", order.LineItem{Name: "X", Quantity: 3}),
		testOrder("B", "01/01/2024", "20", order.LineItem{Name: "X", Quantity: 2}),
	}

	r := Aggregate("01/01/2024", orders)

	assert.Equal(t, "01/01/2024", r.Date)
	assert.True(t, r.TotalSales.Equal(dec("30")), "totalSales = %s", r.TotalSales)
	assert.Equal(t, 2, r.OrderCount)
	assert.Equal(t, map[string]int{"X": 5}, r.ProductsSold)
}

func TestAggregate_Empty(t *testing.T) {
	r := Aggregate(AllDates, nil)

	assert.True(t, r.TotalSales.IsZero())
	assert.Equal(t, 0, r.OrderCount)
	assert.NotNil(t, r.ProductsSold)
	assert.Empty(t, r.ProductsSold)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	orders := []order.Order{
		testOrder("A", "01/01/2024", "12.5",
			order.LineItem{Name: "Café Expresso", Quantity: 1},
			order.LineItem{Name: "Carajillo", Quantity: 2},
		),
		testOrder("B", "01/01/2024", "7.25", order.LineItem{Name: "Carajillo", Quantity: 1}),
		testOrder("C", "01/01/2024", "30", order.LineItem{Name: "Café Calypso", Quantity: 4}),
	}

	forward := Aggregate("01/01/2024", orders)

	reversed := make([]order.Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}
	backward := Aggregate("01/01/2024", reversed)

	assert.True(t, forward.TotalSales.Equal(backward.TotalSales))
	assert.Equal(t, forward.OrderCount, backward.OrderCount)
	assert.Equal(t, forward.ProductsSold, backward.ProductsSold)
}

func TestAggregate_MergesAcrossOrders(t *testing.T) {
	orders := []order.Order{
		testOrder("A", "01/01/2024", "18",
			order.LineItem{Name: "Café Clásico", Quantity: 1},
			order.LineItem{Name: "Espresso Martini", Quantity: 1},
		),
		testOrder("A", "01/01/2024", "8", order.LineItem{Name: "Café Clásico", Quantity: 2}),
	}

	r := Aggregate("01/01/2024", orders)

	assert.Equal(t, map[string]int{
		"Café Clásico":     3,
		"Espresso Martini": 1,
	}, r.ProductsSold)
}

// --- Service ---

type mockOrderRepo struct {
	listed  []order.Order
	listErr error
	gotDate string
}

func (m *mockOrderRepo) Create(_ context.Context, _ *order.Order) (string, error) {
	return "", errors.New("not implemented")
}

func (m *mockOrderRepo) List(_ context.Context, _ order.Filter) ([]order.Order, error) {
	return nil, errors.New("not implemented")
}

func (m *mockOrderRepo) ListByDate(_ context.Context, date string) ([]order.Order, error) {
	m.gotDate = date
	return m.listed, m.listErr
}

func TestSales_WithDateFilter(t *testing.T) {
	repo := &mockOrderRepo{
		listed: []order.Order{
			testOrder("A", "01/01/2024", "41.3", order.LineItem{Name: "Café Expresso", Quantity: 2}),
		},
	}
	svc := NewService(repo)

	r, err := svc.Sales(context.Background(), "01/01/2024")
	require.NoError(t, err)

	assert.Equal(t, "01/01/2024", repo.gotDate)
	assert.Equal(t, "01/01/2024", r.Date)
	assert.True(t, r.TotalSales.Equal(dec("41.3")))
	assert.Equal(t, 1, r.OrderCount)
}

func TestSales_AllDates(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewService(repo)

	r, err := svc.Sales(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "", repo.gotDate, "empty filter retrieves every order")
	assert.Equal(t, AllDates, r.Date)
	assert.Equal(t, 0, r.OrderCount)
}

func TestSales_RepositoryError(t *testing.T) {
	repo := &mockOrderRepo{listErr: errors.New("store unreachable")}
	svc := NewService(repo)

	_, err := svc.Sales(context.Background(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "list orders for report")
}
