package order

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockOrderRepo struct {
	lastOrder *Order
	nextID    string
	createErr error
	listed    []Order
	listErr   error
	gotFilter Filter
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.lastOrder = o
	return m.nextID, nil
}

func (m *mockOrderRepo) List(_ context.Context, f Filter) ([]Order, error) {
	m.gotFilter = f
	return m.listed, m.listErr
}

func (m *mockOrderRepo) ListByDate(_ context.Context, _ string) ([]Order, error) {
	return m.listed, m.listErr
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// --- Tests ---

func TestSubmit(t *testing.T) {
	repo := &mockOrderRepo{nextID: "order-123"}
	at := time.Date(2024, 1, 1, 14, 30, 5, 0, time.UTC)
	svc := NewService(repo, fixedClock(at))

	items := []LineItem{
		{Name: "Café Expresso", Quantity: 2, Subtotal: dec("20")},
		{Name: "Carajillo", Quantity: 1, Subtotal: dec("15")},
	}

	o, err := svc.Submit(context.Background(), "admin", items)
	require.NoError(t, err)

	assert.Equal(t, "order-123", o.ID)
	assert.Equal(t, "admin", o.Account)
	assert.True(t, o.Subtotal.Equal(dec("35")))
	assert.True(t, o.Tax.Equal(dec("6.3")))
	assert.True(t, o.Total.Equal(dec("41.3")))
	assert.Equal(t, "01/01/2024", o.SubmittedDate)
	assert.Equal(t, "14:30:05", o.SubmittedTime)
	assert.Equal(t, at, o.SubmittedAt)

	require.NotNil(t, repo.lastOrder, "order should be persisted")
	assert.Len(t, repo.lastOrder.Items, 2)
}

func TestSubmit_MissingAccount(t *testing.T) {
	svc := NewService(&mockOrderRepo{}, nil)

	_, err := svc.Submit(context.Background(), "", []LineItem{
		{Name: "Café Clásico", Quantity: 1, Subtotal: dec("8")},
	})
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestSubmit_InvalidItems(t *testing.T) {
	repo := &mockOrderRepo{nextID: "unused"}
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), "admin", nil)
	assert.ErrorIs(t, err, ErrEmptyItems)
	assert.Nil(t, repo.lastOrder, "invalid order must not be persisted")
}

func TestSubmit_RepositoryError(t *testing.T) {
	repo := &mockOrderRepo{createErr: errors.New("store unreachable")}
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), "admin", []LineItem{
		{Name: "Café Clásico", Quantity: 1, Subtotal: dec("8")},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "persist order")
}

func TestHistory_PassesFilter(t *testing.T) {
	repo := &mockOrderRepo{
		listed: []Order{{ID: "a"}, {ID: "b"}},
	}
	svc := NewService(repo, nil)

	got, err := svc.History(context.Background(), Filter{Account: "admin", Date: "01/01/2024"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, Filter{Account: "admin", Date: "01/01/2024"}, repo.gotFilter)
}

func TestHistory_EmptyResult(t *testing.T) {
	svc := NewService(&mockOrderRepo{}, nil)

	got, err := svc.History(context.Background(), Filter{Date: "02/02/2024"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubmit_TotalsUseDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 style inputs must not drift.
	repo := &mockOrderRepo{nextID: "x"}
	svc := NewService(repo, nil)

	o, err := svc.Submit(context.Background(), "super", []LineItem{
		{Name: "a", Quantity: 1, Subtotal: dec("0.1")},
		{Name: "b", Quantity: 1, Subtotal: dec("0.2")},
	})
	require.NoError(t, err)
	assert.True(t, o.Subtotal.Equal(dec("0.3")), "subtotal = %s", o.Subtotal)
	assert.True(t, o.Tax.Equal(dec("0.054")), "tax = %s", o.Tax)
	assert.True(t, o.Total.Equal(dec("0.354")), "total = %s", o.Total)
}
