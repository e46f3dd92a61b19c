package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calderon/cafepos/internal/domain/order"
)

const (
	createOrderSQL = `INSERT INTO orders (id, account, items, subtotal, tax, total, submitted_date, submitted_time, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	// Empty filter values match everything; set values are ANDed. The
	// history cap is a hard limit, not a page size.
	listOrdersSQL = `SELECT id, account, items, subtotal, tax, total, submitted_date, submitted_time, submitted_at
		FROM orders
		WHERE ($1 = '' OR account = $1) AND ($2 = '' OR submitted_date = $2)
		ORDER BY submitted_at DESC
		LIMIT $3`

	listOrdersByDateSQL = `SELECT id, account, items, subtotal, tax, total, submitted_date, submitted_time, submitted_at
		FROM orders
		WHERE ($1 = '' OR submitted_date = $1)
		ORDER BY submitted_at DESC`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create appends a new order under a freshly assigned UUID and returns it.
// The line items are serialized to JSON for storage in the JSONB column.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (string, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return "", fmt.Errorf("marshaling order items: %w", err)
	}

	id := uuid.New().String()
	_, err = r.pool.Exec(ctx, createOrderSQL,
		id, o.Account, itemsJSON, o.Subtotal, o.Tax, o.Total,
		o.SubmittedDate, o.SubmittedTime, o.SubmittedAt,
	)
	if err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}

	return id, nil
}

// List returns orders matching the filter, newest first, capped at
// order.HistoryLimit.
func (r *OrderRepository) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersSQL, f.Account, f.Date, order.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// ListByDate returns every order matching the date (all orders when date is
// empty), newest first, with no cap.
func (r *OrderRepository) ListByDate(ctx context.Context, date string) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersByDateSQL, date)
	if err != nil {
		return nil, fmt.Errorf("listing orders by date: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o         order.Order
		itemsJSON []byte
	)
	err := row.Scan(
		&o.ID, &o.Account, &itemsJSON, &o.Subtotal, &o.Tax, &o.Total,
		&o.SubmittedDate, &o.SubmittedTime, &o.SubmittedAt,
	)
	if err != nil {
		return order.Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return order.Order{}, fmt.Errorf("unmarshaling order items: %w", err)
	}
	return o, nil
}
