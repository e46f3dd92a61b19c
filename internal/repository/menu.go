package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calderon/cafepos/internal/domain/menu"
)

const (
	listMenuSQL = `SELECT id, name, price, active, created_at
		FROM menu_items WHERE active ORDER BY name`

	createMenuItemSQL = `INSERT INTO menu_items (id, name, price, active, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	upsertMenuItemSQL = `INSERT INTO menu_items (id, name, price, active, created_at)
		VALUES ($1, $2, $3, TRUE, now())
		ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price, active = TRUE`
)

var _ menu.Repository = (*MenuRepository)(nil)

// MenuRepository implements menu.Repository backed by PostgreSQL.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a MenuRepository that uses the given pool.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

// List returns all active menu items ordered by name.
func (r *MenuRepository) List(ctx context.Context) ([]menu.Item, error) {
	rows, err := r.pool.Query(ctx, listMenuSQL)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return pgx.CollectRows(rows, scanMenuItem)
}

// Create persists a new menu item under a freshly assigned UUID.
func (r *MenuRepository) Create(ctx context.Context, item *menu.Item) (string, error) {
	id := uuid.New().String()
	_, err := r.pool.Exec(ctx, createMenuItemSQL,
		id, item.Name, item.Price, item.Active, item.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("creating menu item %q: %w", item.Name, err)
	}
	return id, nil
}

// Upsert inserts the item or, when the name already exists, refreshes its
// price and reactivates it. Used by seeding.
func (r *MenuRepository) Upsert(ctx context.Context, item *menu.Item) error {
	_, err := r.pool.Exec(ctx, upsertMenuItemSQL, uuid.New().String(), item.Name, item.Price)
	if err != nil {
		return fmt.Errorf("upserting menu item %q: %w", item.Name, err)
	}
	return nil
}

func scanMenuItem(row pgx.CollectableRow) (menu.Item, error) {
	var item menu.Item
	err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Active, &item.CreatedAt)
	return item, err
}
