package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calderon/cafepos/internal/domain/auth"
)

const (
	getAccountSQL = `SELECT username, password_hash, role, active, last_access_date, last_access_time
		FROM accounts WHERE username = $1`

	recordAccessSQL = `UPDATE accounts SET last_access_date = $2, last_access_time = $3
		WHERE username = $1`

	upsertAccountSQL = `INSERT INTO accounts (username, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role`
)

var _ auth.Repository = (*AccountRepository)(nil)

// AccountRepository implements auth.Repository backed by PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns an AccountRepository that uses the given pool.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// FindByUsername returns the account, or auth.ErrUnknownAccount when no row
// matches.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*auth.Account, error) {
	rows, err := r.pool.Query(ctx, getAccountSQL, username)
	if err != nil {
		return nil, fmt.Errorf("getting account %q: %w", username, err)
	}

	account, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUnknownAccount
		}
		return nil, fmt.Errorf("getting account %q: %w", username, err)
	}
	return &account, nil
}

// RecordAccess stamps the account's last successful login.
func (r *AccountRepository) RecordAccess(ctx context.Context, username, date, timeOfDay string) error {
	_, err := r.pool.Exec(ctx, recordAccessSQL, username, date, timeOfDay)
	if err != nil {
		return fmt.Errorf("recording access for %q: %w", username, err)
	}
	return nil
}

// Upsert creates the account or replaces its credentials. Used by seeding.
func (r *AccountRepository) Upsert(ctx context.Context, username, passwordHash, role string) error {
	_, err := r.pool.Exec(ctx, upsertAccountSQL, username, passwordHash, role)
	if err != nil {
		return fmt.Errorf("upserting account %q: %w", username, err)
	}
	return nil
}

func scanAccount(row pgx.CollectableRow) (auth.Account, error) {
	var a auth.Account
	err := row.Scan(&a.Username, &a.PasswordHash, &a.Role, &a.Active, &a.LastAccessDate, &a.LastAccessTime)
	return a, err
}
