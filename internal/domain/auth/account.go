// Package auth verifies staff credentials. Passwords are stored only as
// bcrypt hashes; plaintext comparison is never performed.
package auth

import (
	"context"
	"fmt"
)

// Authentication errors. The HTTP layer maps these to distinct status codes.
var (
	ErrUnknownAccount  = fmt.Errorf("account not found")
	ErrInvalidPassword = fmt.Errorf("invalid password")
)

// Account is a staff account. LastAccessDate/LastAccessTime record the most
// recent successful login, in the ledger's fixed date and time formats.
type Account struct {
	Username       string
	PasswordHash   string
	Role           string
	Active         bool
	LastAccessDate string
	LastAccessTime string
}

// Repository defines persistence operations for staff accounts.
type Repository interface {
	// FindByUsername returns the account, or ErrUnknownAccount.
	FindByUsername(ctx context.Context, username string) (*Account, error)
	// RecordAccess stamps the account's last successful login.
	RecordAccess(ctx context.Context, username, date, timeOfDay string) error
}
