package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/calderon/cafepos/internal/domain/order"
)

// Service verifies staff credentials against the account repository.
type Service struct {
	accounts Repository
	now      func() time.Time
}

// NewService creates an auth Service. A nil clock defaults to time.Now.
func NewService(accounts Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		accounts: accounts,
		now:      now,
	}
}

// HashPassword derives a bcrypt hash suitable for storage in the account
// repository. Used by seeding and account provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

// Login verifies the credentials and, on success, stamps the account's last
// access and returns it with the previous last-access values intact so the
// caller can show "last seen". Usernames are case-insensitive; surrounding
// whitespace on either credential is ignored.
func (s *Service) Login(ctx context.Context, username, password string) (*Account, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	password = strings.TrimSpace(password)

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUnknownAccount) {
			return nil, ErrUnknownAccount
		}
		return nil, errors.Wrap(err, "find account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	now := s.now()
	err = s.accounts.RecordAccess(ctx, username, now.Format(order.DateFormat), now.Format(order.TimeFormat))
	if err != nil {
		return nil, errors.Wrap(err, "record access")
	}

	return account, nil
}
