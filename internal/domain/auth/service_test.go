package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockAccountRepo struct {
	accounts map[string]*Account
	findErr  error

	stampedUser string
	stampedDate string
	stampedTime string
}

func (m *mockAccountRepo) FindByUsername(_ context.Context, username string) (*Account, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	a, ok := m.accounts[username]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return a, nil
}

func (m *mockAccountRepo) RecordAccess(_ context.Context, username, date, timeOfDay string) error {
	m.stampedUser = username
	m.stampedDate = date
	m.stampedTime = timeOfDay
	return nil
}

func newRepo(t *testing.T, username, password string) *mockAccountRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &mockAccountRepo{
		accounts: map[string]*Account{
			username: {
				Username:       username,
				PasswordHash:   string(hash),
				Role:           "admin",
				Active:         true,
				LastAccessDate: "31/12/2023",
				LastAccessTime: "09:00:00",
			},
		},
	}
}

func TestLogin(t *testing.T) {
	repo := newRepo(t, "admin", "1234")
	at := time.Date(2024, 1, 1, 14, 30, 5, 0, time.UTC)
	svc := NewService(repo, func() time.Time { return at })

	account, err := svc.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)

	assert.Equal(t, "admin", account.Username)
	assert.Equal(t, "admin", account.Role)
	// The returned record still carries the previous access.
	assert.Equal(t, "31/12/2023", account.LastAccessDate)

	assert.Equal(t, "admin", repo.stampedUser)
	assert.Equal(t, "01/01/2024", repo.stampedDate)
	assert.Equal(t, "14:30:05", repo.stampedTime)
}

func TestLogin_NormalizesUsername(t *testing.T) {
	repo := newRepo(t, "admin", "1234")
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "  Admin ", " 1234 ")
	require.NoError(t, err)
	assert.Equal(t, "admin", repo.stampedUser)
}

func TestLogin_UnknownAccount(t *testing.T) {
	repo := newRepo(t, "admin", "1234")
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "nobody", "1234")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newRepo(t, "admin", "1234")
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "admin", "4444")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Empty(t, repo.stampedUser, "failed login must not stamp access")
}

func TestLogin_RepositoryError(t *testing.T) {
	repo := &mockAccountRepo{findErr: errors.New("store unreachable")}
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "admin", "1234")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownAccount)
	assert.NotErrorIs(t, err, ErrInvalidPassword)
}

func TestHashPassword_Verifiable(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
