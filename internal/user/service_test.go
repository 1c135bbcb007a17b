package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverpine/fleet-booking/internal/auth"
)

type fakeUserRepository struct {
	byEmail map[string]*User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*User)}
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUserRepository) Create(_ context.Context, u *User) error {
	u.ID = "user-" + u.Email
	u.CreatedAt = time.Now().UTC()
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepository) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.LastLoginAt = &t
			return nil
		}
	}
	return ErrNotFound
}

func newTestUserService() (Service, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and normalizes email", func(t *testing.T) {
		svc, _ := newTestUserService()

		u, err := svc.Register(ctx, "  Alice@Example.COM ", "long-enough-pass", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		require.NotNil(t, u.DisplayName)
		assert.Equal(t, "Alice", *u.DisplayName)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "long-enough-pass", u.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Register(ctx, "alice@example.com", "long-enough-pass", "")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "ALICE@example.com", "long-enough-pass", "")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Register(ctx, "alice@example.com", "short", "")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Register(ctx, "   ", "long-enough-pass", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Register(ctx, "alice@example.com", "long-enough-pass", "")
		require.NoError(t, err)

		u, err := svc.Login(ctx, "alice@example.com", "long-enough-pass")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Register(ctx, "alice@example.com", "long-enough-pass", "")
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown email without leaking existence", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Login(ctx, "nobody@example.com", "whatever-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects inactive user", func(t *testing.T) {
		svc, repo := newTestUserService()

		_, err := svc.Register(ctx, "alice@example.com", "long-enough-pass", "")
		require.NoError(t, err)
		repo.byEmail["alice@example.com"].IsActive = false

		_, err = svc.Login(ctx, "alice@example.com", "long-enough-pass")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}
