package services

import (
	"context"
	"testing"
	"time"

	"consigne-admin/internal/adapters/gateway"
	"consigne-admin/internal/config"
	"consigne-admin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	blobs map[string]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{blobs: make(map[string]string)}
}

func (m *memorySessionStore) Create(key, blob string, ttl time.Duration) error {
	m.blobs[key] = blob
	return nil
}

func (m *memorySessionStore) Get(key string) (string, error) {
	blob, ok := m.blobs[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return blob, nil
}

func (m *memorySessionStore) Delete(key string) error {
	delete(m.blobs, key)
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Secret:   "test-secret-at-least-32-characters!",
			TTLHours: 1,
		},
	}
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin login creates a session and a signed cookie", func(t *testing.T) {
		accounts := &fakeAccountGateway{login: &gateway.LoginResult{
			ID: 42, Mail: "admin@consigne.fr", Username: "admin", Role: domain.RoleAdmin,
		}}
		store := newMemorySessionStore()
		svc := NewAuthService(accounts, store, testAuthConfig())

		out, err := svc.Login(ctx, "admin@consigne.fr", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, uint(42), out.Identity.ID)
		assert.Equal(t, domain.RoleAdmin, out.Identity.Role)
		assert.Len(t, store.blobs, 1)
	})

	t.Run("non-admin role is rejected with no session", func(t *testing.T) {
		accounts := &fakeAccountGateway{login: &gateway.LoginResult{
			ID: 9, Mail: "diff@consigne.fr", Username: "diff", Role: domain.RoleDiffuser,
		}}
		store := newMemorySessionStore()
		svc := NewAuthService(accounts, store, testAuthConfig())

		_, err := svc.Login(ctx, "diff@consigne.fr", "secret")
		assert.ErrorIs(t, err, domain.ErrNotAdmin)
		assert.Empty(t, store.blobs)
	})

	t.Run("bad credentials pass through as unauthorized", func(t *testing.T) {
		accounts := &fakeAccountGateway{loginErr: domain.ErrUnauthorized}
		svc := NewAuthService(accounts, newMemorySessionStore(), testAuthConfig())

		_, err := svc.Login(ctx, "admin@consigne.fr", "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("empty credentials are rejected locally", func(t *testing.T) {
		svc := NewAuthService(&fakeAccountGateway{}, newMemorySessionStore(), testAuthConfig())

		_, err := svc.Login(ctx, " ", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthServiceAuthenticate(t *testing.T) {
	ctx := context.Background()

	accounts := &fakeAccountGateway{login: &gateway.LoginResult{
		ID: 42, Mail: "admin@consigne.fr", Username: "admin", Role: domain.RoleAdmin,
	}}
	store := newMemorySessionStore()
	svc := NewAuthService(accounts, store, testAuthConfig())

	out, err := svc.Login(ctx, "admin@consigne.fr", "secret")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		identity, err := svc.Authenticate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), identity.ID)
		assert.Equal(t, "admin", identity.Username)
		assert.Equal(t, domain.RoleAdmin, identity.Role)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		_, err := svc.Authenticate("not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		other := NewAuthService(accounts, store, &config.Config{
			Session: config.SessionConfig{Secret: "another-secret-entirely-different!!", TTLHours: 1},
		})
		_, err := other.Authenticate(out.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("malformed stored blob clears the session", func(t *testing.T) {
		for key := range store.blobs {
			store.blobs[key] = "%%%not-base64%%%"
		}
		_, err := svc.Authenticate(out.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Empty(t, store.blobs, "silent logout removes the broken session")
	})

	t.Run("missing session row", func(t *testing.T) {
		_, err := svc.Authenticate(out.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()

	accounts := &fakeAccountGateway{login: &gateway.LoginResult{
		ID: 42, Mail: "admin@consigne.fr", Username: "admin", Role: domain.RoleAdmin,
	}}
	store := newMemorySessionStore()
	svc := NewAuthService(accounts, store, testAuthConfig())

	out, err := svc.Login(ctx, "admin@consigne.fr", "secret")
	require.NoError(t, err)
	require.Len(t, store.blobs, 1)

	svc.Logout(out.Token)
	assert.Empty(t, store.blobs)

	_, err = svc.Authenticate(out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
