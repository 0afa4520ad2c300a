package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"consigne-admin/internal/config"
	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/pkg/jwt"
	"consigne-admin/internal/pkg/token"

	"github.com/google/uuid"
)

// AuthService handles console authentication: admin login against the
// remote API, the persisted session blob, and the signed session cookie.
type AuthService struct {
	accounts AccountGateway
	store    SessionStore
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(accounts AccountGateway, store SessionStore, cfg *config.Config) *AuthService {
	return &AuthService{
		accounts: accounts,
		store:    store,
		cfg:      cfg,
	}
}

// LoginOutput is a successful login: the signed cookie value and the
// decoded identity for display.
type LoginOutput struct {
	Token    string         `json:"token"`
	Identity token.Identity `json:"identity"`
}

// Login authenticates admin credentials. Only role 2 establishes a session;
// any other role is rejected with no session created.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	result, err := s.accounts.LoginAdmin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if result.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAdmin
	}

	identity := token.Identity{
		ID:       result.ID,
		Mail:     result.Mail,
		Username: result.Username,
		Role:     result.Role,
	}
	blob, err := token.Encode(identity)
	if err != nil {
		return nil, err
	}

	key := uuid.NewString()
	ttl := time.Duration(s.cfg.Session.TTLHours) * time.Hour
	if err := s.store.Create(key, blob, ttl); err != nil {
		return nil, err
	}

	signed, err := jwt.GenerateSessionToken(key, identity.Username, int(identity.Role), s.cfg.Session.Secret, s.cfg.Session.TTLHours)
	if err != nil {
		s.store.Delete(key)
		return nil, err
	}

	return &LoginOutput{Token: signed, Identity: identity}, nil
}

// Authenticate resolves a session cookie value to an identity. An invalid
// cookie, a missing session row, or an undecodable blob all mean
// unauthenticated; a bad blob additionally clears the stored session (the
// silent-logout path), logged only as a diagnostic.
func (s *AuthService) Authenticate(tokenString string) (*token.Identity, error) {
	claims, err := jwt.ValidateSessionToken(tokenString, s.cfg.Session.Secret)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	blob, err := s.store.Get(claims.SessionKey)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	identity, err := token.Decode(blob)
	if err != nil {
		if errors.Is(err, token.ErrMalformed) {
			log.Printf("session %s…: malformed identity blob, clearing session", claims.SessionKey[:8])
			s.store.Delete(claims.SessionKey)
		}
		return nil, domain.ErrUnauthorized
	}
	return &identity, nil
}

// Logout destroys the persisted session behind a cookie value. A cookie
// that no longer validates is ignored.
func (s *AuthService) Logout(tokenString string) {
	claims, err := jwt.ValidateSessionToken(tokenString, s.cfg.Session.Secret)
	if err != nil {
		return
	}
	s.store.Delete(claims.SessionKey)
}
