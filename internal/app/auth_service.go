package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// sessionKey is the KV slot holding the login session.
const sessionKey = "auth_session"

// Fixed single-admin credentials. This is a convenience gate for a local
// tool, not a security boundary.
const (
	adminEmail    = "admin@test.com"
	adminPassword = "password123"
	adminRole     = "admin"
)

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	kv secondary.KVStore
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(kv secondary.KVStore) *AuthServiceImpl {
	return &AuthServiceImpl{kv: kv}
}

// storedSession is the KV serialization of the login session.
type storedSession struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login checks the credentials and persists a session on success. A bad
// credential pair yields a rejection result, not an error.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*primary.LoginResult, error) {
	if email != adminEmail || password != adminPassword {
		return &primary.LoginResult{Reason: "Invalid email or password"}, nil
	}

	raw, err := json.Marshal(storedSession{Email: adminEmail, Role: adminRole})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &primary.LoginResult{
		OK:   true,
		User: &primary.User{Email: adminEmail, Role: adminRole},
	}, nil
}

// Logout removes the stored session. Logging out while logged out is a no-op.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// CurrentUser returns the logged-in user, or nil when logged out.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context) (*primary.User, error) {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var session storedSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &primary.User{Email: session.Email, Role: session.Role}, nil
}
