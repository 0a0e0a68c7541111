package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
)

// AuthAdapter is a thin adapter that translates CLI operations to
// AuthService calls.
type AuthAdapter struct {
	service primary.AuthService
	out     io.Writer
}

// NewAuthAdapter creates a new AuthAdapter with the given service.
func NewAuthAdapter(service primary.AuthService, out io.Writer) *AuthAdapter {
	return &AuthAdapter{
		service: service,
		out:     out,
	}
}

// Login attempts a login with the given credentials.
func (a *AuthAdapter) Login(ctx context.Context, email, password string) error {
	result, err := a.service.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	if !result.OK {
		fmt.Fprintf(a.out, "✗ %s\n", result.Reason)
		return nil
	}

	fmt.Fprintf(a.out, "✓ Logged in as %s\n", result.User.Email)
	return nil
}

// Logout removes the stored session.
func (a *AuthAdapter) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	fmt.Fprintln(a.out, "✓ Logged out")
	return nil
}

// WhoAmI prints the logged-in user, if any.
func (a *AuthAdapter) WhoAmI(ctx context.Context) error {
	user, err := a.service.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s (%s)\n", user.Email, user.Role)
	return nil
}
