package primary

import "context"

// AuthService defines the primary port for the local login session. This is
// a single-user convenience gate, not a security boundary: credentials are
// fixed and the session is a record in the local store.
type AuthService interface {
	// Login checks the credentials and persists a session on success.
	// A bad credential pair yields a rejection result, not an error.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout removes the stored session. Logging out while logged out is
	// a no-op.
	Logout(ctx context.Context) error

	// CurrentUser returns the logged-in user, or nil when logged out.
	CurrentUser(ctx context.Context) (*User, error)
}

// User is the logged-in identity.
type User struct {
	Email string
	Role  string
}

// LoginResult is the outcome of a login attempt.
type LoginResult struct {
	OK     bool
	Reason string
	User   *User
}
