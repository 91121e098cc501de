package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// TokenMetadata identifies an issued token: the fields needed to revoke it.
type TokenMetadata struct {
	ID        string
	ExpiresAt time.Time
}

// TokenService issues and decodes signed, self-contained session tokens.
type TokenService interface {
	// Issue serializes the claims into a signed token with a fresh
	// rolling expiry.
	Issue(claims domain.Claims) (string, error)
	// Decode verifies the signature first, then expiry, then revocation.
	// Failures are domain.ErrTokenInvalid, domain.ErrTokenExpired, or
	// domain.ErrTokenRevoked.
	Decode(ctx context.Context, token string) (domain.Claims, TokenMetadata, error)
}

// RevocationStore is the blocklist of logged-out token ids. Entries expire
// together with the token they revoke, so the set stays bounded.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService implements registration, credential authentication, and
// session lifecycle.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Refresh re-issues a token from the identity's current field values
	// without a password re-check.
	Refresh(ctx context.Context, userID string) (string, *domain.User, error)
	Logout(ctx context.Context, meta TokenMetadata) error
}
