package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// sessionClaims is the wire shape of a session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	FirstName      string      `json:"first_name,omitempty"`
	LastName       string      `json:"last_name,omitempty"`
	ProfilePicture string      `json:"profile_picture,omitempty"`
	Role           domain.Role `json:"role"`
}

// TokenService issues and decodes HS256-signed session tokens. Tokens are
// self-contained: the server keeps no session table. The revocation store
// is optional; without one, logout is client-side only.
type TokenService struct {
	secret  []byte
	ttl     time.Duration
	revoked ports.RevocationStore
}

// NewTokenService creates a TokenService. revoked may be nil. A
// non-positive ttl falls back to the default rolling 30 days.
func NewTokenService(secret string, ttl time.Duration, revoked ports.RevocationStore) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, revoked: revoked}
}

// Issue serializes claims into a signed token with a fresh expiry and a
// unique id for later revocation.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now().UTC()
	sc := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email:          claims.Email,
		Name:           claims.Name,
		FirstName:      claims.FirstName,
		LastName:       claims.LastName,
		ProfilePicture: claims.ProfilePicture,
		Role:           claims.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, sc).SignedString(s.secret)
}

// Decode validates token and returns its claims. The signature is checked
// before anything else; an expired token with a valid signature yields
// ErrTokenExpired, everything else ErrTokenInvalid. A revoked token id
// yields ErrTokenRevoked.
func (s *TokenService) Decode(ctx context.Context, token string) (domain.Claims, ports.TokenMetadata, error) {
	var sc sessionClaims
	_, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, ports.TokenMetadata{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, ports.TokenMetadata{}, domain.ErrTokenInvalid
	}
	if sc.Subject == "" {
		return domain.Claims{}, ports.TokenMetadata{}, domain.ErrTokenInvalid
	}

	meta := ports.TokenMetadata{ID: sc.ID}
	if sc.ExpiresAt != nil {
		meta.ExpiresAt = sc.ExpiresAt.Time
	}

	if s.revoked != nil && sc.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, sc.ID)
		if err != nil {
			return domain.Claims{}, ports.TokenMetadata{}, err
		}
		if revoked {
			return domain.Claims{}, ports.TokenMetadata{}, domain.ErrTokenRevoked
		}
	}

	return domain.Claims{
		UserID:         sc.Subject,
		Email:          sc.Email,
		Name:           sc.Name,
		FirstName:      sc.FirstName,
		LastName:       sc.LastName,
		ProfilePicture: sc.ProfilePicture,
		Role:           sc.Role,
	}, meta, nil
}
