package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements registration, credential authentication, and
// session lifecycle on top of the user repository and token issuer.
type AuthService struct {
	users   ports.UserRepository
	hasher  PasswordHasher
	tokens  ports.TokenService
	revoked ports.RevocationStore
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, revoked ports.RevocationStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		hasher:  NewPasswordHasher(),
		tokens:  tokens,
		revoked: revoked,
		log:     log,
	}
}

// normalizeEmail canonicalizes an address for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates the input, hashes the password, and creates the
// identity with the least-privileged role.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := normalizeEmail(in.Email)

	if firstName == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: first name, email and password are required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(firstName + " " + lastName),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         domain.RoleStandard,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login authenticates an (email, password) pair and issues a session
// token. Unknown email and wrong password both return the identical
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Claims())
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed in")
	return token, user, nil
}

// Refresh issues a new token from the identity's current field values. The
// caller already proved possession of a valid token; no password re-check
// happens here.
func (s *AuthService) Refresh(ctx context.Context, userID string) (string, *domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.Claims())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout adds the token id to the revocation set until the token would
// have expired anyway. Without a revocation store, logout is a no-op and
// the client simply discards the token.
func (s *AuthService) Logout(ctx context.Context, meta ports.TokenMetadata) error {
	if s.revoked == nil || meta.ID == "" {
		return nil
	}
	ttl := time.Until(meta.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, meta.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.log.Info().Str("token_id", meta.ID).Msg("token revoked")
	return nil
}
