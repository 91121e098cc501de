package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

type stubRevocationStore struct {
	revoked map[string]time.Duration
}

func newStubRevocationStore() *stubRevocationStore {
	return &stubRevocationStore{revoked: make(map[string]time.Duration)}
}

func (s *stubRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func testClaims() domain.Claims {
	return domain.Claims{
		UserID:    "user_1",
		Email:     "alice@example.com",
		Name:      "Alice Doe",
		FirstName: "Alice",
		LastName:  "Doe",
		Role:      domain.RoleStandard,
	}
}

func TestTokenService_IssueDecode_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	token, err := svc.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token, got empty string")
	}

	claims, meta, err := svc.Decode(context.Background(), token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims != testClaims() {
		t.Fatalf("decoded claims differ: %+v", claims)
	}
	if meta.ID == "" {
		t.Fatalf("expected a token id for revocation")
	}
	until := time.Until(meta.ExpiresAt)
	if until <= 0 || until > time.Hour {
		t.Fatalf("unexpected expiry: %v", meta.ExpiresAt)
	}
}

func TestTokenService_Decode_FreshIDPerIssue(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	first, err := svc.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	second, err := svc.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, firstMeta, err := svc.Decode(context.Background(), first)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	_, secondMeta, err := svc.Decode(context.Background(), second)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if firstMeta.ID == secondMeta.ID {
		t.Fatalf("each issued token must carry a unique id")
	}
}

func TestTokenService_Decode_Tampered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	token, err := svc.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, _, err := svc.Decode(context.Background(), string(tampered)); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestTokenService_Decode_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, nil)
	verifier := NewTokenService("secret-b", time.Hour, nil)

	token, err := issuer.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, _, err := verifier.Decode(context.Background(), token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}

func TestTokenService_Decode_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	past := time.Now().UTC().Add(-time.Minute)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "tok_expired",
		Subject:   "user_1",
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(past),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, _, err := svc.Decode(context.Background(), signed); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Decode_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "tok_anon",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	})
	signed, err := anonymous.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, _, err := svc.Decode(context.Background(), signed); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}

type failingRevocationStore struct {
	err error
}

func (s *failingRevocationStore) Revoke(context.Context, string, time.Duration) error {
	return s.err
}

func (s *failingRevocationStore) IsRevoked(context.Context, string) (bool, error) {
	return false, s.err
}

func TestTokenService_Decode_StoreFailureSurfaces(t *testing.T) {
	storeErr := errors.New("revocation check: connection refused")
	svc := NewTokenService("secret", time.Hour, &failingRevocationStore{err: storeErr})

	token, err := svc.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, _, err = svc.Decode(context.Background(), token)
	if !errors.Is(err, storeErr) {
		t.Fatalf("a store failure must surface as itself, got %v", err)
	}
	if errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("a store failure must not masquerade as a token failure: %v", err)
	}
}

func TestTokenService_Decode_Revoked(t *testing.T) {
	store := newStubRevocationStore()
	svc := NewTokenService("secret", time.Hour, store)

	token, err := svc.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, meta, err := svc.Decode(context.Background(), token)
	if err != nil {
		t.Fatalf("Decode before revocation failed: %v", err)
	}

	if err := store.Revoke(context.Background(), meta.ID, time.Hour); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if _, _, err := svc.Decode(context.Background(), token); err != domain.ErrTokenRevoked {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}
