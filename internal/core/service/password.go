package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const (
	// bcryptCost is fixed. Changing it only affects newly created hashes;
	// the cost embedded in a stored hash is what Verify recomputes with.
	bcryptCost = 12

	// maxPasswordBytes is bcrypt's input limit. Input past 72 bytes would
	// be silently ignored by the algorithm, so reject it instead.
	maxPasswordBytes = 72
)

// PasswordHasher wraps bcrypt: salted, adaptive, self-describing hashes.
type PasswordHasher struct{}

func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{}
}

// Hash generates a fresh salted hash of plaintext. Two calls on the same
// input produce different hashes. Empty input and input beyond bcrypt's
// 72-byte limit are rejected.
func (PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrEmptyPassword
	}
	if len(plaintext) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify recomputes with the salt and cost embedded in stored and compares
// in constant time. A structurally malformed stored hash yields false, not
// an error, so callers cannot distinguish "bad hash" from "wrong password".
func (PasswordHasher) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
