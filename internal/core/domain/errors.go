package domain

import "errors"

// Sentinel errors shared across services. The API layer maps these to HTTP
// status codes in a single place (internal/api/error_handler.go).
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks malformed input. Wrap it with the concrete
	// reason: fmt.Errorf("%w: password too short", ErrValidation).
	ErrValidation = errors.New("invalid input")

	ErrEmailTaken      = errors.New("email already registered")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)
