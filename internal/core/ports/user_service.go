package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// UpdateProfileInput carries the optional profile fields. Nil means "leave
// unchanged". Password is plaintext here; the service hashes it.
type UpdateProfileInput struct {
	FirstName      *string
	LastName       *string
	Gender         *string
	ContactNo      *string
	ProfilePicture *string
	Password       *string
}

// UserService exposes profile operations and admin user listing.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
