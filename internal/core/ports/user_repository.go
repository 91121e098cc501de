package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// UserUpdate carries the optional fields of a profile update. Nil means
// "leave unchanged". PasswordHash, when set, has already been hashed by the
// service layer.
type UserUpdate struct {
	FirstName      *string
	LastName       *string
	Name           *string
	Gender         *string
	ContactNo      *string
	ProfilePicture *string
	PasswordHash   *string
}

// UserRepository defines persistence for identity records. Email lookups
// are by the normalized (lowercased) address; uniqueness is enforced by a
// unique index on that field.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies a partial update. Last write wins: there is no
	// version check on concurrent updates of the same user.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
