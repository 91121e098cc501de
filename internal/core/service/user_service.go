package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// UserService implements profile operations and admin user listing.
type UserService struct {
	users  ports.UserRepository
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: NewPasswordHasher(), log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile applies a partial update. A new password is re-hashed
// before storage. Concurrent updates of the same user are last-write-wins;
// there is no version check.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	update := ports.UserUpdate{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Gender:         in.Gender,
		ContactNo:      in.ContactNo,
		ProfilePicture: in.ProfilePicture,
	}

	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	// The display name tracks first/last name changes.
	if in.FirstName != nil || in.LastName != nil {
		current, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		first, last := current.FirstName, current.LastName
		if in.FirstName != nil {
			first = *in.FirstName
		}
		if in.LastName != nil {
			last = *in.LastName
		}
		name := first + " " + last
		update.Name = &name
	}

	updated, err := s.users.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Bool("password_changed", in.Password != nil).Msg("profile updated")
	return updated, nil
}

// ListUsers returns every identity. Admin gating happens at the transport
// layer; hashes are excluded by the User JSON contract.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
