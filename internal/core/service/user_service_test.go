package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user, err := repo.Create(context.Background(), &domain.User{
		Email:        "frank@example.com",
		PasswordHash: "$2a$12$existinghash",
		Name:         "Frank Ocean",
		FirstName:    "Frank",
		LastName:     "Ocean",
		Role:         domain.RoleStandard,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_GetProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	user, err := svc.GetProfile(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if user.Email != "frank@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetProfile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	gender := "male"
	contact := "555-0100"
	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, ports.UpdateProfileInput{
		Gender:    &gender,
		ContactNo: &contact,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Gender != "male" || updated.ContactNo != "555-0100" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.FirstName != "Frank" || updated.Name != "Frank Ocean" {
		t.Fatalf("untouched fields must stay unchanged: %+v", updated)
	}
}

func TestUserService_UpdateProfile_RecomputesDisplayName(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	last := "Rivers"
	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, ports.UpdateProfileInput{
		LastName: &last,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Frank Rivers" {
		t.Fatalf("display name should track the name parts, got %q", updated.Name)
	}
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	password := "brand-new-pass"
	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, ports.UpdateProfileInput{
		Password: &password,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.PasswordHash == "brand-new-pass" {
		t.Fatalf("password stored in plaintext")
	}
	if updated.PasswordHash == seeded.PasswordHash {
		t.Fatalf("hash should change when the password changes")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("brand-new-pass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_UpdateProfile_EmptyPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	empty := ""
	if _, err := svc.UpdateProfile(context.Background(), seeded.ID, ports.UpdateProfileInput{
		Password: &empty,
	}); err != domain.ErrEmptyPassword {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestUserService_UpdateProfile_OverlongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo)

	overlong := strings.Repeat("a", 80)
	if _, err := svc.UpdateProfile(context.Background(), seeded.ID, ports.UpdateProfileInput{
		Password: &overlong,
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for password beyond 72 bytes, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}
