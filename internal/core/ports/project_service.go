package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project. The owner
// is always the authenticated caller.
type CreateProjectInput struct {
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      *time.Time
	AppLink      string
	Status       string
	Technologies []string
	Budget       float64
}

// UpdateProjectInput carries optional fields for a partial project update.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	AppLink      *string
	Status       *string
	Technologies *[]string
	Budget       *float64
}

// DeleteProjectResult reports what a cascade delete removed.
type DeleteProjectResult struct {
	TasksDeleted int64
}

// ProjectService defines use-case operations for projects. Mutations are
// authorized against the project owner (admins override).
type ProjectService interface {
	Create(ctx context.Context, claims domain.Claims, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, claims domain.Claims) ([]*domain.Project, error)
	Update(ctx context.Context, claims domain.Claims, id string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, claims domain.Claims, id string) (*DeleteProjectResult, error)
}
