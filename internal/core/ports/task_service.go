package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task under a project.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	AssignedTo  string
	Status      string
	DueDate     *time.Time
}

// UpdateTaskInput carries optional fields for a partial task update.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssignedTo  *string
	Status      *string
	DueDate     *time.Time
}

// TaskService defines use-case operations for tasks. A task has no owner of
// its own: every mutation is authorized against the parent project's owner.
type TaskService interface {
	Create(ctx context.Context, claims domain.Claims, in CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, claims domain.Claims) ([]*domain.Task, error)
	Update(ctx context.Context, claims domain.Claims, id string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
}
