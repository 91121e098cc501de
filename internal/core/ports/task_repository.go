package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByProjects returns tasks belonging to any of the given projects.
	// A nil slice returns all tasks (admin listing).
	ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// DeleteByProject removes every task under the project and reports how
	// many were deleted. Used by the project delete cascade.
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
