package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByOwner returns the projects owned by ownerID. An empty ownerID
	// returns all projects (admin listing).
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	// AddTaskRef / RemoveTaskRef maintain the project's task id list.
	AddTaskRef(ctx context.Context, projectID, taskID string) error
	RemoveTaskRef(ctx context.Context, projectID, taskID string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error)
}
