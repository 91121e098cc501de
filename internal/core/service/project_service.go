package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// ProjectService implements project CRUD with ownership authorization.
type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	log      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, tasks ports.TaskRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, log: log}
}

// Create stores a new project owned by the caller.
func (s *ProjectService) Create(ctx context.Context, claims domain.Claims, in ports.CreateProjectInput) (*domain.Project, error) {
	if _, err := domain.RequireAuthenticated(&claims); err != nil {
		return nil, err
	}

	status := domain.ProjectStatus(in.Status)
	if in.Status == "" {
		status = domain.ProjectNotStarted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, in.Status)
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", domain.ErrValidation)
	}

	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:        in.Title,
		Description:  in.Description,
		OwnerID:      claims.UserID,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		AppLink:      in.AppLink,
		Status:       status,
		Technologies: technologies,
		Budget:       in.Budget,
		TaskIDs:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("owner_id", claims.UserID).Msg("project created")
	return created, nil
}

// Get returns a project by id. Reads are open to any authenticated user.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

// List returns the caller's projects, or all projects for an admin.
func (s *ProjectService) List(ctx context.Context, claims domain.Claims) ([]*domain.Project, error) {
	if _, err := domain.RequireAuthenticated(&claims); err != nil {
		return nil, err
	}
	ownerID := claims.UserID
	if claims.IsAdmin() {
		ownerID = ""
	}
	return s.projects.ListByOwner(ctx, ownerID)
}

// Update applies a partial update after the ownership check.
func (s *ProjectService) Update(ctx context.Context, claims domain.Claims, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := claims.RequireAccess(project.OwnerID); err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.StartDate != nil {
		project.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if in.AppLink != nil {
		project.AppLink = *in.AppLink
	}
	if in.Status != nil {
		status := domain.ProjectStatus(*in.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, *in.Status)
		}
		project.Status = status
	}
	if in.Technologies != nil {
		project.Technologies = *in.Technologies
	}
	if in.Budget != nil {
		project.Budget = *in.Budget
	}
	if project.EndDate != nil && project.EndDate.Before(project.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", domain.ErrValidation)
	}
	project.UpdatedAt = time.Now().UTC()

	return s.projects.Update(ctx, project)
}

// Delete removes a project and cascades to its tasks. The single ownership
// check on the project authorizes the whole cascade: task authorization is
// transitive from the parent project.
func (s *ProjectService) Delete(ctx context.Context, claims domain.Claims, id string) (*ports.DeleteProjectResult, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := claims.RequireAccess(project.OwnerID); err != nil {
		return nil, err
	}

	tasksDeleted, err := s.tasks.DeleteByProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cascade delete tasks: %w", err)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("project_id", id).
		Str("requested_by", claims.UserID).
		Int64("tasks_deleted", tasksDeleted).
		Msg("project deleted")

	return &ports.DeleteProjectResult{TasksDeleted: tasksDeleted}, nil
}
