package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// TaskService implements task CRUD. All mutations are authorized against
// the parent project's owner.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, log: log}
}

// authorizeForProject loads the parent project and runs the ownership
// check against it.
func (s *TaskService) authorizeForProject(ctx context.Context, claims domain.Claims, projectID string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := claims.RequireAccess(project.OwnerID); err != nil {
		return nil, err
	}
	return project, nil
}

// Create stores a new task under an existing project and records the task
// reference on the project.
func (s *TaskService) Create(ctx context.Context, claims domain.Claims, in ports.CreateTaskInput) (*domain.Task, error) {
	if _, err := domain.RequireAuthenticated(&claims); err != nil {
		return nil, err
	}

	if _, err := s.authorizeForProject(ctx, claims, in.ProjectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, fmt.Errorf("%w: project does not exist", domain.ErrValidation)
		}
		return nil, err
	}

	status := domain.TaskStatus(in.Status)
	if in.Status == "" {
		status = domain.TaskTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown task status %q", domain.ErrValidation, in.Status)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		AssignedTo:  in.AssignedTo,
		Status:      status,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	if err := s.projects.AddTaskRef(ctx, in.ProjectID, created.ID); err != nil {
		s.log.Warn().Err(err).Str("task_id", created.ID).Msg("failed to record task reference on project")
	}

	s.log.Info().Str("task_id", created.ID).Str("project_id", in.ProjectID).Msg("task created")
	return created, nil
}

// Get returns a task by id.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// List returns tasks belonging to the caller's projects, or all tasks for
// an admin.
func (s *TaskService) List(ctx context.Context, claims domain.Claims) ([]*domain.Task, error) {
	if _, err := domain.RequireAuthenticated(&claims); err != nil {
		return nil, err
	}
	if claims.IsAdmin() {
		return s.tasks.ListByProjects(ctx, nil)
	}

	projects, err := s.projects.ListByOwner(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	projectIDs := make([]string, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}
	return s.tasks.ListByProjects(ctx, projectIDs)
}

// Update applies a partial update after the transitive ownership check.
func (s *TaskService) Update(ctx context.Context, claims domain.Claims, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeForProject(ctx, claims, task.ProjectID); err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
	}
	if in.Status != nil {
		status := domain.TaskStatus(*in.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown task status %q", domain.ErrValidation, *in.Status)
		}
		task.Status = status
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	return s.tasks.Update(ctx, task)
}

// Delete removes a task and pulls its reference from the parent project.
func (s *TaskService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.authorizeForProject(ctx, claims, task.ProjectID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.projects.RemoveTaskRef(ctx, task.ProjectID, id); err != nil {
		s.log.Warn().Err(err).Str("task_id", id).Msg("failed to remove task reference from project")
	}

	s.log.Info().Str("task_id", id).Str("requested_by", claims.UserID).Msg("task deleted")
	return nil
}
