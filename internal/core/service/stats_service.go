package service

import (
	"context"
	"fmt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// StatsService aggregates platform-wide counts for the admin dashboard.
type StatsService struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

func NewStatsService(users ports.UserRepository, projects ports.ProjectRepository, tasks ports.TaskRepository) *StatsService {
	return &StatsService{users: users, projects: projects, tasks: tasks}
}

func (s *StatsService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalProjects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	totalTasks, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	activeProjects, err := s.projects.CountByStatus(ctx, domain.ProjectOngoing)
	if err != nil {
		return nil, fmt.Errorf("count active projects: %w", err)
	}

	return &ports.AdminStats{
		TotalUsers:     totalUsers,
		TotalProjects:  totalProjects,
		TotalTasks:     totalTasks,
		ActiveProjects: activeProjects,
	}, nil
}
