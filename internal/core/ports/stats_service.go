package ports

import "context"

// AdminStats is the platform-wide dashboard summary.
type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalProjects  int64 `json:"total_projects"`
	TotalTasks     int64 `json:"total_tasks"`
	ActiveProjects int64 `json:"active_projects"`
}

// StatsService aggregates counts for the admin dashboard.
type StatsService interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
}
