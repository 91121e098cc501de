package domain

import "time"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectOngoing    ProjectStatus = "ongoing"
	ProjectPaused     ProjectStatus = "paused"
	ProjectCompleted  ProjectStatus = "completed"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectNotStarted, ProjectOngoing, ProjectPaused, ProjectCompleted:
		return true
	}
	return false
}

// Project is a unit of work owned by exactly one user. Only the owner (or
// an admin) may mutate the project or its tasks.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	OwnerID      string        `json:"owner_id"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	AppLink      string        `json:"app_link,omitempty"`
	Status       ProjectStatus `json:"status"`
	Technologies []string      `json:"technologies"`
	Budget       float64       `json:"budget"`
	TaskIDs      []string      `json:"task_ids"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
