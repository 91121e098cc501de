package handler

import "time"

type createProjectRequest struct {
	Title        string     `json:"title"        validate:"required"`
	Description  string     `json:"description"  validate:"required"`
	StartDate    time.Time  `json:"start_date"   validate:"required"`
	EndDate      *time.Time `json:"end_date"`
	AppLink      string     `json:"app_link"`
	Status       string     `json:"status"       validate:"omitempty,oneof=not_started ongoing paused completed"`
	Technologies []string   `json:"technologies"`
	Budget       float64    `json:"budget"       validate:"gte=0"`
}

type updateProjectRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	AppLink      *string    `json:"app_link"`
	Status       *string    `json:"status" validate:"omitempty,oneof=not_started ongoing paused completed"`
	Technologies *[]string  `json:"technologies"`
	Budget       *float64   `json:"budget" validate:"omitempty,gte=0"`
}

// projectResponse is the transport view of a project. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type projectResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	OwnerID      string     `json:"owner_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	AppLink      string     `json:"app_link,omitempty"`
	Status       string     `json:"status"`
	Technologies []string   `json:"technologies"`
	Budget       float64    `json:"budget"`
	TaskIDs      []string   `json:"task_ids"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type deleteProjectResponse struct {
	Message      string `json:"message"`
	TasksDeleted int64  `json:"tasks_deleted"`
}
