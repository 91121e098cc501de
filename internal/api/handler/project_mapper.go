package handler

import (
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

func toCreateProjectInput(req createProjectRequest) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AppLink:      req.AppLink,
		Status:       req.Status,
		Technologies: req.Technologies,
		Budget:       req.Budget,
	}
}

func toUpdateProjectInput(req updateProjectRequest) ports.UpdateProjectInput {
	return ports.UpdateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AppLink:      req.AppLink,
		Status:       req.Status,
		Technologies: req.Technologies,
		Budget:       req.Budget,
	}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		OwnerID:      p.OwnerID,
		StartDate:    p.StartDate.UTC(),
		EndDate:      p.EndDate,
		AppLink:      p.AppLink,
		Status:       string(p.Status),
		Technologies: p.Technologies,
		Budget:       p.Budget,
		TaskIDs:      p.TaskIDs,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}
}

func toProjectListResponse(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	return out
}
