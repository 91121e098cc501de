package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	stats ports.StatsService
}

func NewAdminHandler(stats ports.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Platform-wide counts for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
