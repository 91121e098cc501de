package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and runs
// the authenticated-principal guard before any service call. An empty
// principal means the middleware did not run for this route; reject with
// 401 rather than passing a zero Claims into a service.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if _, err := domain.RequireAuthenticated(&claims); err != nil {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
