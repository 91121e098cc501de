package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

const (
	// ClaimsKey is the echo context key under which decoded claims are stored.
	ClaimsKey = "claims"
	// TokenMetaKey holds the token metadata needed for logout revocation.
	TokenMetaKey = "token_meta"
)

// Auth decodes the bearer token and injects the claims snapshot into the
// request context. The token service's distinct failure kinds (invalid,
// expired, revoked) all collapse to a single 401 here. Anything else out
// of Decode, such as an unreachable revocation store, is not the caller's
// fault and propagates to the central error handler as a 500.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, meta, err := tokens.Decode(c.Request().Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenInvalid),
					errors.Is(err, domain.ErrTokenExpired),
					errors.Is(err, domain.ErrTokenRevoked):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(ClaimsKey, claims)
			c.Set(TokenMetaKey, meta)

			return next(c)
		}
	}
}

// ClaimsFrom extracts the claims injected by Auth. The boolean is false
// when the middleware did not run or the context holds no principal.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(domain.Claims)
	if !ok || claims.UserID == "" {
		return domain.Claims{}, false
	}
	return claims, true
}

// TokenMetaFrom extracts the token metadata injected by Auth.
func TokenMetaFrom(c echo.Context) (ports.TokenMetadata, bool) {
	meta, ok := c.Get(TokenMetaKey).(ports.TokenMetadata)
	return meta, ok
}
