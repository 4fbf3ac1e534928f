package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/api-productos/products-api/internal/core/domain"
)

// Authorize gates access by role membership. It must run after Authenticate:
// a missing role means the caller never authenticated (401), a present but
// disallowed role is forbidden (403). An empty allow-list always forbids.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
