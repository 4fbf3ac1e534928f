package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/api-productos/products-api/internal/api/middleware"
	"github.com/api-productos/products-api/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Authenticate middleware and
// fails closed when it is absent: an empty user id means the middleware never
// ran on this route.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
	}
	return userID, role, nil
}
