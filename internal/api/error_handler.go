package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/api-productos/products-api/internal/api/handler"
	"github.com/api-productos/products-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes via errors.Is, so status
//     selection never depends on message text.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the shared envelope: {"success": false, "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.Response{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Validation and duplicates → 400.
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, err.Error()

	// Authentication failures → 401.
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrMissingToken),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()

	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, err.Error()

	// Profile lookup failures surface as 500, keeping the message.
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusInternalServerError, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor"
}
