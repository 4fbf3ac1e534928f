package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/api-productos/products-api/internal/auth"
	"github.com/api-productos/products-api/internal/core/domain"
)

// Context keys set by Authenticate and read by handlers and Authorize.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Authenticate verifies the bearer token and injects the caller's identity
// into the request context. It fails closed before any business logic runs.
// Expired and invalid tokens are logged with their distinct kind but surface
// the same generic unauthenticated message.
func Authenticate(codec *auth.TokenCodec, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := auth.ExtractTokenFromHeader(header)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			claims, err := codec.Verify(token)
			if err != nil {
				logger.Debug().
					Err(err).
					Str("path", c.Path()).
					Msg("token verification failed")
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
