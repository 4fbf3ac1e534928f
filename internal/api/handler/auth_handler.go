package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/api-productos/products-api/internal/api/metrics"
	"github.com/api-productos/products-api/internal/api/middleware"
	"github.com/api-productos/products-api/internal/core/domain"
	"github.com/api-productos/products-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns its first token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Usuario registrado exitosamente",
		Data:    authData{Token: token, User: user},
	})
}

// Login authenticates a user and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  Response
// @Failure      401   {object}  Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.UserLoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.UserLoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Login exitoso",
		Data:    authData{Token: token, User: user},
	})
}

// Profile returns the authenticated user's account.
//
// @Summary      Get current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      500  {object}  Response
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: user})
}

func loginResult(err error) string {
	switch err {
	case domain.ErrUserInactive:
		return "inactive"
	case domain.ErrInvalidCredentials:
		return "invalid_credentials"
	}
	return "error"
}
