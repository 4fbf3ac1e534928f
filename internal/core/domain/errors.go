package domain

import "errors"

// Sentinel errors carried from the service layer to the HTTP boundary, where
// they are mapped to status codes. Messages are user-facing.
var (
	// Validation.
	ErrInvalidEmail  = errors.New("Formato de email inválido")
	ErrWeakPassword  = errors.New("La contraseña debe tener al menos 6 caracteres")
	ErrInvalidRole   = errors.New("Rol inválido")
	ErrNegativePrice = errors.New("El precio no puede ser negativo")
	ErrNegativeStock = errors.New("El stock no puede ser negativo")

	// Duplicate.
	ErrEmailTaken = errors.New("El email ya está registrado")

	// Authentication. Login with an unknown email and login with a wrong
	// password both return ErrInvalidCredentials so callers cannot probe
	// which emails are registered. An inactive account is distinguishable
	// because it is not a credential-guessing vector.
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	ErrUserInactive       = errors.New("Usuario inactivo. Contacte al administrador")
	ErrMissingToken       = errors.New("Token de autenticación no proporcionado")
	ErrTokenExpired       = errors.New("Token expirado")
	ErrTokenInvalid       = errors.New("Token inválido")
	ErrNotAuthenticated   = errors.New("No autenticado")

	// Authorization.
	ErrForbidden = errors.New("No tienes permisos para realizar esta acción")

	// Not found.
	ErrUserNotFound    = errors.New("Usuario no encontrado")
	ErrProductNotFound = errors.New("Producto no encontrado")
)
