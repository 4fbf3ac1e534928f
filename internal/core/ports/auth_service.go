package ports

import (
	"context"

	"github.com/api-productos/products-api/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service. Role is
// optional and defaults to domain.RoleUser.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
