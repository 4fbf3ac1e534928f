package ports

import (
	"context"

	"github.com/api-productos/products-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Create returns domain.ErrEmailTaken on a unique-constraint conflict; the
// lookups return domain.ErrUserNotFound on a miss.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
