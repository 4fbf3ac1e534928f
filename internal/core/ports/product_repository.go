package ports

import (
	"context"

	"github.com/api-productos/products-api/internal/core/domain"
)

// ProductFilters narrows FindAll results. Nil/zero fields are omitted from the
// query, not defaulted.
type ProductFilters struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	IsActive *bool
	UserID   string
}

// ProductRepository defines the persistence interface for products. FindByID
// returns domain.ErrProductNotFound on a miss; FindAll orders by creation
// time, newest first.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context, filters ProductFilters) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
