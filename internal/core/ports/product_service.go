package ports

import (
	"context"

	"github.com/api-productos/products-api/internal/core/domain"
)

// CreateProductInput carries a creation request. Description and Image are
// nullable on the product itself.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       float64
	Stock       int
	Category    string
	Image       *string
}

// UpdateProductInput is a partial update: nil fields are left untouched.
// Description and Image are nullable, so an explicit JSON null must be applied
// rather than skipped; DescriptionSet/ImageSet mark them as provided, letting a
// nil pointer clear the column. A non-nil pointer to the empty string clears
// too. Name and Category ignore empty strings.
type UpdateProductInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Price          *float64
	Stock          *int
	Category       *string
	Image          *string
	ImageSet       bool
	IsActive       *bool
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput, ownerID string) (*domain.Product, error)
	List(ctx context.Context, filters ProductFilters) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput, callerID, callerRole string) (*domain.Product, error)
	SoftDelete(ctx context.Context, id, callerID, callerRole string) error
	HardDelete(ctx context.Context, id string) error
}
