package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/api-productos/products-api/internal/core/domain"
	"github.com/api-productos/products-api/internal/core/ports"
)

// ProductService implements product CRUD with ownership-based authorization.
// The existence/ownership check and the subsequent write are separate
// statements; under concurrent requests the row can change in between. That
// race is accepted for this service.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create validates price and stock and persists the product with the caller
// recorded as owner.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput, ownerID string) (*domain.Product, error) {
	if input.Price < 0 {
		return nil, domain.ErrNegativePrice
	}
	if input.Stock < 0 {
		return nil, domain.ErrNegativeStock
	}

	product, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		Image:       input.Image,
		IsActive:    true,
		UserID:      ownerID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("owner_id", ownerID).Msg("product created")
	return product, nil
}

// List returns products matching the given filters, newest first.
func (s *ProductService) List(ctx context.Context, filters ports.ProductFilters) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, filters)
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Only the owner or an administrator may
// update; provided price/stock are validated exactly as on create. Nil fields
// are left untouched; Description and Image are cleared when provided as null
// (the Set flag with a nil pointer) or as the empty string, while Name and
// Category ignore empty strings.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput, callerID, callerRole string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.OwnedOrManagedBy(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}

	if input.Price != nil && *input.Price < 0 {
		return nil, domain.ErrNegativePrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, domain.ErrNegativeStock
	}

	if input.Name != nil && *input.Name != "" {
		product.Name = *input.Name
	}
	if input.DescriptionSet || input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != nil && *input.Category != "" {
		product.Category = *input.Category
	}
	if input.ImageSet || input.Image != nil {
		product.Image = input.Image
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	updated, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("caller_id", callerID).Msg("product updated")
	return updated, nil
}

// SoftDelete clears the active flag, keeping the row. Same ownership gate as
// Update.
func (s *ProductService) SoftDelete(ctx context.Context, id, callerID, callerRole string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !product.OwnedOrManagedBy(callerID, callerRole) {
		return domain.ErrForbidden
	}

	product.IsActive = false
	if _, err := s.repo.Save(ctx, product); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Str("caller_id", callerID).Msg("product soft-deleted")
	return nil
}

// HardDelete removes the row permanently. There is no ownership check here;
// the administrator-only role gate at the route boundary enforces access.
func (s *ProductService) HardDelete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Warn().Str("product_id", id).Msg("product hard-deleted")
	return nil
}
