package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/api-productos/products-api/internal/core/domain"
	"github.com/api-productos/products-api/internal/core/ports"
)

// ProductRepository implements ports.ProductRepository on PostgreSQL.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

// FindAll applies only the filters that were provided and orders newest first.
func (r *ProductRepository) FindAll(ctx context.Context, filters ports.ProductFilters) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}

	var products []domain.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// Save writes the full row back, including fields cleared to NULL or false.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
