package ports

import (
	"context"

	"github.com/demostore/catalog-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product.
// Status is optional and defaults to "active".
type CreateProductInput struct {
	Name     string
	Price    float64
	Stock    int
	Category string
	Status   string
}

// UpdateProductInput carries a partial product update. Nil fields are not
// modified. Status, when present, must be a valid domain.ProductStatus.
type UpdateProductInput struct {
	Name     *string
	Price    *float64
	Stock    *int
	Category *string
	Status   *string
}

// ProductService defines the catalog use-cases.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
