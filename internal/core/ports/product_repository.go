package ports

import (
	"context"

	"github.com/demostore/catalog-api/internal/core/domain"
)

// ProductUpdate carries a partial update: nil fields are left untouched.
// UpdatedAt is always refreshed by the repository regardless of which
// fields are set.
type ProductUpdate struct {
	Name     *string
	Price    *float64
	Stock    *int
	Category *string
	Status   *domain.ProductStatus
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns all products ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Product, error)
	// Update applies a partial update and returns the post-update document.
	// Returns domain.ErrProductNotFound when id does not exist.
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	// Delete removes the product. Returns domain.ErrProductNotFound when id
	// does not exist.
	Delete(ctx context.Context, id string) error
}
