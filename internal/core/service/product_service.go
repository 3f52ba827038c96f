package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/demostore/catalog-api/internal/core/domain"
	"github.com/demostore/catalog-api/internal/core/ports"
)

// ProductService implements the catalog use-cases over a ProductRepository.
// It holds no cache: the store owns every record.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger, now: time.Now}
}

// List returns every product, newest first. No pagination: result size is
// unbounded.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}
	return products, nil
}

// Create inserts a new product. Status defaults to "active"; both timestamps
// are set to the same instant.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	status := domain.ProductStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusActive
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	now := s.now().UTC()
	product := &domain.Product{
		Name:      input.Name,
		Price:     input.Price,
		Stock:     input.Stock,
		Category:  input.Category,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update applies a partial update: only non-nil fields change, but updatedAt
// is refreshed even when the body carried nothing else.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	upd := ports.ProductUpdate{
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		Category: input.Category,
	}
	if input.Status != nil {
		status := domain.ProductStatus(*input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		upd.Status = &status
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		}
		return nil, err
	}
	return updated, nil
}

// UpdateStatus is Update restricted to the status field.
func (s *ProductService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Product, error) {
	st := domain.ProductStatus(status)
	if !st.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.Update(ctx, id, ports.ProductUpdate{Status: &st})
	if err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product status")
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		}
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
