package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/demostore/catalog-api/internal/core/domain"
	"github.com/demostore/catalog-api/internal/core/ports"
)

// stubProductRepo is an in-memory ProductRepository mirroring the partial
// update semantics of the real store.
type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
	now      func() time.Time
	failWith error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[string]*domain.Product),
		now:      time.Now,
	}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.nextID++
	clone := *p
	clone.ID = string(rune('a' + r.nextID - 1))
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	p.UpdatedAt = r.now().UTC()
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func TestProductService_Create_Defaults(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "Widget",
		Price:    9.99,
		Stock:    10,
		Category: "tools",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if created.Status != domain.StatusActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestProductService_Create_ExplicitStatus(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "Widget",
		Price:    1,
		Stock:    1,
		Category: "tools",
		Status:   "inactive",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.StatusInactive {
		t.Fatalf("expected inactive, got %q", created.Status)
	}
}

func TestProductService_Create_InvalidStatus(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Price: 1, Stock: 1, Category: "tools", Status: "discontinued",
	})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(repo.products) != 0 {
		t.Fatalf("store should not be touched on invalid status")
	}
}

func TestProductService_Update_Partial(t *testing.T) {
	repo := newStubProductRepo()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }
	svc := NewProductService(repo, zerolog.Nop())
	svc.now = func() time.Time { return repo.now() }

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Price: 9.99, Stock: 10, Category: "tools",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	repo.now = func() time.Time { return base.Add(time.Minute) }
	price := 5.0
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Price != 5.0 {
		t.Fatalf("expected price 5.0, got %v", updated.Price)
	}
	if updated.Name != "Widget" || updated.Stock != 10 || updated.Category != "tools" || updated.Status != domain.StatusActive {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updatedAt to advance, got %v / %v", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	name := "x"
	_, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: &name})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_InvalidStatus(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	bad := "retired"
	_, err := svc.Update(context.Background(), "any", ports.UpdateProductInput{Status: &bad})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProductService_UpdateStatus(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Price: 1, Stock: 1, Category: "tools",
	})

	updated, err := svc.UpdateStatus(context.Background(), created.ID, "archived")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != domain.StatusArchived {
		t.Fatalf("expected archived, got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, "bogus"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProductService_Delete_Twice(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Price: 1, Stock: 1, Category: "tools",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("second delete: expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_List_StoreFailure(t *testing.T) {
	repo := newStubProductRepo()
	repo.failWith = errors.New("connection reset")
	svc := NewProductService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected store failure to propagate")
	}
}
