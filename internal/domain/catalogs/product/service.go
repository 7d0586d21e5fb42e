package product

import (
	"context"

	"khata/internal/core/id"
	"khata/pkg/logger"
)

// Service provides business logic for the Product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists the product.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info(ctx, "product created", "id", p.ID, "name", p.Name)
	return nil
}

// Update validates and persists changes to an existing product.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

// GetByID retrieves a product.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// Delete removes a product. Past sales keep their snapshots.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, productID)
}

// List returns products matching the optional search string.
func (s *Service) List(ctx context.Context, search string) ([]*Product, error) {
	return s.repo.List(ctx, search)
}
