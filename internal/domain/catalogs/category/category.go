// Package category provides the product Category catalog.
package category

import (
	"context"
	"strings"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
	"khata/internal/core/id"
)

// Category groups products for listings and reports.
type Category struct {
	entity.Catalog

	// Name is the display name (unique)
	Name string `db:"name" json:"name"`
}

// New creates a new Category.
func New(name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(),
		Name:    name,
	}
}

// Validate implements entity.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Repository defines the interface for Category persistence.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, categoryID id.ID) (*Category, error)
	Delete(ctx context.Context, categoryID id.ID) error
	List(ctx context.Context) ([]*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
}

// Service provides business logic for the Category catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, enforces name uniqueness, and persists the category.
func (s *Service) Create(ctx context.Context, c *Category) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	existing, err := s.repo.FindByName(ctx, c.Name)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		return apperror.NewDuplicate("category", "name", c.Name)
	}
	return s.repo.Create(ctx, c)
}

// Delete removes a category. Products keep a null category reference.
func (s *Service) Delete(ctx context.Context, categoryID id.ID) error {
	if _, err := s.repo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, categoryID)
}

// List returns all categories.
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}
