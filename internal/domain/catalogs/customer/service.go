package customer

import (
	"context"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/pkg/logger"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, enforces phone uniqueness, and persists the customer.
func (s *Service) Create(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.phoneExists(ctx, c.Phone, c.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("customer", "phone", c.Phone)
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}
	logger.Info(ctx, "customer created", "id", c.ID, "name", c.Name)
	return nil
}

// Update validates and persists changes to an existing customer.
func (s *Service) Update(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.phoneExists(ctx, c.Phone, c.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("customer", "phone", c.Phone)
	}
	return s.repo.Update(ctx, c)
}

// GetByID retrieves a customer.
func (s *Service) GetByID(ctx context.Context, customerID id.ID) (*Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// Delete removes a customer and, via cascade, its ledger history.
func (s *Service) Delete(ctx context.Context, customerID id.ID) error {
	if _, err := s.repo.GetByID(ctx, customerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, customerID)
}

// List returns customers matching the optional search string.
func (s *Service) List(ctx context.Context, search string) ([]*Customer, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) phoneExists(ctx context.Context, phone string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		// Not found is OK; other errors must be propagated.
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
