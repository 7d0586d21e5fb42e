package partner

import (
	"context"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/pkg/logger"
)

// Service provides business logic for the Partner catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Partner service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, enforces phone uniqueness, and persists the partner.
func (s *Service) Create(ctx context.Context, p *Partner) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.phoneExists(ctx, p.Phone, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("partner", "phone", p.Phone)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info(ctx, "partner created", "id", p.ID, "name", p.Name)
	return nil
}

// Update validates and persists changes to an existing partner.
func (s *Service) Update(ctx context.Context, p *Partner) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.phoneExists(ctx, p.Phone, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("partner", "phone", p.Phone)
	}
	return s.repo.Update(ctx, p)
}

// GetByID retrieves a partner.
func (s *Service) GetByID(ctx context.Context, partnerID id.ID) (*Partner, error) {
	return s.repo.GetByID(ctx, partnerID)
}

// Delete removes a partner and, via cascade, its ledger history.
func (s *Service) Delete(ctx context.Context, partnerID id.ID) error {
	if _, err := s.repo.GetByID(ctx, partnerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, partnerID)
}

// List returns partners matching the optional search string.
func (s *Service) List(ctx context.Context, search string) ([]*Partner, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) phoneExists(ctx context.Context, phone string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
