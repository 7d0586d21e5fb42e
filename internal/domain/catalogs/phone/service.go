package phone

import (
	"context"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/pkg/logger"
)

// Service provides business logic for the Phone catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Phone service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, enforces IMEI uniqueness, and persists the phone.
func (s *Service) Create(ctx context.Context, p *Phone) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.imeiExists(ctx, p.IMEI, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("phone", "imei", p.IMEI)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info(ctx, "phone created", "id", p.ID, "imei", p.IMEI)
	return nil
}

// Update validates and persists changes to an existing phone.
func (s *Service) Update(ctx context.Context, p *Phone) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.imeiExists(ctx, p.IMEI, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("phone", "imei", p.IMEI)
	}
	return s.repo.Update(ctx, p)
}

// GetByID retrieves a phone.
func (s *Service) GetByID(ctx context.Context, phoneID id.ID) (*Phone, error) {
	return s.repo.GetByID(ctx, phoneID)
}

// Delete removes a phone. Past sales keep their snapshots.
func (s *Service) Delete(ctx context.Context, phoneID id.ID) error {
	if _, err := s.repo.GetByID(ctx, phoneID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, phoneID)
}

// List returns phones matching the optional search string.
func (s *Service) List(ctx context.Context, search string) ([]*Phone, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) imeiExists(ctx context.Context, imei string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByIMEI(ctx, imei)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
