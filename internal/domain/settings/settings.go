// Package settings holds the single-row shop display settings.
package settings

import (
	"context"
	"strings"

	"khata/internal/core/apperror"
)

// Settings is the shop's display configuration. Exactly one row exists;
// it is seeded on schema rebuild and only ever updated.
type Settings struct {
	ShopName string  `db:"shop_name" json:"shopName"`
	Address  *string `db:"address" json:"address,omitempty"`
	Phone    *string `db:"phone" json:"phone,omitempty"`
	LogoPath *string `db:"logo_path" json:"-"`
}

// Repository defines the interface for settings persistence.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}

// Service provides settings logic.
type Service struct {
	repo Repository
}

// NewService creates a new settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the shop settings.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

// Update validates and stores the shop settings. The logo path is
// managed by the logo upload endpoint, not through this call.
func (s *Service) Update(ctx context.Context, in *Settings) error {
	if strings.TrimSpace(in.ShopName) == "" {
		return apperror.NewValidation("shop name is required").
			WithDetail("field", "shopName")
	}
	current, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	in.LogoPath = current.LogoPath
	return s.repo.Update(ctx, in)
}

// SetLogoPath records where the uploaded logo file lives.
func (s *Service) SetLogoPath(ctx context.Context, path string) error {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	current.LogoPath = &path
	return s.repo.Update(ctx, current)
}

// LogoPath returns the stored logo path, or empty when none is set.
func (s *Service) LogoPath(ctx context.Context) (string, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	if current.LogoPath == nil {
		return "", nil
	}
	return *current.LogoPath, nil
}
