// Package partner provides the Partner catalog.
// A partner is a supplier account: it owns a payable ledger.
package partner

import (
	"context"
	"strings"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
)

// Partner represents a supplier with a running payable ledger.
type Partner struct {
	entity.Catalog

	// Name is the contact person's name
	Name string `db:"name" json:"name"`

	// Phone is the contact number (unique)
	Phone string `db:"phone" json:"phone"`

	// Company is the supplier's business name (optional)
	Company *string `db:"company" json:"company,omitempty"`

	// Address is a free-form address (optional)
	Address *string `db:"address" json:"address,omitempty"`
}

// New creates a new Partner with required fields.
func New(name, phone string) *Partner {
	return &Partner{
		Catalog: entity.NewCatalog(),
		Name:    name,
		Phone:   phone,
	}
}

// Validate implements entity.Validatable.
func (p *Partner) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(p.Phone) == "" {
		return apperror.NewValidation("phone is required").
			WithDetail("field", "phone")
	}
	return nil
}
