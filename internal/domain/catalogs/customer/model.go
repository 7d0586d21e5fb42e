// Package customer provides the Customer catalog.
// A customer is an account: it owns a receivable ledger.
package customer

import (
	"context"
	"regexp"
	"strings"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Customer represents a buyer with a running receivable ledger.
type Customer struct {
	entity.Catalog

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Phone is the contact number (unique)
	Phone string `db:"phone" json:"phone"`

	// Email is the contact email (optional)
	Email *string `db:"email" json:"email,omitempty"`

	// Address is a free-form address (optional)
	Address *string `db:"address" json:"address,omitempty"`
}

// New creates a new Customer with required fields.
func New(name, phone string) *Customer {
	return &Customer{
		Catalog: entity.NewCatalog(),
		Name:    name,
		Phone:   phone,
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return apperror.NewValidation("phone is required").
			WithDetail("field", "phone")
	}
	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}
