// Package phone provides the Phone catalog: serialized, status-tracked
// sellable units identified by hardware IMEI.
package phone

import (
	"context"
	"strings"
	"time"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
	"khata/internal/core/id"
	"khata/internal/core/types"
)

// Status is the lifecycle state of a serialized unit.
type Status string

const (
	StatusInStock Status = "in stock"
	StatusSold    Status = "sold"
)

// Phone is a single serialized unit. Quantity is implicitly 1; only a
// whole-unit sale is permitted.
type Phone struct {
	entity.Catalog

	// Brand is the manufacturer name
	Brand string `db:"brand" json:"brand"`

	// Model is the device model name
	Model string `db:"model" json:"model"`

	// IMEI is the hardware serial (unique)
	IMEI string `db:"imei" json:"imei"`

	// SupplierID references the partner this unit was bought from (optional)
	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`

	// PurchasePrice is the unit cost (used by profit reports)
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// SalePrice is the unit sale price
	SalePrice types.Money `db:"sale_price" json:"salePrice"`

	// Status is the lifecycle state: in stock -> sold
	Status Status `db:"status" json:"status"`

	// SoldAt is set when the unit is sold
	SoldAt *time.Time `db:"sold_at" json:"soldAt,omitempty"`
}

// New creates a new Phone in stock.
func New(brand, model, imei string, salePrice types.Money) *Phone {
	return &Phone{
		Catalog:   entity.NewCatalog(),
		Brand:     brand,
		Model:     model,
		IMEI:      imei,
		SalePrice: salePrice,
		Status:    StatusInStock,
	}
}

// DisplayName returns "Brand Model" for sale descriptions.
func (p *Phone) DisplayName() string {
	return strings.TrimSpace(p.Brand + " " + p.Model)
}

// Validate implements entity.Validatable.
func (p *Phone) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Brand) == "" {
		return apperror.NewValidation("brand is required").
			WithDetail("field", "brand")
	}
	if strings.TrimSpace(p.Model) == "" {
		return apperror.NewValidation("model is required").
			WithDetail("field", "model")
	}
	if strings.TrimSpace(p.IMEI) == "" {
		return apperror.NewValidation("imei is required").
			WithDetail("field", "imei")
	}
	if p.Status != StatusInStock && p.Status != StatusSold {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}
	if p.PurchasePrice.IsNegative() || p.SalePrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative").
			WithDetail("field", "price")
	}
	return nil
}
