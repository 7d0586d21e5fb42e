// Package product provides the Product catalog: bulk, quantity-tracked
// sellable items.
package product

import (
	"context"
	"strings"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
	"khata/internal/core/id"
	"khata/internal/core/types"
)

// Product is a bulk sellable item. Identity is not per-unit: stock is a
// counter decremented by sales.
type Product struct {
	entity.Catalog

	// Name is the display name
	Name string `db:"name" json:"name"`

	// CategoryID references the category catalog (optional)
	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// SupplierID references the partner this product is bought from (optional)
	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`

	// PurchasePrice is the per-unit cost (used by profit reports)
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// SellingPrice is the per-unit sale price
	SellingPrice types.Money `db:"selling_price" json:"sellingPrice"`

	// StockQuantity is the units currently on hand
	StockQuantity int `db:"stock_quantity" json:"stockQuantity"`

	// SoldQuantity is the cumulative units sold
	SoldQuantity int `db:"sold_quantity" json:"soldQuantity"`
}

// New creates a new Product with required fields.
func New(name string, sellingPrice types.Money, stock int) *Product {
	return &Product{
		Catalog:       entity.NewCatalog(),
		Name:          name,
		SellingPrice:  sellingPrice,
		StockQuantity: stock,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.StockQuantity < 0 {
		return apperror.NewValidation("stock quantity cannot be negative").
			WithDetail("field", "stockQuantity")
	}
	if p.PurchasePrice.IsNegative() || p.SellingPrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative").
			WithDetail("field", "price")
	}
	return nil
}
