package dto

import "github.com/shopspring/decimal"

// CustomerRequest creates or updates a customer.
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// PartnerRequest creates or updates a partner.
type PartnerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Company *string `json:"company"`
	Address *string `json:"address"`
}

// ProductRequest creates or updates a product.
type ProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	CategoryID    *string         `json:"categoryId"`
	SupplierID    *string         `json:"supplierId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQuantity int             `json:"stockQuantity" binding:"min=0"`
}

// PhoneRequest creates or updates a phone unit.
type PhoneRequest struct {
	Brand         string          `json:"brand" binding:"required"`
	Model         string          `json:"model" binding:"required"`
	IMEI          string          `json:"imei" binding:"required"`
	SupplierID    *string         `json:"supplierId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
}

// CategoryRequest creates a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
