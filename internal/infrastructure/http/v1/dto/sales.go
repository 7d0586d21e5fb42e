package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest records one sale transaction.
// saleDate is a Bikram Sambat date (YYYY-MM-DD); empty means today.
type RecordSaleRequest struct {
	ItemKind   string          `json:"itemKind" binding:"required,oneof=product phone"`
	ItemID     string          `json:"itemId" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	Discount   decimal.Decimal `json:"discount"`
	CustomerID *string         `json:"customerId"`
	SaleDate   string          `json:"saleDate"`
	Notes      *string         `json:"notes"`
}

// SaleRangeQuery filters sale listings by Bikram Sambat date range.
type SaleRangeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}
