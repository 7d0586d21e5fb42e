package dto

import "github.com/shopspring/decimal"

// ManualEntryRequest posts a manual ledger entry against an account.
// Exactly one of debit/credit must be non-zero; entryDate is a
// Bikram Sambat date (YYYY-MM-DD).
type ManualEntryRequest struct {
	Description string          `json:"description" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	EntryDate   string          `json:"entryDate" binding:"required"`
}

// BalanceResponse carries an account's current running balance.
type BalanceResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}
