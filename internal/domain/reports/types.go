// Package reports provides read-only aggregations over sale transactions
// and ledger entries. It performs no mutation and relies on the write
// path having left consistent data behind.
package reports

import (
	"time"

	"khata/internal/core/id"
	"khata/internal/core/types"
)

// DateRange is an inclusive Gregorian date range, already converted from
// the shop's local calendar by the caller-supplied converter.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ProfitSummary aggregates revenue against snapshotted purchase costs.
type ProfitSummary struct {
	Range        DateRange   `json:"range"`
	SaleCount    int         `json:"saleCount"`
	TotalRevenue types.Money `json:"totalRevenue"`
	TotalCost    types.Money `json:"totalCost"`
	Profit       types.Money `json:"profit"`
}

// AccountBalance is one row of a debtor or creditor listing.
type AccountBalance struct {
	AccountID id.ID       `db:"account_id" json:"accountId"`
	Name      string      `db:"name" json:"name"`
	Phone     string      `db:"phone" json:"phone"`
	Balance   types.Money `db:"balance" json:"balance"`
}

// AccountTotal is one row of a top-N listing.
type AccountTotal struct {
	AccountID id.ID       `db:"account_id" json:"accountId"`
	Name      string      `db:"name" json:"name"`
	Total     types.Money `db:"total" json:"total"`
}

// Dashboard carries the landing-page KPIs.
type Dashboard struct {
	CustomerCount    int         `json:"customerCount"`
	PartnerCount     int         `json:"partnerCount"`
	ProductCount     int         `json:"productCount"`
	PhonesInStock    int         `json:"phonesInStock"`
	StockValue       types.Money `json:"stockValue"`
	TodayRevenue     types.Money `json:"todayRevenue"`
	TotalReceivable  types.Money `json:"totalReceivable"`
	TotalPayable     types.Money `json:"totalPayable"`
}
