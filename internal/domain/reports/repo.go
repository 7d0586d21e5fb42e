package reports

import (
	"context"
	"time"
)

// Repository defines the read-only query surface for reports.
// All ranges are [from, toExclusive) in Gregorian time.
type Repository interface {
	ProfitSummary(ctx context.Context, from, toExclusive time.Time) (*ProfitSummary, error)

	// Debtors lists customers whose latest ledger balance is positive
	// (they owe the business).
	Debtors(ctx context.Context) ([]*AccountBalance, error)

	// Creditors lists partners whose latest ledger balance is positive
	// (the business owes them).
	Creditors(ctx context.Context) ([]*AccountBalance, error)

	// TopCustomers ranks customers by sale spend within the range.
	TopCustomers(ctx context.Context, from, toExclusive time.Time, limit int) ([]*AccountTotal, error)

	// TopPartners ranks partners by credit postings on their ledgers
	// within the range.
	TopPartners(ctx context.Context, from, toExclusive time.Time, limit int) ([]*AccountTotal, error)

	Dashboard(ctx context.Context, todayStart, todayEnd time.Time) (*Dashboard, error)
}
