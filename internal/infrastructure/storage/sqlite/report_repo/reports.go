// Package report_repo runs the read-only aggregate queries behind
// reports. It never writes.
package report_repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/shopspring/decimal"

	"khata/internal/core/types"
	"khata/internal/domain/reports"
	"khata/internal/infrastructure/storage/sqlite"
)

// ReportRepo implements reports.Repository on SQLite.
type ReportRepo struct {
	txm *sqlite.TxManager
}

var _ reports.Repository = (*ReportRepo)(nil)

func NewReportRepo(txm *sqlite.TxManager) *ReportRepo {
	return &ReportRepo{txm: txm}
}

func (r *ReportRepo) ProfitSummary(ctx context.Context, from, toExclusive time.Time) (*reports.ProfitSummary, error) {
	const stmt = `
		SELECT
			COUNT(*),
			COALESCE(SUM(CAST(total AS REAL)), 0),
			COALESCE(SUM(CAST(unit_cost AS REAL) * quantity), 0)
		FROM sale_transactions
		WHERE sale_date >= ? AND sale_date < ?`

	querier := r.txm.GetQuerier(ctx)

	var (
		count   int
		revenue float64
		cost    float64
	)
	if err := querier.QueryRowContext(ctx, stmt, from, toExclusive).Scan(&count, &revenue, &cost); err != nil {
		return nil, fmt.Errorf("profit summary: %w", err)
	}

	totalRevenue := decimal.NewFromFloat(revenue)
	totalCost := decimal.NewFromFloat(cost)
	return &reports.ProfitSummary{
		Range:        reports.DateRange{From: from, To: toExclusive},
		SaleCount:    count,
		TotalRevenue: totalRevenue,
		TotalCost:    totalCost,
		Profit:       totalRevenue.Sub(totalCost),
	}, nil
}

// latestBalanceQuery joins each account onto its newest ledger entry and
// keeps the accounts with a positive balance.
const latestBalanceQuery = `
	SELECT a.id AS account_id, a.name, a.phone, e.balance
	FROM %[1]s a
	JOIN %[2]s e ON e.%[3]s = a.id
		AND e.id = (SELECT MAX(id) FROM %[2]s WHERE %[3]s = a.id)
	WHERE CAST(e.balance AS REAL) > 0
	ORDER BY CAST(e.balance AS REAL) DESC`

func (r *ReportRepo) Debtors(ctx context.Context) ([]*reports.AccountBalance, error) {
	stmt := fmt.Sprintf(latestBalanceQuery, "customers", "customer_ledger_entries", "customer_id")

	var rows []*reports.AccountBalance
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &rows, stmt); err != nil {
		return nil, fmt.Errorf("debtors: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) Creditors(ctx context.Context) ([]*reports.AccountBalance, error) {
	stmt := fmt.Sprintf(latestBalanceQuery, "partners", "partner_ledger_entries", "partner_id")

	var rows []*reports.AccountBalance
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &rows, stmt); err != nil {
		return nil, fmt.Errorf("creditors: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) TopCustomers(ctx context.Context, from, toExclusive time.Time, limit int) ([]*reports.AccountTotal, error) {
	const stmt = `
		SELECT c.id AS account_id, c.name, SUM(CAST(s.total AS REAL)) AS total
		FROM sale_transactions s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.sale_date >= ? AND s.sale_date < ?
		GROUP BY c.id, c.name
		ORDER BY total DESC
		LIMIT ?`

	var rows []*reports.AccountTotal
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &rows, stmt, from, toExclusive, limit); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) TopPartners(ctx context.Context, from, toExclusive time.Time, limit int) ([]*reports.AccountTotal, error) {
	const stmt = `
		SELECT p.id AS account_id, p.name, SUM(CAST(e.credit AS REAL)) AS total
		FROM partner_ledger_entries e
		JOIN partners p ON p.id = e.partner_id
		WHERE e.entry_date >= ? AND e.entry_date < ?
		GROUP BY p.id, p.name
		ORDER BY total DESC
		LIMIT ?`

	var rows []*reports.AccountTotal
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &rows, stmt, from, toExclusive, limit); err != nil {
		return nil, fmt.Errorf("top partners: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) Dashboard(ctx context.Context, todayStart, todayEnd time.Time) (*reports.Dashboard, error) {
	querier := r.txm.GetQuerier(ctx)
	d := &reports.Dashboard{}

	const countsStmt = `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM partners),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM phones WHERE status = 'in stock')`
	if err := querier.QueryRowContext(ctx, countsStmt).Scan(
		&d.CustomerCount, &d.PartnerCount, &d.ProductCount, &d.PhonesInStock,
	); err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	const valueStmt = `
		SELECT
			COALESCE((SELECT SUM(CAST(purchase_price AS REAL) * stock_quantity) FROM products), 0)
			+ COALESCE((SELECT SUM(CAST(purchase_price AS REAL)) FROM phones WHERE status = 'in stock'), 0)`
	var stockValue float64
	if err := querier.QueryRowContext(ctx, valueStmt).Scan(&stockValue); err != nil {
		return nil, fmt.Errorf("dashboard stock value: %w", err)
	}
	d.StockValue = decimal.NewFromFloat(stockValue)

	const revenueStmt = `
		SELECT COALESCE(SUM(CAST(total AS REAL)), 0)
		FROM sale_transactions
		WHERE sale_date >= ? AND sale_date < ?`
	var revenue float64
	if err := querier.QueryRowContext(ctx, revenueStmt, todayStart, todayEnd).Scan(&revenue); err != nil {
		return nil, fmt.Errorf("dashboard revenue: %w", err)
	}
	d.TodayRevenue = decimal.NewFromFloat(revenue)

	receivable, err := r.positiveBalanceSum(ctx, querier, "customer_ledger_entries", "customer_id")
	if err != nil {
		return nil, fmt.Errorf("dashboard receivable: %w", err)
	}
	d.TotalReceivable = receivable

	payable, err := r.positiveBalanceSum(ctx, querier, "partner_ledger_entries", "partner_id")
	if err != nil {
		return nil, fmt.Errorf("dashboard payable: %w", err)
	}
	d.TotalPayable = payable

	return d, nil
}

// positiveBalanceSum totals the positive latest balances across all
// accounts of one ledger table.
func (r *ReportRepo) positiveBalanceSum(ctx context.Context, querier sqlite.Querier, table, accountCol string) (types.Money, error) {
	stmt := fmt.Sprintf(`
		SELECT COALESCE(SUM(b), 0) FROM (
			SELECT CAST(e.balance AS REAL) AS b
			FROM %[1]s e
			WHERE e.id = (SELECT MAX(id) FROM %[1]s WHERE %[2]s = e.%[2]s)
				AND CAST(e.balance AS REAL) > 0
		)`, table, accountCol)

	var sum sql.NullFloat64
	if err := querier.QueryRowContext(ctx, stmt).Scan(&sum); err != nil {
		return types.Zero(), err
	}
	return decimal.NewFromFloat(sum.Float64), nil
}
