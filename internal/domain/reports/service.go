package reports

import (
	"context"
	"time"

	"khata/internal/core/apperror"
)

// DateConverter turns a local-calendar date string into Gregorian time.
// The conversion itself lives outside this package; reports only consume
// the resulting timestamps.
type DateConverter func(localDate string) (time.Time, error)

const defaultTopN = 5

// Service provides reporting queries over a date range given in the
// shop's local calendar.
type Service struct {
	repo    Repository
	convert DateConverter
}

// NewService creates a new reports service.
func NewService(repo Repository, convert DateConverter) *Service {
	return &Service{repo: repo, convert: convert}
}

// resolveRange converts the inclusive local-calendar boundaries into a
// half-open Gregorian interval.
func (s *Service) resolveRange(fromDate, toDate string) (time.Time, time.Time, error) {
	from, err := s.convert(fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewValidation("invalid from date").
			WithDetail("value", fromDate).WithCause(err)
	}
	to, err := s.convert(toDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewValidation("invalid to date").
			WithDetail("value", toDate).WithCause(err)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperror.NewValidation("date range end before start")
	}
	// Inclusive end date: extend to the following midnight.
	return from, to.AddDate(0, 0, 1), nil
}

// ProfitSummary reports revenue, cost, and profit for the range.
func (s *Service) ProfitSummary(ctx context.Context, fromDate, toDate string) (*ProfitSummary, error) {
	from, toEx, err := s.resolveRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.ProfitSummary(ctx, from, toEx)
	if err != nil {
		return nil, err
	}
	summary.Range = DateRange{From: from, To: toEx.AddDate(0, 0, -1)}
	return summary, nil
}

// Debtors lists customers with outstanding receivables.
func (s *Service) Debtors(ctx context.Context) ([]*AccountBalance, error) {
	return s.repo.Debtors(ctx)
}

// Creditors lists partners the business owes.
func (s *Service) Creditors(ctx context.Context) ([]*AccountBalance, error) {
	return s.repo.Creditors(ctx)
}

// TopCustomers ranks customers by spend within the range.
func (s *Service) TopCustomers(ctx context.Context, fromDate, toDate string, limit int) ([]*AccountTotal, error) {
	from, toEx, err := s.resolveRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopN
	}
	return s.repo.TopCustomers(ctx, from, toEx, limit)
}

// TopPartners ranks partners by purchase-ledger credit postings within
// the range.
func (s *Service) TopPartners(ctx context.Context, fromDate, toDate string, limit int) ([]*AccountTotal, error) {
	from, toEx, err := s.resolveRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopN
	}
	return s.repo.TopPartners(ctx, from, toEx, limit)
}

// Dashboard returns the landing-page KPIs. "Today" is the current
// Gregorian day in UTC.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.repo.Dashboard(ctx, start, start.AddDate(0, 0, 1))
}
