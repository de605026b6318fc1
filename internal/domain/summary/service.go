package summary

import (
	"context"
	"time"
)

// SummaryService is the recalculation orchestrator. Both recalculations are
// pure "read inputs, compute, upsert" operations: they are idempotent, safe
// to call concurrently for the same key, and leave the previously persisted
// summary untouched on failure.
type SummaryService interface {
	// RecalculateDaily re-derives the daily summary of one employee/date
	// from the persisted punch events and policy, and upserts it.
	RecalculateDaily(ctx context.Context, companyID, employeeID string, date time.Time) (DailySummary, error)

	// RecalculateMonthly folds the month's daily summaries into the
	// monthly summary and upserts it. Missing days contribute zero.
	RecalculateMonthly(ctx context.Context, companyID, employeeID string, year int, month time.Month) (MonthlySummary, error)

	// GetDaily returns the persisted daily summary for a date.
	GetDaily(ctx context.Context, companyID, employeeID, date string) (DailySummary, error)

	// ListDailyRange returns persisted daily summaries for a date range in
	// descending date order.
	ListDailyRange(ctx context.Context, companyID, employeeID, startDate, endDate string) ([]DailySummary, error)

	// ListCompanyDaily returns the daily summaries of every employee of a
	// company for one date.
	ListCompanyDaily(ctx context.Context, companyID, date string) ([]DailySummary, error)

	// GetMonthly returns the persisted monthly summary for a YYYY-MM month.
	GetMonthly(ctx context.Context, companyID, employeeID, month string) (MonthlySummary, error)
}
