package summary

import "context"

// SummaryRepository defines data access for derived summaries. Summaries are
// the only records the calculation engine writes, and writes are always full
// overwrites of the (employee, date) or (employee, month) row.
type SummaryRepository interface {
	// UpsertDaily fully replaces the daily summary for its employee/date.
	UpsertDaily(ctx context.Context, s DailySummary) error

	// GetDaily retrieves a daily summary.
	// Returns ErrDailySummaryNotFound when none exists.
	GetDaily(ctx context.Context, companyID, employeeID, date string) (DailySummary, error)

	// ListDailyRange retrieves daily summaries for [startDate, endDate] in
	// descending date order. Pagination belongs to the caller.
	ListDailyRange(ctx context.Context, companyID, employeeID, startDate, endDate string) ([]DailySummary, error)

	// ListDailyForMonth retrieves every daily summary whose date falls in
	// the YYYY-MM month, ascending.
	ListDailyForMonth(ctx context.Context, companyID, employeeID, month string) ([]DailySummary, error)

	// ListDailyForCompanyDate retrieves the daily summaries of every
	// employee of a company for one date, used by dashboard listings.
	ListDailyForCompanyDate(ctx context.Context, companyID, date string) ([]DailySummary, error)

	// UpsertMonthly fully replaces the monthly summary for its employee/month.
	UpsertMonthly(ctx context.Context, s MonthlySummary) error

	// GetMonthly retrieves a monthly summary.
	// Returns ErrMonthlySummaryNotFound when none exists.
	GetMonthly(ctx context.Context, companyID, employeeID, month string) (MonthlySummary, error)
}
