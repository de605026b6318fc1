package summary

import "errors"

// Summary domain errors
var (
	ErrDailySummaryNotFound   = errors.New("daily summary not found")
	ErrMonthlySummaryNotFound = errors.New("monthly summary not found")
	ErrUpsertFailed           = errors.New("failed to persist summary")
)
