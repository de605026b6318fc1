package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
)

// SummaryJobs holds dependencies for summary-related cron jobs
type SummaryJobs struct {
	employeeRepo   employee.EmployeeRepository
	summaryService summary.SummaryService
}

// NewSummaryJobs creates a new summary jobs handler
func NewSummaryJobs(employeeRepo employee.EmployeeRepository, summaryService summary.SummaryService) *SummaryJobs {
	return &SummaryJobs{
		employeeRepo:   employeeRepo,
		summaryService: summaryService,
	}
}

// RegisterJobs registers all summary cron jobs to the scheduler
func (j *SummaryJobs) RegisterJobs(scheduler *Scheduler) {
	// Runs every hour, but only does work during the midnight hour (UTC)
	scheduler.AddJob("rebuild_daily_summaries", 1*time.Hour, j.RebuildYesterdaySummaries)
}

// RebuildYesterdaySummaries recalculates yesterday's daily summaries and the
// affected monthly summaries for all active employees. Punches recorded or
// invalidated late in the day are folded in here even when no request
// triggered a recalculation.
func (j *SummaryJobs) RebuildYesterdaySummaries(ctx context.Context) error {
	now := time.Now().UTC()

	// Only run during the midnight hour
	if now.Hour() != 0 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	day := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	if len(employees) == 0 {
		return nil
	}

	slog.Info("Rebuilding daily summaries", "date", day.Format("2006-01-02"), "employee_count", len(employees))

	rebuilt := 0
	for _, emp := range employees {
		if _, err := j.summaryService.RecalculateDaily(ctx, emp.CompanyID, emp.ID, day); err != nil {
			slog.Error("Failed to rebuild daily summary",
				"employee_id", emp.ID,
				"date", day.Format("2006-01-02"),
				"error", err)
			continue
		}

		if _, err := j.summaryService.RecalculateMonthly(ctx, emp.CompanyID, emp.ID, day.Year(), day.Month()); err != nil {
			slog.Error("Failed to rebuild monthly summary",
				"employee_id", emp.ID,
				"month", day.Format("2006-01"),
				"error", err)
			continue
		}

		rebuilt++
	}

	slog.Info("Daily summaries rebuilt", "date", day.Format("2006-01-02"), "rebuilt", rebuilt)
	return nil
}
