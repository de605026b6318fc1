package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
)

type SummaryServiceImpl struct {
	summary.SummaryRepository
	punch.PunchRepository
	policy.PolicyRepository
	employee.EmployeeRepository
}

func NewSummaryService(
	summaryRepo summary.SummaryRepository,
	punchRepo punch.PunchRepository,
	policyRepo policy.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
) summary.SummaryService {
	return &SummaryServiceImpl{
		SummaryRepository:  summaryRepo,
		PunchRepository:    punchRepo,
		PolicyRepository:   policyRepo,
		EmployeeRepository: employeeRepo,
	}
}

// RecalculateDaily implements summary.SummaryService.
func (s *SummaryServiceImpl) RecalculateDaily(ctx context.Context, companyID, employeeID string, date time.Time) (summary.DailySummary, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := day.AddDate(0, 0, 1)

	pol, err := s.PolicyRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, policy.ErrPolicyNotFound) {
			return summary.DailySummary{}, fmt.Errorf("failed to get company policy: %w", err)
		}
		// A company without a configured policy still gets summaries,
		// computed against the documented default.
		slog.Warn("Company has no attendance policy, using default", "company_id", companyID)
		pol = policy.Default(companyID)
	}

	var override policy.WeeklySchedule
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return summary.DailySummary{}, fmt.Errorf("failed to get employee: %w", err)
		}
		slog.Warn("Employee not found while recalculating, using company schedule",
			"employee_id", employeeID, "company_id", companyID)
	} else {
		override = emp.CustomSchedule
	}

	events, err := s.PunchRepository.ListActiveForDay(ctx, companyID, employeeID, day, dayEnd)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	result := buildDailySummary(dayInputs{
		companyID:  companyID,
		employeeID: employeeID,
		date:       day,
		pol:        pol,
		sched:      resolveDaySchedule(pol, override, day),
		tl:         buildTimeline(events),
		now:        time.Now().UTC(),
	})

	if err := s.SummaryRepository.UpsertDaily(ctx, result); err != nil {
		return summary.DailySummary{}, fmt.Errorf("%w: %w", summary.ErrUpsertFailed, err)
	}

	return result, nil
}

// RecalculateMonthly implements summary.SummaryService.
func (s *SummaryServiceImpl) RecalculateMonthly(ctx context.Context, companyID, employeeID string, year int, month time.Month) (summary.MonthlySummary, error) {
	monthKey := fmt.Sprintf("%04d-%02d", year, int(month))

	days, err := s.SummaryRepository.ListDailyForMonth(ctx, companyID, employeeID, monthKey)
	if err != nil {
		return summary.MonthlySummary{}, fmt.Errorf("failed to list daily summaries: %w", err)
	}

	result := aggregateMonthly(companyID, employeeID, monthKey, days, time.Now().UTC())

	if err := s.SummaryRepository.UpsertMonthly(ctx, result); err != nil {
		return summary.MonthlySummary{}, fmt.Errorf("%w: %w", summary.ErrUpsertFailed, err)
	}

	return result, nil
}

// GetDaily implements summary.SummaryService.
func (s *SummaryServiceImpl) GetDaily(ctx context.Context, companyID, employeeID, date string) (summary.DailySummary, error) {
	result, err := s.SummaryRepository.GetDaily(ctx, companyID, employeeID, date)
	if err != nil {
		if errors.Is(err, summary.ErrDailySummaryNotFound) {
			return summary.DailySummary{}, err
		}
		return summary.DailySummary{}, fmt.Errorf("failed to get daily summary: %w", err)
	}
	return result, nil
}

// ListDailyRange implements summary.SummaryService.
func (s *SummaryServiceImpl) ListDailyRange(ctx context.Context, companyID, employeeID, startDate, endDate string) ([]summary.DailySummary, error) {
	results, err := s.SummaryRepository.ListDailyRange(ctx, companyID, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	return results, nil
}

// ListCompanyDaily implements summary.SummaryService.
func (s *SummaryServiceImpl) ListCompanyDaily(ctx context.Context, companyID, date string) ([]summary.DailySummary, error) {
	results, err := s.SummaryRepository.ListDailyForCompanyDate(ctx, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list company daily summaries: %w", err)
	}
	return results, nil
}

// GetMonthly implements summary.SummaryService.
func (s *SummaryServiceImpl) GetMonthly(ctx context.Context, companyID, employeeID, month string) (summary.MonthlySummary, error) {
	result, err := s.SummaryRepository.GetMonthly(ctx, companyID, employeeID, month)
	if err != nil {
		if errors.Is(err, summary.ErrMonthlySummaryNotFound) {
			return summary.MonthlySummary{}, err
		}
		return summary.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return result, nil
}
