package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}

const dailyColumns = `
	company_id, employee_id, date, scheduled_start, scheduled_end,
	actual_start, actual_end, expected_minutes, worked_minutes, delay_minutes,
	overtime_minutes, compensated_minutes, balance_minutes, status,
	record_count, missing_exit, has_location_issues, updated_at
`

func scanDaily(row pgx.Row) (summary.DailySummary, error) {
	var s summary.DailySummary
	err := row.Scan(
		&s.CompanyID, &s.EmployeeID, &s.Date, &s.ScheduledStart, &s.ScheduledEnd,
		&s.ActualStart, &s.ActualEnd, &s.ExpectedMinutes, &s.WorkedMinutes, &s.DelayMinutes,
		&s.OvertimeMinutes, &s.CompensatedMinutes, &s.BalanceMinutes, &s.Status,
		&s.RecordCount, &s.MissingExit, &s.HasLocationIssues, &s.UpdatedAt,
	)
	return s, err
}

// UpsertDaily implements summary.SummaryRepository.
func (r *summaryRepository) UpsertDaily(ctx context.Context, s summary.DailySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_summaries (
			company_id, employee_id, date, scheduled_start, scheduled_end,
			actual_start, actual_end, expected_minutes, worked_minutes, delay_minutes,
			overtime_minutes, compensated_minutes, balance_minutes, status,
			record_count, missing_exit, has_location_issues, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			scheduled_start = EXCLUDED.scheduled_start,
			scheduled_end = EXCLUDED.scheduled_end,
			actual_start = EXCLUDED.actual_start,
			actual_end = EXCLUDED.actual_end,
			expected_minutes = EXCLUDED.expected_minutes,
			worked_minutes = EXCLUDED.worked_minutes,
			delay_minutes = EXCLUDED.delay_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			compensated_minutes = EXCLUDED.compensated_minutes,
			balance_minutes = EXCLUDED.balance_minutes,
			status = EXCLUDED.status,
			record_count = EXCLUDED.record_count,
			missing_exit = EXCLUDED.missing_exit,
			has_location_issues = EXCLUDED.has_location_issues,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		s.CompanyID, s.EmployeeID, s.Date, s.ScheduledStart, s.ScheduledEnd,
		s.ActualStart, s.ActualEnd, s.ExpectedMinutes, s.WorkedMinutes, s.DelayMinutes,
		s.OvertimeMinutes, s.CompensatedMinutes, s.BalanceMinutes, s.Status,
		s.RecordCount, s.MissingExit, s.HasLocationIssues, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily summary: %w", err)
	}

	return nil
}

// GetDaily implements summary.SummaryRepository.
func (r *summaryRepository) GetDaily(ctx context.Context, companyID, employeeID, date string) (summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyColumns + `
		FROM daily_summaries
		WHERE company_id = $1 AND employee_id = $2 AND date = $3
	`

	s, err := scanDaily(q.QueryRow(ctx, query, companyID, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.DailySummary{}, summary.ErrDailySummaryNotFound
		}
		return summary.DailySummary{}, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return s, nil
}

// ListDailyRange implements summary.SummaryRepository.
func (r *summaryRepository) ListDailyRange(ctx context.Context, companyID, employeeID, startDate, endDate string) ([]summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyColumns + `
		FROM daily_summaries
		WHERE company_id = $1 AND employee_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date DESC
	`

	return r.queryDaily(ctx, q, query, companyID, employeeID, startDate, endDate)
}

// ListDailyForMonth implements summary.SummaryRepository.
func (r *summaryRepository) ListDailyForMonth(ctx context.Context, companyID, employeeID, month string) ([]summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyColumns + `
		FROM daily_summaries
		WHERE company_id = $1 AND employee_id = $2
		  AND date LIKE $3 || '-%'
		ORDER BY date
	`

	return r.queryDaily(ctx, q, query, companyID, employeeID, month)
}

// ListDailyForCompanyDate implements summary.SummaryRepository.
func (r *summaryRepository) ListDailyForCompanyDate(ctx context.Context, companyID, date string) ([]summary.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyColumns + `
		FROM daily_summaries
		WHERE company_id = $1 AND date = $2
		ORDER BY employee_id
	`

	return r.queryDaily(ctx, q, query, companyID, date)
}

func (r *summaryRepository) queryDaily(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]summary.DailySummary, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	defer rows.Close()

	var summaries []summary.DailySummary
	for rows.Next() {
		s, err := scanDaily(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// UpsertMonthly implements summary.SummaryRepository.
func (r *summaryRepository) UpsertMonthly(ctx context.Context, m summary.MonthlySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_summaries (
			company_id, employee_id, month, expected_minutes, worked_minutes,
			delay_minutes, overtime_minutes, compensated_minutes, balance_minutes,
			days_worked, days_absent, days_late, days_with_overtime, status, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			expected_minutes = EXCLUDED.expected_minutes,
			worked_minutes = EXCLUDED.worked_minutes,
			delay_minutes = EXCLUDED.delay_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			compensated_minutes = EXCLUDED.compensated_minutes,
			balance_minutes = EXCLUDED.balance_minutes,
			days_worked = EXCLUDED.days_worked,
			days_absent = EXCLUDED.days_absent,
			days_late = EXCLUDED.days_late,
			days_with_overtime = EXCLUDED.days_with_overtime,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		m.CompanyID, m.EmployeeID, m.Month, m.ExpectedMinutes, m.WorkedMinutes,
		m.DelayMinutes, m.OvertimeMinutes, m.CompensatedMinutes, m.BalanceMinutes,
		m.DaysWorked, m.DaysAbsent, m.DaysLate, m.DaysWithOvertime, m.Status, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return nil
}

// GetMonthly implements summary.SummaryRepository.
func (r *summaryRepository) GetMonthly(ctx context.Context, companyID, employeeID, month string) (summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, employee_id, month, expected_minutes, worked_minutes,
			   delay_minutes, overtime_minutes, compensated_minutes, balance_minutes,
			   days_worked, days_absent, days_late, days_with_overtime, status, updated_at
		FROM monthly_summaries
		WHERE company_id = $1 AND employee_id = $2 AND month = $3
	`

	var m summary.MonthlySummary
	err := q.QueryRow(ctx, query, companyID, employeeID, month).Scan(
		&m.CompanyID, &m.EmployeeID, &m.Month, &m.ExpectedMinutes, &m.WorkedMinutes,
		&m.DelayMinutes, &m.OvertimeMinutes, &m.CompensatedMinutes, &m.BalanceMinutes,
		&m.DaysWorked, &m.DaysAbsent, &m.DaysLate, &m.DaysWithOvertime, &m.Status, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.MonthlySummary{}, summary.ErrMonthlySummaryNotFound
		}
		return summary.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return m, nil
}
