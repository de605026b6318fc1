package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

const punchColumns = `
	id, company_id, employee_id, punched_at, kind, raw_label, status,
	work_mode, latitude, longitude, inside_radius, created_at
`

func scanPunch(row pgx.Row) (punch.PunchEvent, error) {
	var event punch.PunchEvent
	err := row.Scan(
		&event.ID, &event.CompanyID, &event.EmployeeID, &event.PunchedAt,
		&event.Kind, &event.RawLabel, &event.Status, &event.WorkMode,
		&event.Latitude, &event.Longitude, &event.InsideRadius, &event.CreatedAt,
	)
	return event, err
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (
			id, company_id, employee_id, punched_at, kind, raw_label, status,
			work_mode, latitude, longitude, inside_radius
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID, event.CompanyID, event.EmployeeID, event.PunchedAt,
		event.Kind, event.RawLabel, event.Status, event.WorkMode,
		event.Latitude, event.Longitude, event.InsideRadius,
	).Scan(&event.CreatedAt)
	if err != nil {
		return punch.PunchEvent{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return event, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string, companyID string) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE id = $1 AND company_id = $2
	`

	event, err := scanPunch(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchEvent{}, punch.ErrPunchNotFound
		}
		return punch.PunchEvent{}, fmt.Errorf("failed to get punch event: %w", err)
	}

	return event, nil
}

// ListActiveForDay implements punch.PunchRepository.
func (r *punchRepository) ListActiveForDay(ctx context.Context, companyID, employeeID string, dayStart, dayEnd time.Time) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE company_id = $1
		  AND employee_id = $2
		  AND status = 'active'
		  AND punched_at >= $3
		  AND punched_at < $4
		ORDER BY punched_at
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events for day: %w", err)
	}
	defer rows.Close()

	var events []punch.PunchEvent
	for rows.Next() {
		event, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter punch.ListPunchFilter, companyID string) ([]punch.PunchEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("punched_at >= $%d::date", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("punched_at < ($%d::date + INTERVAL '1 day')", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM punch_events WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punch events: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM punch_events
		WHERE %s
		ORDER BY punched_at DESC
		LIMIT $%d OFFSET $%d
	`, punchColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.PunchEvent
	for rows.Next() {
		event, err := scanPunch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, event)
	}

	return events, total, rows.Err()
}

// SetStatus implements punch.PunchRepository.
func (r *punchRepository) SetStatus(ctx context.Context, id string, companyID string, status punch.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET status = $1
		WHERE id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, status, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to set punch status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}
