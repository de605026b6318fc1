package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, full_name, position, employee_code, email, password_hash,
	role, work_mode, custom_schedule, is_active, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var scheduleJSON []byte
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.Position, &emp.EmployeeCode,
		&emp.Email, &emp.PasswordHash, &emp.Role, &emp.WorkMode, &scheduleJSON,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if len(scheduleJSON) > 0 {
		if err := json.Unmarshal(scheduleJSON, &emp.CustomSchedule); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode custom schedule: %w", err)
		}
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE AND deleted_at IS NULL
		ORDER BY company_id, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// UpdateCustomSchedule implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateCustomSchedule(ctx context.Context, id string, companyID string, schedule policy.WeeklySchedule) error {
	q := GetQuerier(ctx, r.db)

	var scheduleJSON []byte
	if schedule != nil {
		var err error
		scheduleJSON, err = json.Marshal(schedule)
		if err != nil {
			return fmt.Errorf("failed to encode custom schedule: %w", err)
		}
	}

	query := `
		UPDATE employees
		SET custom_schedule = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, scheduleJSON, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update custom schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
