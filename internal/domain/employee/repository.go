package employee

import (
	"context"

	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
)

// EmployeeRepository defines data access for employees. The engine only
// reads the custom schedule; employee CRUD is external.
type EmployeeRepository interface {
	// GetByID retrieves an employee with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetByEmail retrieves an employee by login email, any company.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActive retrieves the active employees of every company, used by
	// the nightly summary rebuild.
	ListActive(ctx context.Context) ([]Employee, error)

	// UpdateCustomSchedule sets or clears (nil) an employee's schedule
	// override.
	UpdateCustomSchedule(ctx context.Context, id string, companyID string, schedule policy.WeeklySchedule) error
}
