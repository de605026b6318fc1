package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for punch events. All methods carry a
// companyID to prevent cross-company data access.
type PunchRepository interface {
	// Create persists a new punch event.
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// GetByID retrieves a punch event with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (PunchEvent, error)

	// ListActiveForDay retrieves the active punch events of one employee
	// inside [dayStart, dayEnd), ordered by timestamp. Events with other
	// validity statuses never reach the calculation engine.
	ListActiveForDay(ctx context.Context, companyID, employeeID string, dayStart, dayEnd time.Time) ([]PunchEvent, error)

	// List retrieves punch events with filters and pagination, newest first.
	List(ctx context.Context, filter ListPunchFilter, companyID string) ([]PunchEvent, int64, error)

	// SetStatus moves an event through the validity workflow
	// (active -> invalidated/adjusted). Returns ErrPunchNotFound when the
	// event does not exist for the company.
	SetStatus(ctx context.Context, id string, companyID string, status Status) error
}
