package policy

import "context"

// PolicyService defines business logic for attendance policy configuration.
type PolicyService interface {
	// GetPolicy retrieves the policy of the authenticated company, falling
	// back to the documented default when none is configured.
	GetPolicy(ctx context.Context) (PolicyResponse, error)

	// UpdatePolicy replaces the policy of the authenticated company.
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)

	// GetScheduleOverride retrieves an employee's custom weekly schedule,
	// nil when the employee follows the company schedule.
	GetScheduleOverride(ctx context.Context, employeeID string) (WeeklySchedule, error)

	// UpdateScheduleOverride sets or clears an employee's custom schedule.
	UpdateScheduleOverride(ctx context.Context, req UpdateScheduleOverrideRequest) error
}
