package punch

import "context"

// PunchService defines business logic for punch recording. Recording a punch
// triggers a recalculation of the affected daily and monthly summaries.
type PunchService interface {
	// Record normalizes and persists a punch for the authenticated employee.
	Record(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	// List retrieves punch events of the authenticated company (admin).
	List(ctx context.Context, filter ListPunchFilter) (ListPunchResponse, error)

	// Invalidate logically deletes a punch event and recomputes the
	// summaries of its day.
	Invalidate(ctx context.Context, id string) error
}
