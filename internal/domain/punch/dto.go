package punch

import (
	"slices"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type RecordPunchRequest struct {
	// Label is the raw punch type as sent by the client; it is normalized
	// into the closed kind set at this boundary.
	Label     string   `json:"label"`
	WorkMode  string   `json:"work_mode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// PunchedAt allows backdated administrative entries; empty means now.
	PunchedAt string `json:"punched_at,omitempty"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}
	if r.WorkMode != "" && !slices.Contains(WorkModeValues, r.WorkMode) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_mode",
			Message: "work_mode must be one of: onsite, remote, external",
		})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if r.PunchedAt != "" {
		if _, err := time.Parse(time.RFC3339, r.PunchedAt); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "punched_at",
				Message: "punched_at must be an RFC 3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPunchFilter struct {
	EmployeeID *string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string // YYYY-MM-DD
	Status     *string
	Page       int
	Limit      int
}

type PunchResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	PunchedAt    string   `json:"punched_at"`
	Kind         string   `json:"kind"`
	RawLabel     string   `json:"raw_label,omitempty"`
	Status       string   `json:"status"`
	WorkMode     string   `json:"work_mode"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	InsideRadius *bool    `json:"inside_radius,omitempty"`
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}
