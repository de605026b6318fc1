package policy

import (
	"slices"

	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// POLICY DTOs
// ========================================

type UpdatePolicyRequest struct {
	WeeklySchedule           WeeklySchedule `json:"weekly_schedule"`
	ToleranceBefore          int            `json:"tolerance_before"`
	ToleranceAfter           int            `json:"tolerance_after"`
	RoundToNearest           int            `json:"round_to_nearest"`
	BreakMode                string         `json:"break_mode"`
	BreakDuration            int            `json:"break_duration"`
	CountEarlyAsExtra        bool           `json:"count_early_as_extra"`
	CompensateBalance        bool           `json:"compensate_balance"`
	CompensationMode         string         `json:"compensation_mode"`
	CompensationMonthlyLimit int            `json:"compensation_monthly_limit"`
	RequireLocation          bool           `json:"require_location"`
	Latitude                 *float64       `json:"latitude"`
	Longitude                *float64       `json:"longitude"`
	RadiusMeters             int            `json:"radius_meters"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateWeeklySchedule("weekly_schedule", r.WeeklySchedule)...)

	if r.ToleranceBefore < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_before",
			Message: "tolerance_before must not be negative",
		})
	}
	if r.ToleranceAfter < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_after",
			Message: "tolerance_after must not be negative",
		})
	}
	if r.RoundToNearest < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "round_to_nearest",
			Message: "round_to_nearest must not be negative",
		})
	}
	if !slices.Contains(BreakModeValues, r.BreakMode) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_mode",
			Message: "break_mode must be one of: automatic, manual",
		})
	}
	if r.BreakMode == string(BreakModeAutomatic) && r.BreakDuration <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must be positive in automatic mode",
		})
	}
	if !slices.Contains(CompensationModeValues, r.CompensationMode) {
		errs = append(errs, validator.ValidationError{
			Field:   "compensation_mode",
			Message: "compensation_mode must be one of: manual, auto",
		})
	}
	if r.CompensationMonthlyLimit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "compensation_monthly_limit",
			Message: "compensation_monthly_limit must not be negative",
		})
	}
	if r.RequireLocation {
		if r.Latitude == nil || r.Longitude == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude and longitude are required when require_location is enabled",
			})
		}
		if r.RadiusMeters <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "radius_meters",
				Message: "radius_meters must be positive when require_location is enabled",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPolicy maps the request onto a Policy value for the given company.
func (r *UpdatePolicyRequest) ToPolicy(companyID string) Policy {
	return Policy{
		CompanyID:                companyID,
		WeeklySchedule:           r.WeeklySchedule,
		ToleranceBefore:          r.ToleranceBefore,
		ToleranceAfter:           r.ToleranceAfter,
		RoundToNearest:           r.RoundToNearest,
		BreakMode:                BreakMode(r.BreakMode),
		BreakDuration:            r.BreakDuration,
		CountEarlyAsExtra:        r.CountEarlyAsExtra,
		CompensateBalance:        r.CompensateBalance,
		CompensationMode:         CompensationMode(r.CompensationMode),
		CompensationMonthlyLimit: r.CompensationMonthlyLimit,
		RequireLocation:          r.RequireLocation,
		Latitude:                 r.Latitude,
		Longitude:                r.Longitude,
		RadiusMeters:             r.RadiusMeters,
	}
}

type UpdateScheduleOverrideRequest struct {
	EmployeeID string `json:"employee_id"`
	// Schedule overrides the company schedule per weekday; weekdays it does
	// not define keep the company entry. nil clears the override.
	Schedule WeeklySchedule `json:"schedule"`
}

func (r *UpdateScheduleOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	errs = append(errs, validateWeeklySchedule("schedule", r.Schedule)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateWeeklySchedule(field string, ws WeeklySchedule) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for day, sched := range ws {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "unknown weekday: " + day,
			})
			continue
		}
		if !sched.WorkDay {
			continue
		}
		if !validator.IsValidClock(sched.Start) || !validator.IsValidClock(sched.End) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: day + ": start and end must be HH:MM times on work days",
			})
		}
	}
	return errs
}

func (p Policy) ToResponse() PolicyResponse {
	return PolicyResponse{
		CompanyID:                p.CompanyID,
		WeeklySchedule:           p.WeeklySchedule,
		ToleranceBefore:          p.ToleranceBefore,
		ToleranceAfter:           p.ToleranceAfter,
		RoundToNearest:           p.RoundToNearest,
		BreakMode:                string(p.BreakMode),
		BreakDuration:            p.BreakDuration,
		CountEarlyAsExtra:        p.CountEarlyAsExtra,
		CompensateBalance:        p.CompensateBalance,
		CompensationMode:         string(p.CompensationMode),
		CompensationMonthlyLimit: p.CompensationMonthlyLimit,
		RequireLocation:          p.RequireLocation,
		Latitude:                 p.Latitude,
		Longitude:                p.Longitude,
		RadiusMeters:             p.RadiusMeters,
	}
}

type PolicyResponse struct {
	CompanyID                string         `json:"company_id"`
	WeeklySchedule           WeeklySchedule `json:"weekly_schedule"`
	ToleranceBefore          int            `json:"tolerance_before"`
	ToleranceAfter           int            `json:"tolerance_after"`
	RoundToNearest           int            `json:"round_to_nearest"`
	BreakMode                string         `json:"break_mode"`
	BreakDuration            int            `json:"break_duration"`
	CountEarlyAsExtra        bool           `json:"count_early_as_extra"`
	CompensateBalance        bool           `json:"compensate_balance"`
	CompensationMode         string         `json:"compensation_mode"`
	CompensationMonthlyLimit int            `json:"compensation_monthly_limit"`
	RequireLocation          bool           `json:"require_location"`
	Latitude                 *float64       `json:"latitude,omitempty"`
	Longitude                *float64       `json:"longitude,omitempty"`
	RadiusMeters             int            `json:"radius_meters"`
}
