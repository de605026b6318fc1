package response

import (
	"errors"
	"net/http"

	"github.com/pontoflow/ponto-backend-go/internal/domain/auth"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Attendance policy not found")
	case errors.Is(err, policy.ErrInvalidSchedule):
		BadRequest(w, "Invalid weekly schedule", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, punch.ErrPunchAlreadyProcessed):
		Conflict(w, "Punch event already invalidated or adjusted")

	// Summary domain errors
	case errors.Is(err, summary.ErrDailySummaryNotFound):
		NotFound(w, "Daily summary not found")
	case errors.Is(err, summary.ErrMonthlySummaryNotFound):
		NotFound(w, "Monthly summary not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
