package auth

import (
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"-"`
	ExpiresAt        int64  `json:"expires_at"`
	RefreshExpiresAt int64  `json:"-"`
	EmployeeID       string `json:"employee_id"`
	CompanyID        string `json:"company_id"`
	FullName         string `json:"full_name"`
	Role             string `json:"role"`
}
