package employee

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	Position     string
	EmployeeCode string
	Email        string
	PasswordHash string
	Role         Role
	WorkMode     string

	// CustomSchedule overrides the company weekly schedule per weekday when
	// present; weekdays it does not define fall back to the company entry.
	// nil means the employee follows the company schedule entirely.
	CustomSchedule policy.WeeklySchedule

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
