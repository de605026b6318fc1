package summary

import "time"

// DayStatus classifies a single calculated day.
type DayStatus string

const (
	DayStatusNormal       DayStatus = "normal"
	DayStatusLate         DayStatus = "late"
	DayStatusExtra        DayStatus = "extra"
	DayStatusCompensated  DayStatus = "compensated"
	DayStatusAbsent       DayStatus = "absent"
	DayStatusDayOff       DayStatus = "day_off"
	DayStatusWorkedDayOff DayStatus = "worked_day_off"
	DayStatusMissingExit  DayStatus = "missing_exit"
)

// MonthStatus classifies the net balance of a month.
type MonthStatus string

const (
	MonthStatusPositive MonthStatus = "positive"
	MonthStatusNegative MonthStatus = "negative"
	MonthStatusBalanced MonthStatus = "balanced"
)

// DailySummary is the derived attendance record for one employee and date.
// It is always recomputed in full from the punch events and policy; no field
// is ever patched incrementally.
type DailySummary struct {
	CompanyID  string
	EmployeeID string
	Date       string // YYYY-MM-DD

	ScheduledStart *string // HH:MM
	ScheduledEnd   *string
	// ActualStart/ActualEnd carry the real punch times for display; the
	// tolerance-snapped calculation times are internal to the engine.
	ActualStart *string
	ActualEnd   *string

	ExpectedMinutes    int
	WorkedMinutes      int
	DelayMinutes       int
	OvertimeMinutes    int
	CompensatedMinutes int
	BalanceMinutes     int

	Status            DayStatus
	RecordCount       int
	MissingExit       bool
	HasLocationIssues bool

	UpdatedAt time.Time
}

// MonthlySummary aggregates the daily summaries of one employee and month.
// It is always derived by folding daily summaries, never from raw punches.
type MonthlySummary struct {
	CompanyID  string
	EmployeeID string
	Month      string // YYYY-MM

	ExpectedMinutes    int
	WorkedMinutes      int
	DelayMinutes       int
	OvertimeMinutes    int
	CompensatedMinutes int
	BalanceMinutes     int

	DaysWorked       int
	DaysAbsent       int
	DaysLate         int
	DaysWithOvertime int

	Status MonthStatus

	UpdatedAt time.Time
}
