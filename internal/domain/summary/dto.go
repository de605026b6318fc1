package summary

// ========================================
// SUMMARY DTOs
// ========================================

type DailySummaryResponse struct {
	EmployeeID         string  `json:"employee_id"`
	Date               string  `json:"date"`
	ScheduledStart     *string `json:"scheduled_start,omitempty"`
	ScheduledEnd       *string `json:"scheduled_end,omitempty"`
	ActualStart        *string `json:"actual_start,omitempty"`
	ActualEnd          *string `json:"actual_end,omitempty"`
	ExpectedMinutes    int     `json:"expected_minutes"`
	WorkedMinutes      int     `json:"worked_minutes"`
	DelayMinutes       int     `json:"delay_minutes"`
	OvertimeMinutes    int     `json:"overtime_minutes"`
	CompensatedMinutes int     `json:"compensated_minutes"`
	BalanceMinutes     int     `json:"balance_minutes"`
	Status             string  `json:"status"`
	RecordCount        int     `json:"record_count"`
	MissingExit        bool    `json:"missing_exit"`
	HasLocationIssues  bool    `json:"has_location_issues"`
}

func (s DailySummary) ToResponse() DailySummaryResponse {
	return DailySummaryResponse{
		EmployeeID:         s.EmployeeID,
		Date:               s.Date,
		ScheduledStart:     s.ScheduledStart,
		ScheduledEnd:       s.ScheduledEnd,
		ActualStart:        s.ActualStart,
		ActualEnd:          s.ActualEnd,
		ExpectedMinutes:    s.ExpectedMinutes,
		WorkedMinutes:      s.WorkedMinutes,
		DelayMinutes:       s.DelayMinutes,
		OvertimeMinutes:    s.OvertimeMinutes,
		CompensatedMinutes: s.CompensatedMinutes,
		BalanceMinutes:     s.BalanceMinutes,
		Status:             string(s.Status),
		RecordCount:        s.RecordCount,
		MissingExit:        s.MissingExit,
		HasLocationIssues:  s.HasLocationIssues,
	}
}

type MonthlySummaryResponse struct {
	EmployeeID         string `json:"employee_id"`
	Month              string `json:"month"`
	ExpectedMinutes    int    `json:"expected_minutes"`
	WorkedMinutes      int    `json:"worked_minutes"`
	DelayMinutes       int    `json:"delay_minutes"`
	OvertimeMinutes    int    `json:"overtime_minutes"`
	CompensatedMinutes int    `json:"compensated_minutes"`
	BalanceMinutes     int    `json:"balance_minutes"`
	DaysWorked         int    `json:"days_worked"`
	DaysAbsent         int    `json:"days_absent"`
	DaysLate           int    `json:"days_late"`
	DaysWithOvertime   int    `json:"days_with_overtime"`
	Status             string `json:"status"`
}

func (s MonthlySummary) ToResponse() MonthlySummaryResponse {
	return MonthlySummaryResponse{
		EmployeeID:         s.EmployeeID,
		Month:              s.Month,
		ExpectedMinutes:    s.ExpectedMinutes,
		WorkedMinutes:      s.WorkedMinutes,
		DelayMinutes:       s.DelayMinutes,
		OvertimeMinutes:    s.OvertimeMinutes,
		CompensatedMinutes: s.CompensatedMinutes,
		BalanceMinutes:     s.BalanceMinutes,
		DaysWorked:         s.DaysWorked,
		DaysAbsent:         s.DaysAbsent,
		DaysLate:           s.DaysLate,
		DaysWithOvertime:   s.DaysWithOvertime,
		Status:             string(s.Status),
	}
}
