package summary

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
)

// dayInputs bundles everything the daily calculation depends on. The
// calculation itself is a pure function of these values.
type dayInputs struct {
	companyID  string
	employeeID string
	date       time.Time
	pol        policy.Policy
	sched      *daySchedule // nil = day off
	tl         timeline
	now        time.Time
}

func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from).Minutes())
}

func clockString(t time.Time) *string {
	s := t.Format("15:04")
	return &s
}

// floorToBlock floors minutes to the lower multiple of the block size.
// A non-positive block keeps the value exact.
func floorToBlock(minutes, block int) int {
	if block <= 0 || minutes <= 0 {
		return minutes
	}
	return minutes - minutes%block
}

// buildDailySummary derives the full daily summary from a day's schedule,
// policy and punch timeline. Every field is recomputed from scratch; the
// result never depends on a previously persisted summary.
func buildDailySummary(in dayInputs) summary.DailySummary {
	s := summary.DailySummary{
		CompanyID:         in.companyID,
		EmployeeID:        in.employeeID,
		Date:              in.date.Format("2006-01-02"),
		RecordCount:       in.tl.recordCount,
		HasLocationIssues: in.tl.hasLocationIssues,
		UpdatedAt:         in.now,
	}

	if in.sched != nil {
		s.ScheduledStart = clockString(in.sched.start)
		s.ScheduledEnd = clockString(in.sched.end)
	}
	if in.tl.entry != nil {
		s.ActualStart = clockString(*in.tl.entry)
	}
	if in.tl.exit != nil {
		s.ActualEnd = clockString(*in.tl.exit)
	}

	expected := 0
	if in.sched != nil {
		expected = in.sched.spanMinutes()
		if in.pol.BreakMode == policy.BreakModeAutomatic {
			expected -= in.pol.BreakDuration
		}
		if expected < 0 {
			expected = 0
		}
	}
	s.ExpectedMinutes = expected

	// Day off: no deviation is computed. Punches on a day off count as
	// plain worked minutes that go straight into the balance.
	if expected == 0 {
		if in.tl.recordCount == 0 {
			s.Status = summary.DayStatusDayOff
			return s
		}
		s.Status = summary.DayStatusWorkedDayOff
		if in.tl.entry == nil || in.tl.exit == nil {
			s.MissingExit = true
			return s
		}
		worked := in.workedMinutes(*in.tl.entry, *in.tl.exit)
		s.WorkedMinutes = worked
		s.BalanceMinutes = worked
		return s
	}

	if in.tl.recordCount == 0 {
		s.Status = summary.DayStatusAbsent
		s.BalanceMinutes = -expected
		return s
	}

	// An incomplete entry/exit pair cannot yield a trustworthy worked
	// total, so the day contributes zero to the balance until the missing
	// punch is recorded or adjusted.
	if in.tl.entry == nil || in.tl.exit == nil {
		s.MissingExit = true
		s.Status = summary.DayStatusMissingExit
		return s
	}

	entry := *in.tl.entry
	exit := *in.tl.exit

	// Entry side: snap within tolerance, measure delay against the late
	// threshold, optionally credit earliness beyond tolerance as overtime.
	calcStart := in.sched.start
	delay := 0
	earlyExtra := 0
	entryDiff := minutesBetween(in.sched.start, entry)
	switch {
	case entryDiff > in.pol.ToleranceAfter:
		calcStart = entry
		delay = entryDiff - in.pol.ToleranceAfter
	case entryDiff < -in.pol.ToleranceBefore:
		if in.pol.CountEarlyAsExtra {
			earlyExtra = -entryDiff - in.pol.ToleranceBefore
		}
	}

	// Exit side: snap within tolerance. Past tolerance the whole gap from
	// the scheduled end counts as overtime; the tolerance is a gate, not a
	// discount. Leaving early beyond tolerance carries no penalty.
	calcEnd := in.sched.end
	overtime := 0
	exitGap := minutesBetween(in.sched.end, exit)
	switch {
	case exitGap > in.pol.ToleranceAfter:
		calcEnd = exit
		overtime = exitGap
	case exitGap < -in.pol.ToleranceBefore:
		calcEnd = exit
	}

	worked := in.workedMinutes(calcStart, calcEnd)

	overtime = floorToBlock(overtime+earlyExtra, in.pol.RoundToNearest)

	// Delay is never rounded.
	originalDelay := delay
	compensated := 0
	if in.pol.CompensateBalance && in.pol.CompensationMode == policy.CompensationModeAuto &&
		delay > 0 && overtime > 0 {
		compensated = min(delay, overtime)
		delay -= compensated
		overtime -= compensated
	}

	s.WorkedMinutes = worked
	s.DelayMinutes = delay
	s.OvertimeMinutes = overtime
	s.CompensatedMinutes = compensated
	s.BalanceMinutes = worked - expected

	switch {
	case compensated > 0 && compensated >= originalDelay:
		s.Status = summary.DayStatusCompensated
	case delay > 0:
		s.Status = summary.DayStatusLate
	case overtime > 0:
		s.Status = summary.DayStatusExtra
	default:
		s.Status = summary.DayStatusNormal
	}
	return s
}

// workedMinutes measures the span between the calculation start and end with
// the break deduction applied: the fixed duration in automatic mode, the
// measured break intervals in manual mode. Never negative.
func (in dayInputs) workedMinutes(start, end time.Time) int {
	worked := minutesBetween(start, end)
	if in.pol.BreakMode == policy.BreakModeAutomatic {
		worked -= in.pol.BreakDuration
	} else {
		worked -= in.tl.breakMinutes()
	}
	if worked < 0 {
		worked = 0
	}
	return worked
}

// aggregateMonthly folds a month's daily summaries into the monthly summary.
// Days without a summary simply contribute nothing; sparse data is never an
// error.
func aggregateMonthly(companyID, employeeID, month string, days []summary.DailySummary, now time.Time) summary.MonthlySummary {
	m := summary.MonthlySummary{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Month:      month,
		UpdatedAt:  now,
	}

	for _, d := range days {
		m.ExpectedMinutes += d.ExpectedMinutes
		m.WorkedMinutes += d.WorkedMinutes
		m.DelayMinutes += d.DelayMinutes
		m.OvertimeMinutes += d.OvertimeMinutes
		m.CompensatedMinutes += d.CompensatedMinutes

		if d.RecordCount > 0 {
			m.DaysWorked++
		}
		if d.Status == summary.DayStatusAbsent {
			m.DaysAbsent++
		}
		if d.DelayMinutes > 0 {
			m.DaysLate++
		}
		if d.OvertimeMinutes > 0 {
			m.DaysWithOvertime++
		}
	}

	m.BalanceMinutes = m.WorkedMinutes - m.ExpectedMinutes
	switch {
	case m.BalanceMinutes > 0:
		m.Status = summary.MonthStatusPositive
	case m.BalanceMinutes < 0:
		m.Status = summary.MonthStatusNegative
	default:
		m.Status = summary.MonthStatusBalanced
	}
	return m
}
