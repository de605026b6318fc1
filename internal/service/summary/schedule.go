package summary

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
)

// daySchedule is a resolved scheduled window anchored on a concrete date.
// end is always after start; overnight shifts wrap into the next day.
type daySchedule struct {
	start time.Time
	end   time.Time
}

func (d daySchedule) spanMinutes() int {
	return int(d.end.Sub(d.start).Minutes())
}

// clockOnDate anchors an HH:MM or HH:MM:SS clock string onto a date in UTC.
func clockOnDate(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		parsed, err = time.Parse("15:04:05", clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid clock value %q: %w", clock, err)
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), nil
}

// resolveDaySchedule returns the scheduled window for a date, or nil when the
// date is a day off. Resolution is per weekday: an entry in the employee
// override wins, including an explicit day-off entry; a weekday the override
// does not define falls back to the company weekly schedule. A weekday
// defined in neither is unscheduled. A weekday with malformed clock values is
// treated as a day off rather than failing the calculation.
func resolveDaySchedule(pol policy.Policy, override policy.WeeklySchedule, date time.Time) *daySchedule {
	day, ok := override.ForDate(date)
	if !ok {
		day, ok = pol.WeeklySchedule.ForDate(date)
	}
	if !ok || !day.WorkDay {
		return nil
	}

	start, err := clockOnDate(date, day.Start)
	if err != nil {
		slog.Warn("Schedule entry has invalid start clock, treating day as off",
			"company_id", pol.CompanyID, "weekday", policy.WeekdayKey(date.Weekday()), "error", err)
		return nil
	}
	end, err := clockOnDate(date, day.End)
	if err != nil {
		slog.Warn("Schedule entry has invalid end clock, treating day as off",
			"company_id", pol.CompanyID, "weekday", policy.WeekdayKey(date.Weekday()), "error", err)
		return nil
	}

	// Overnight shift: the end clock belongs to the next calendar day.
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return &daySchedule{start: start, end: end}
}
