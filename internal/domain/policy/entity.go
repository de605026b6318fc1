package policy

import (
	"time"
)

// BreakMode determines how break time is deducted from a work day.
type BreakMode string

const (
	// BreakModeAutomatic deducts a fixed break duration from every worked day.
	BreakModeAutomatic BreakMode = "automatic"
	// BreakModeManual deducts only measured break_start/break_end intervals.
	BreakModeManual BreakMode = "manual"
)

var BreakModeValues = []string{
	string(BreakModeAutomatic),
	string(BreakModeManual),
}

// CompensationMode determines whether delays are offset against overtime.
type CompensationMode string

const (
	// CompensationModeManual leaves compensation to an administrative workflow.
	CompensationModeManual CompensationMode = "manual"
	// CompensationModeAuto offsets a day's delay against its own overtime.
	CompensationModeAuto CompensationMode = "auto"
)

var CompensationModeValues = []string{
	string(CompensationModeManual),
	string(CompensationModeAuto),
}

// DaySchedule is the expected working window for one weekday.
// A non-work day keeps WorkDay=false; Start/End are HH:MM strings.
type DaySchedule struct {
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	WorkDay bool   `json:"work_day"`
}

// WeeklySchedule maps lowercase English weekday names ("monday".."sunday")
// to their expected working window. Missing weekdays are treated as days off.
type WeeklySchedule map[string]DaySchedule

// WeekdayKey returns the map key used for a time.Weekday.
func WeekdayKey(d time.Weekday) string {
	return [...]string{
		"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	}[int(d)]
}

// ForDate looks up the schedule entry for the weekday of date.
// The second return reports whether the weekday is defined at all,
// so callers can distinguish "explicit day off" from "unscheduled".
func (ws WeeklySchedule) ForDate(date time.Time) (DaySchedule, bool) {
	if ws == nil {
		return DaySchedule{}, false
	}
	day, ok := ws[WeekdayKey(date.Weekday())]
	return day, ok
}

// Policy is the full attendance configuration of a company. It is an explicit
// value object passed into every calculation; the engine never reads ambient
// configuration state.
type Policy struct {
	CompanyID string

	WeeklySchedule WeeklySchedule

	// Tolerance window around scheduled times, in minutes.
	// Before covers the early side, After the late side.
	ToleranceBefore int
	ToleranceAfter  int

	// RoundToNearest floors overtime to the lower multiple of this block
	// size in minutes. 0 keeps overtime exact.
	RoundToNearest int

	BreakMode     BreakMode
	BreakDuration int // minutes, used in automatic mode

	// CountEarlyAsExtra credits arrival earlier than the tolerance window
	// as overtime.
	CountEarlyAsExtra bool

	// CompensateBalance enables offsetting delay against overtime; the
	// offset only happens automatically when CompensationMode is auto.
	CompensateBalance        bool
	CompensationMode         CompensationMode
	CompensationMonthlyLimit int // minutes, 0 = no limit

	// Geofencing input for punch recording. The engine itself only consumes
	// the per-event inside_radius flag.
	RequireLocation bool
	Latitude        *float64
	Longitude       *float64
	RadiusMeters    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default returns the policy used when a company has none configured:
// Monday-Friday 08:00-17:00, a small late tolerance, no automatic break
// and no automatic compensation.
func Default(companyID string) Policy {
	workDay := func(start, end string) DaySchedule {
		return DaySchedule{Start: start, End: end, WorkDay: true}
	}
	return Policy{
		CompanyID: companyID,
		WeeklySchedule: WeeklySchedule{
			"monday":    workDay("08:00", "17:00"),
			"tuesday":   workDay("08:00", "17:00"),
			"wednesday": workDay("08:00", "17:00"),
			"thursday":  workDay("08:00", "17:00"),
			"friday":    workDay("08:00", "17:00"),
			"saturday":  {WorkDay: false},
			"sunday":    {WorkDay: false},
		},
		ToleranceBefore:  0,
		ToleranceAfter:   5,
		RoundToNearest:   5,
		BreakMode:        BreakModeManual,
		BreakDuration:    60,
		CompensationMode: CompensationModeManual,
		RadiusMeters:     100,
	}
}
