package summary

import (
	"fmt"
	"testing"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDay is a Wednesday.
var testDay = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func testPolicy() policy.Policy {
	pol := policy.Default("company-1")
	pol.WeeklySchedule["wednesday"] = policy.DaySchedule{Start: "08:00", End: "17:00", WorkDay: true}
	pol.ToleranceBefore = 10
	pol.ToleranceAfter = 10
	pol.RoundToNearest = 0
	pol.BreakMode = policy.BreakModeAutomatic
	pol.BreakDuration = 60
	return pol
}

func punchAt(kind punch.Kind, clock string) punch.PunchEvent {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return punch.PunchEvent{
		ID:         fmt.Sprintf("punch-%s-%s", kind, clock),
		CompanyID:  "company-1",
		EmployeeID: "employee-1",
		PunchedAt: time.Date(testDay.Year(), testDay.Month(), testDay.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, time.UTC),
		Kind:   kind,
		Status: punch.StatusActive,
	}
}

func calculate(pol policy.Policy, events ...punch.PunchEvent) summary.DailySummary {
	return buildDailySummary(dayInputs{
		companyID:  "company-1",
		employeeID: "employee-1",
		date:       testDay,
		pol:        pol,
		sched:      resolveDaySchedule(pol, nil, testDay),
		tl:         buildTimeline(events),
		now:        time.Now().UTC(),
	})
}

func TestCalculator_WithinTolerance_Snapped(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	// Entry 08:07 and exit 17:03 both fall inside the 10 minute window,
	// so the calculation uses the scheduled times exactly.
	result := calculate(pol,
		punchAt(punch.KindEntry, "08:07"),
		punchAt(punch.KindExit, "17:03"),
	)

	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, 480, result.ExpectedMinutes)
	assert.Equal(t, 480, result.WorkedMinutes)
	assert.Equal(t, 0, result.BalanceMinutes)
	assert.Equal(t, "normal", string(result.Status))
	require.NotNil(t, result.ActualStart)
	assert.Equal(t, "08:07", *result.ActualStart)
}

func TestCalculator_LateBeyondTolerance(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	// 25 minutes late with 10 minutes of tolerance leaves 15 minutes of
	// delay, measured against the late threshold.
	result := calculate(pol,
		punchAt(punch.KindEntry, "08:25"),
		punchAt(punch.KindExit, "17:00"),
	)

	assert.Equal(t, 15, result.DelayMinutes)
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, "late", string(result.Status))
	// Worked from the real entry: 17:00 - 08:25 minus the automatic break.
	assert.Equal(t, 455, result.WorkedMinutes)
	assert.Equal(t, -25, result.BalanceMinutes)
}

func TestCalculator_MissingExit(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	result := calculate(pol, punchAt(punch.KindEntry, "08:00"))

	assert.True(t, result.MissingExit)
	assert.Equal(t, "missing_exit", string(result.Status))
	assert.Equal(t, 0, result.WorkedMinutes)
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, 0, result.BalanceMinutes)
	assert.Equal(t, 1, result.RecordCount)
}

func TestCalculator_OvertimeRounding_FlooredToBlock(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.RoundToNearest = 15

	// Exit at 17:52 gives a raw 52 minute overtime gap, floored to 45.
	result := calculate(pol,
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "17:52"),
	)

	assert.Equal(t, 45, result.OvertimeMinutes)
	assert.Equal(t, "extra", string(result.Status))
}

func TestCalculator_RoundingInvariant(t *testing.T) {
	t.Parallel()
	for m := 0; m <= 120; m++ {
		for _, b := range []int{1, 5, 10, 15, 30} {
			rounded := floorToBlock(m, b)
			assert.Equal(t, b*(m/b), rounded)
			assert.LessOrEqual(t, rounded, m)
		}
		assert.Equal(t, m, floorToBlock(m, 0))
	}
}

func TestCalculator_Absent_ScheduledDayWithoutPunches(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	result := calculate(pol)

	assert.Equal(t, "absent", string(result.Status))
	assert.Equal(t, 0, result.WorkedMinutes)
	assert.Equal(t, 480, result.ExpectedMinutes)
	assert.Equal(t, -480, result.BalanceMinutes)
	assert.Equal(t, 0, result.RecordCount)
}

func TestCalculator_DayOff_NoPunches(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.WeeklySchedule["wednesday"] = policy.DaySchedule{WorkDay: false}

	result := calculate(pol)

	assert.Equal(t, "day_off", string(result.Status))
	assert.Equal(t, 0, result.ExpectedMinutes)
	assert.Equal(t, 0, result.BalanceMinutes)
	assert.Nil(t, result.ScheduledStart)
}

func TestCalculator_WorkedDayOff(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.WeeklySchedule["wednesday"] = policy.DaySchedule{WorkDay: false}
	pol.BreakMode = policy.BreakModeManual

	result := calculate(pol,
		punchAt(punch.KindEntry, "09:00"),
		punchAt(punch.KindExit, "13:00"),
	)

	assert.Equal(t, "worked_day_off", string(result.Status))
	assert.Equal(t, 0, result.ExpectedMinutes)
	assert.Equal(t, 240, result.WorkedMinutes)
	assert.Equal(t, 240, result.BalanceMinutes)
	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, 0, result.OvertimeMinutes)
}

func TestCalculator_EarlyArrival_CountedAsExtraWhenEnabled(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.CountEarlyAsExtra = true

	// 30 minutes early with 10 minutes of tolerance credits 20.
	result := calculate(pol,
		punchAt(punch.KindEntry, "07:30"),
		punchAt(punch.KindExit, "17:00"),
	)

	assert.Equal(t, 20, result.OvertimeMinutes)
	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, "extra", string(result.Status))
	// The entry still snaps to the scheduled start for the worked total.
	assert.Equal(t, 480, result.WorkedMinutes)
}

func TestCalculator_EarlyArrival_IgnoredWhenDisabled(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.CountEarlyAsExtra = false

	result := calculate(pol,
		punchAt(punch.KindEntry, "07:30"),
		punchAt(punch.KindExit, "17:00"),
	)

	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, "normal", string(result.Status))
}

func TestCalculator_EarlyDeparture_NoPenalty(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	// Leaving at 15:00 is far beyond tolerance: the worked total shrinks,
	// but no delay minutes are recorded.
	result := calculate(pol,
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "15:00"),
	)

	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, 360, result.WorkedMinutes)
	assert.Equal(t, -120, result.BalanceMinutes)
	assert.Equal(t, "normal", string(result.Status))
}

func TestCalculator_OvertimeGap_CountsWholeGapPastTolerance(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	// 12 minutes past the scheduled end exceeds the 10 minute gate, so the
	// whole 12 minute gap counts, not just the excess beyond tolerance.
	result := calculate(pol,
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "17:12"),
	)

	assert.Equal(t, 12, result.OvertimeMinutes)
}

func TestCalculator_AutoCompensation_OffsetsDelayAgainstOvertime(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.CompensateBalance = true
	pol.CompensationMode = policy.CompensationModeAuto

	// 20 minutes of delay and 40 of overtime: 20 compensated, delay fully
	// cleared, 20 of overtime remain.
	result := calculate(pol,
		punchAt(punch.KindEntry, "08:30"),
		punchAt(punch.KindExit, "17:40"),
	)

	assert.Equal(t, 20, result.CompensatedMinutes)
	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, 20, result.OvertimeMinutes)
	assert.Equal(t, "compensated", string(result.Status))
}

func TestCalculator_AutoCompensation_PartialLeavesLate(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.CompensateBalance = true
	pol.CompensationMode = policy.CompensationModeAuto

	// 50 minutes of delay against 12 of overtime: only 12 compensated, the
	// day stays late.
	result := calculate(pol,
		punchAt(punch.KindEntry, "09:00"),
		punchAt(punch.KindExit, "17:12"),
	)

	assert.Equal(t, 12, result.CompensatedMinutes)
	assert.Equal(t, 38, result.DelayMinutes)
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, "late", string(result.Status))
}

func TestCalculator_ManualCompensationMode_NeverAutoCompensates(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.CompensateBalance = true
	pol.CompensationMode = policy.CompensationModeManual

	result := calculate(pol,
		punchAt(punch.KindEntry, "08:30"),
		punchAt(punch.KindExit, "17:40"),
	)

	assert.Equal(t, 0, result.CompensatedMinutes)
	assert.Equal(t, 20, result.DelayMinutes)
	assert.Equal(t, 40, result.OvertimeMinutes)
	assert.Equal(t, "late", string(result.Status))
}

func TestCalculator_ManualBreaks_MeasuredIntervalsDeducted(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.BreakMode = policy.BreakModeManual

	result := calculate(pol,
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindBreakStart, "12:00"),
		punchAt(punch.KindBreakEnd, "12:45"),
		punchAt(punch.KindExit, "17:00"),
	)

	// Manual mode: full scheduled span expected, measured 45 deducted.
	assert.Equal(t, 540, result.ExpectedMinutes)
	assert.Equal(t, 495, result.WorkedMinutes)
	assert.Equal(t, 4, result.RecordCount)
}

func TestCalculator_NoNegativeMinutes(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.BreakDuration = 600 // break longer than the worked span

	result := calculate(pol,
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "17:00"),
	)

	assert.GreaterOrEqual(t, result.WorkedMinutes, 0)
	assert.GreaterOrEqual(t, result.DelayMinutes, 0)
	assert.GreaterOrEqual(t, result.OvertimeMinutes, 0)
	assert.GreaterOrEqual(t, result.CompensatedMinutes, 0)
}

func TestCalculator_Idempotent(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	events := []punch.PunchEvent{
		punchAt(punch.KindEntry, "08:25"),
		punchAt(punch.KindExit, "17:40"),
	}

	first := calculate(pol, events...)
	second := calculate(pol, events...)

	first.UpdatedAt = second.UpdatedAt
	assert.Equal(t, first, second)
}

func TestCalculator_LocationIssueFlagPropagates(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	outside := false
	entry := punchAt(punch.KindEntry, "08:00")
	entry.InsideRadius = &outside
	result := calculate(pol, entry, punchAt(punch.KindExit, "17:00"))

	assert.True(t, result.HasLocationIssues)
}

func TestAggregateMonthly_SumsAndCounters(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	days := []summary.DailySummary{
		calculate(pol, punchAt(punch.KindEntry, "08:00"), punchAt(punch.KindExit, "17:00")),
		calculate(pol, punchAt(punch.KindEntry, "08:25"), punchAt(punch.KindExit, "17:00")),
		calculate(pol, punchAt(punch.KindEntry, "08:00"), punchAt(punch.KindExit, "17:52")),
		calculate(pol), // absent
	}

	m := aggregateMonthly("company-1", "employee-1", "2025-03", days, time.Now().UTC())

	expectedWorked := 0
	expectedExpected := 0
	for _, d := range days {
		expectedWorked += d.WorkedMinutes
		expectedExpected += d.ExpectedMinutes
	}
	assert.Equal(t, expectedWorked, m.WorkedMinutes)
	assert.Equal(t, expectedExpected, m.ExpectedMinutes)
	assert.Equal(t, expectedWorked-expectedExpected, m.BalanceMinutes)
	assert.Equal(t, 3, m.DaysWorked)
	assert.Equal(t, 1, m.DaysAbsent)
	assert.Equal(t, 1, m.DaysLate)
	assert.Equal(t, 1, m.DaysWithOvertime)
	assert.Equal(t, "negative", string(m.Status))
}

func TestAggregateMonthly_EmptyMonthIsBalanced(t *testing.T) {
	t.Parallel()
	m := aggregateMonthly("company-1", "employee-1", "2025-03", nil, time.Now().UTC())

	assert.Equal(t, 0, m.BalanceMinutes)
	assert.Equal(t, "balanced", string(m.Status))
	assert.Equal(t, 0, m.DaysWorked)
}
