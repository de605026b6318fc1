package summary

import (
	"math/rand"
	"testing"

	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimeline_DeterministicUnderReordering(t *testing.T) {
	t.Parallel()
	events := []punch.PunchEvent{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindBreakStart, "12:00"),
		punchAt(punch.KindBreakEnd, "13:00"),
		punchAt(punch.KindExit, "17:00"),
	}

	reference := buildTimeline(events)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]punch.PunchEvent, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, reference, buildTimeline(shuffled))
	}
}

func TestBuildTimeline_FirstEntryAndLastExitWin(t *testing.T) {
	t.Parallel()
	tl := buildTimeline([]punch.PunchEvent{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "12:00"),
		punchAt(punch.KindEntry, "13:00"),
		punchAt(punch.KindExit, "17:30"),
	})

	require.NotNil(t, tl.entry)
	require.NotNil(t, tl.exit)
	assert.Equal(t, "08:00", tl.entry.Format("15:04"))
	assert.Equal(t, "17:30", tl.exit.Format("15:04"))
	assert.Equal(t, 4, tl.recordCount)
}

func TestBuildTimeline_UnknownKindsResolvedFromContext(t *testing.T) {
	t.Parallel()
	first := punchAt(punch.KindUnknown, "08:02")
	second := punchAt(punch.KindUnknown, "17:05")

	tl := buildTimeline([]punch.PunchEvent{second, first})

	require.NotNil(t, tl.entry)
	require.NotNil(t, tl.exit)
	assert.Equal(t, "08:02", tl.entry.Format("15:04"))
	assert.Equal(t, "17:05", tl.exit.Format("15:04"))
}

func TestBuildTimeline_TrailingBreakStartDiscarded(t *testing.T) {
	t.Parallel()
	tl := buildTimeline([]punch.PunchEvent{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindBreakStart, "12:00"),
		punchAt(punch.KindExit, "17:00"),
	})

	assert.Empty(t, tl.breaks)
	assert.Equal(t, 0, tl.breakMinutes())
}

func TestBuildTimeline_MultipleBreaksPairedInOrder(t *testing.T) {
	t.Parallel()
	tl := buildTimeline([]punch.PunchEvent{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindBreakStart, "10:00"),
		punchAt(punch.KindBreakEnd, "10:15"),
		punchAt(punch.KindBreakStart, "12:00"),
		punchAt(punch.KindBreakEnd, "13:00"),
		punchAt(punch.KindExit, "17:00"),
	})

	require.Len(t, tl.breaks, 2)
	assert.Equal(t, 75, tl.breakMinutes())
}

func TestBuildTimeline_SkipsZeroTimestampAndInactive(t *testing.T) {
	t.Parallel()
	bad := punch.PunchEvent{Kind: punch.KindEntry, Status: punch.StatusActive}
	invalidated := punchAt(punch.KindExit, "12:00")
	invalidated.Status = punch.StatusInvalidated

	tl := buildTimeline([]punch.PunchEvent{
		bad,
		invalidated,
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "17:00"),
	})

	assert.Equal(t, 2, tl.recordCount)
	require.NotNil(t, tl.exit)
	assert.Equal(t, "17:00", tl.exit.Format("15:04"))
}

func TestBuildTimeline_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	events := []punch.PunchEvent{
		punchAt(punch.KindExit, "17:00"),
		punchAt(punch.KindEntry, "08:00"),
	}

	buildTimeline(events)

	assert.Equal(t, "17:00", events[0].PunchedAt.Format("15:04"))
}

func TestResolveDaySchedule_CompanySchedule(t *testing.T) {
	t.Parallel()
	pol := testPolicy()

	sched := resolveDaySchedule(pol, nil, testDay)
	require.NotNil(t, sched)
	assert.Equal(t, "08:00", sched.start.Format("15:04"))
	assert.Equal(t, "17:00", sched.end.Format("15:04"))
	assert.Equal(t, 540, sched.spanMinutes())
}

func TestResolveDaySchedule_OverrideWeekdayWins(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	override := policy.WeeklySchedule{
		"wednesday": {Start: "14:00", End: "20:00", WorkDay: true},
	}

	sched := resolveDaySchedule(pol, override, testDay)
	require.NotNil(t, sched)
	assert.Equal(t, "14:00", sched.start.Format("15:04"))
	assert.Equal(t, 360, sched.spanMinutes())
}

func TestResolveDaySchedule_MissingOverrideWeekdayFallsBackToCompany(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	override := policy.WeeklySchedule{
		"wednesday": {Start: "14:00", End: "20:00", WorkDay: true},
	}

	// The override does not define thursday, so the company window applies.
	thursday := testDay.AddDate(0, 0, 1)
	sched := resolveDaySchedule(pol, override, thursday)
	require.NotNil(t, sched)
	assert.Equal(t, "08:00", sched.start.Format("15:04"))
	assert.Equal(t, "17:00", sched.end.Format("15:04"))
}

func TestResolveDaySchedule_OverrideDayOffDoesNotFallBack(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	override := policy.WeeklySchedule{
		"wednesday": {WorkDay: false},
	}

	// An explicit day-off entry in the override wins over the company
	// work day; only an absent weekday falls back.
	assert.Nil(t, resolveDaySchedule(pol, override, testDay))
}

func TestResolveDaySchedule_OvernightShiftWrapsToNextDay(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.WeeklySchedule["wednesday"] = policy.DaySchedule{Start: "22:00", End: "06:00", WorkDay: true}

	sched := resolveDaySchedule(pol, nil, testDay)
	require.NotNil(t, sched)
	assert.True(t, sched.end.After(sched.start))
	assert.Equal(t, 480, sched.spanMinutes())
	assert.Equal(t, testDay.Day()+1, sched.end.Day())
}

func TestResolveDaySchedule_MalformedClockTreatedAsDayOff(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	pol.WeeklySchedule["wednesday"] = policy.DaySchedule{Start: "not-a-clock", End: "17:00", WorkDay: true}

	assert.Nil(t, resolveDaySchedule(pol, nil, testDay))
}

func TestResolveDaySchedule_MissingWeekdayIsDayOff(t *testing.T) {
	t.Parallel()
	pol := testPolicy()
	delete(pol.WeeklySchedule, "wednesday")

	assert.Nil(t, resolveDaySchedule(pol, nil, testDay))
}
