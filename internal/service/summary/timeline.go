package summary

import (
	"log/slog"
	"sort"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
)

// breakInterval is one measured pause inside the work day.
type breakInterval struct {
	start time.Time
	end   time.Time
}

// timeline is the ordered interpretation of one employee's punch events for a
// single day: the opening entry, the closing exit and the paired breaks.
type timeline struct {
	entry  *time.Time
	exit   *time.Time
	breaks []breakInterval

	recordCount       int
	hasLocationIssues bool
}

// breakMinutes sums the measured break intervals.
func (t timeline) breakMinutes() int {
	total := 0
	for _, b := range t.breaks {
		total += int(b.end.Sub(b.start).Minutes())
	}
	return total
}

// buildTimeline folds a day's punch events into a timeline. The events are
// ordered by timestamp first so the result does not depend on insertion
// order. Labels that could not be normalized are resolved from context: the
// first opening punch of the day acts as an entry, anything after an entry
// acts as an exit. Events with a zero timestamp are skipped with a warning;
// one bad event never fails the whole day.
func buildTimeline(events []punch.PunchEvent) timeline {
	sorted := make([]punch.PunchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PunchedAt.Before(sorted[j].PunchedAt)
	})

	var tl timeline
	var pendingBreak *time.Time

	for _, event := range sorted {
		if event.Status != punch.StatusActive {
			continue
		}
		if event.PunchedAt.IsZero() {
			slog.Warn("Skipping punch event with zero timestamp",
				"punch_id", event.ID, "employee_id", event.EmployeeID)
			continue
		}

		tl.recordCount++
		if event.InsideRadius != nil && !*event.InsideRadius {
			tl.hasLocationIssues = true
		}

		kind := event.Kind
		if kind == punch.KindUnknown {
			if tl.entry == nil {
				kind = punch.KindEntry
			} else {
				kind = punch.KindExit
			}
		}

		punchedAt := event.PunchedAt
		switch kind {
		case punch.KindEntry:
			// First entry of the day wins; later entries after a lunch
			// exit-and-return do not reset the opening time.
			if tl.entry == nil {
				tl.entry = &punchedAt
			}
		case punch.KindExit:
			// Last exit of the day wins.
			tl.exit = &punchedAt
		case punch.KindBreakStart:
			if pendingBreak == nil {
				pendingBreak = &punchedAt
			}
		case punch.KindBreakEnd:
			if pendingBreak != nil && punchedAt.After(*pendingBreak) {
				tl.breaks = append(tl.breaks, breakInterval{start: *pendingBreak, end: punchedAt})
				pendingBreak = nil
			}
		}
	}

	// A trailing break_start without a matching break_end contributes nothing.
	return tl
}
