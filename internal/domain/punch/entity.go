package punch

import (
	"strings"
	"time"
)

// Kind is the closed set of punch event roles used by the calculation engine.
type Kind string

const (
	KindEntry      Kind = "entry"
	KindExit       Kind = "exit"
	KindBreakStart Kind = "break_start"
	KindBreakEnd   Kind = "break_end"
	// KindUnknown marks a label that could not be normalized. The timeline
	// builder resolves it from context: exit when the day already has an
	// opening punch, entry otherwise.
	KindUnknown Kind = ""
)

// Status is the validity of a punch event. Only active events participate in
// summary calculation; invalidation and adjustment are external workflows.
type Status string

const (
	StatusActive      Status = "active"
	StatusInvalidated Status = "invalidated"
	StatusAdjusted    Status = "adjusted"
)

// WorkMode records where the employee was working when the punch was made.
type WorkMode string

const (
	WorkModeOnsite   WorkMode = "onsite"
	WorkModeRemote   WorkMode = "remote"
	WorkModeExternal WorkMode = "external"
)

var WorkModeValues = []string{
	string(WorkModeOnsite),
	string(WorkModeRemote),
	string(WorkModeExternal),
}

// PunchEvent is an immutable recorded punch. The engine never mutates events;
// corrections happen through the invalidation workflow.
type PunchEvent struct {
	ID         string
	CompanyID  string
	EmployeeID string

	// PunchedAt is the real timestamp, always shown to users. The
	// tolerance-snapped calculation timestamp is derived by the engine and
	// never stored.
	PunchedAt time.Time

	Kind     Kind
	RawLabel string
	Status   Status
	WorkMode WorkMode

	Latitude  *float64
	Longitude *float64
	// InsideRadius is the geofence verdict computed at record time.
	// nil when location was not required or not provided.
	InsideRadius *bool

	CreatedAt time.Time
}

// kindLabels maps the historical free-text labels (Portuguese and English,
// with and without accents) to the closed kind set.
var kindLabels = map[string]Kind{
	"entry":            KindEntry,
	"entrada":          KindEntry,
	"in":               KindEntry,
	"clock_in":         KindEntry,
	"exit":             KindExit,
	"saida":            KindExit,
	"out":              KindExit,
	"clock_out":        KindExit,
	"break_start":      KindBreakStart,
	"start_break":      KindBreakStart,
	"intervalo_inicio": KindBreakStart,
	"pausa_inicio":     KindBreakStart,
	"almoco_inicio":    KindBreakStart,
	"break_end":        KindBreakEnd,
	"end_break":        KindBreakEnd,
	"intervalo_fim":    KindBreakEnd,
	"pausa_fim":        KindBreakEnd,
	"almoco_fim":       KindBreakEnd,
}

var accentFolder = strings.NewReplacer(
	"á", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u",
	"ç", "c",
	"-", "_", " ", "_",
)

// NormalizeKind folds a raw punch label into the closed kind set.
// Unrecognized labels yield KindUnknown; they are resolved contextually when
// the day timeline is built, never rejected.
func NormalizeKind(label string) Kind {
	normalized := accentFolder.Replace(strings.ToLower(strings.TrimSpace(label)))
	if kind, ok := kindLabels[normalized]; ok {
		return kind
	}
	return KindUnknown
}
