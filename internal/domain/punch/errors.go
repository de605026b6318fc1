package punch

import "errors"

// Punch domain errors
var (
	ErrPunchNotFound         = errors.New("punch event not found")
	ErrPunchAlreadyProcessed = errors.New("punch event has already been invalidated or adjusted")
)
