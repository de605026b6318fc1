package policy

import "errors"

// Policy domain errors
var (
	ErrPolicyNotFound  = errors.New("no attendance policy found for company")
	ErrInvalidSchedule = errors.New("weekly schedule is invalid")
)
