package utils

import "errors"

var (
	ErrCountryNotFound    = errors.New("country not found")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDuration    = errors.New("trip duration must be between 1 and 90 days")
	ErrStorageFailure     = errors.New("storage write failed")
	ErrDatabaseError      = errors.New("database error")
	ErrAdvisorUnavailable = errors.New("advisor unavailable")
)
