package services

import (
	"errors"
	"fmt"
)

// Generation rejections. Each aborts the plan generator with a condition the
// HTTP layer maps to a distinct status; quota exhaustion in particular must
// never be conflated with validation errors.
var (
	ErrQuotaExceeded          = errors.New("daily ai generation limit reached")
	ErrProfileIncomplete      = errors.New("user profile or health data is incomplete")
	ErrDuplicatePlan          = errors.New("a plan was already generated for this date")
	ErrInsufficientCandidates = errors.New("not enough recipes available to generate a plan")
)

// ExternalServiceError marks a transient recommendation-service failure
// (timeout, non-2xx, malformed payload). Callers may retry later; no
// persisted state is touched before this point.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("recommendation service error: %v", e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
