package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalid       = errors.New("invalid")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrUpstream      = errors.New("upstream failure")
)

// invalidf returns an ErrInvalid carrying a user-facing message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// QuotaError is returned when a plan's monthly limit is reached.
type QuotaError struct {
	Kind  string
	Limit int
	Used  int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("monthly %s quota of %d reached", e.Kind, e.Limit)
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}
