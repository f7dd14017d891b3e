package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when no webhook URL is set.
	ErrNotConfigured = errors.New("workflow webhook not configured")
	// ErrTimeout is returned when the webhook does not answer in time.
	ErrTimeout = errors.New("workflow webhook timed out")
)

// StatusError is a non-2xx webhook response.
type StatusError struct {
	Action     Action
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("workflow %s: status %d", e.Action, e.StatusCode)
	}
	return fmt.Sprintf("workflow %s: status %d: %s", e.Action, e.StatusCode, e.Body)
}

// SchemaError is a response that does not match the action's schema.
type SchemaError struct {
	Action Action
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("workflow %s: invalid response: %v", e.Action, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
