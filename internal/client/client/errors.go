package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
)

// RequestError is the failure of a single repository call.
type RequestError struct {
	Op      string // operation, e.g. "list all"
	Status  int    // HTTP status, 0 when no response was received
	Message string // user-facing message
	Err     error  // underlying cause, may be nil
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text of err when it is a *RequestError,
// and fallback otherwise.
func Message(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
