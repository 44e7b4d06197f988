package ports

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotConfigured = errors.New("service not configured")
	ErrNoSelection   = errors.New("no item selected")
)

// StatusError is a protocol failure: the service answered with a non-success
// HTTP status. Detail carries the server-provided message, when any.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// UserMessage converts an error into text safe to show the user: the server
// detail for protocol failures, the fallback for everything else. Raw
// transport errors are never surfaced verbatim.
func UserMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return fallback
}
