package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrConfiguration   = errors.New("assistant is not configured")
	ErrUpstreamService = errors.New("generation service unavailable")
	ErrPersistence     = errors.New("failed to persist event")
)

// DirectiveParseError reports an event directive that could not be used.
type DirectiveParseError struct {
	Reason  string
	Payload string
	Err     error
}

func (e *DirectiveParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid event directive: %s: %v", e.Reason, e.Err)
	}
	return "invalid event directive: " + e.Reason
}

func (e *DirectiveParseError) Unwrap() error { return e.Err }
