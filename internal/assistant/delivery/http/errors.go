package http

import (
	"errors"
	"net/http"

	"calendar-assistant/internal/assistant"
)

type chatError struct {
	status  int
	message string
}

var (
	errInvalidRequest = &chatError{status: http.StatusBadRequest, message: assistant.ErrEmptyMessage.Error()}
	errMalformedBody  = &chatError{status: http.StatusBadRequest, message: "invalid request body"}
	errRateLimited    = &chatError{status: http.StatusTooManyRequests, message: "rate limit exceeded"}
	errNotConfigured  = &chatError{status: http.StatusInternalServerError, message: assistant.ErrConfiguration.Error()}
	errUpstream       = &chatError{status: http.StatusInternalServerError, message: assistant.ErrUpstreamService.Error()}
)

// mapError translates request and use-case errors into the failure reply.
// Upstream detail stays in the logs.
func (h *handler) mapError(err error) *chatError {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return errInvalidRequest
	case errors.Is(err, assistant.ErrConfiguration):
		return errNotConfigured
	case errors.Is(err, assistant.ErrUpstreamService):
		return errUpstream
	default:
		return errMalformedBody
	}
}
