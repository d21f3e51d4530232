package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network call when no API key is configured.
	ErrMissingAPIKey = errors.New("gemini: APIKey is required")

	// ErrEmptyResponse is returned when the API answers without any candidate text.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// APIError is a non-200 answer from the Gemini API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}
