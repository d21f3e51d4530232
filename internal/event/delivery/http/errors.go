package http

import (
	"errors"
	"net/http"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/response"
)

var (
	errMissingUserID = response.NewHTTPError(http.StatusBadRequest, "user_id is required")
	errInvalidFrom   = response.NewHTTPError(http.StatusBadRequest, "from must be an RFC3339 timestamp")
	errInvalidTo     = response.NewHTTPError(http.StatusBadRequest, "to must be an RFC3339 timestamp")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrMissingUserID):
		return errMissingUserID
	case errors.Is(err, event.ErrInvalidRange):
		return response.NewHTTPError(http.StatusBadRequest, event.ErrInvalidRange.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
