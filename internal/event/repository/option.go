package repository

import (
	"time"

	"calendar-assistant/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
// Times are expected in UTC.
type CreateEventOptions struct {
	UserID      string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Color       model.Color
}

// ListEventsOptions filters a user's events. Zero From/To leave that side open.
type ListEventsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
}
