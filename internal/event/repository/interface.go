package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// Repository is the composed interface for the event store.
type Repository interface {
	EventRepository
}

// EventRepository defines the data access methods for Event rows.
type EventRepository interface {
	// CreateEvent inserts one row and returns it with its store-assigned ID and timestamps.
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}
