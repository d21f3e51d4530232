package gcalendar

import (
	"context"
	"fmt"

	"calendar-assistant/internal/event/repository"
	pkgGCalendar "calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// Calendar is the subset of the Google Calendar client this store needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req pkgGCalendar.CreateEventRequest) (*pkgGCalendar.Event, error)
	ListEvents(ctx context.Context, req pkgGCalendar.ListEventsRequest) ([]pkgGCalendar.Event, error)
}

type implRepository struct {
	calendar   Calendar
	calendarID string
	l          log.Logger
}

// New creates an event Repository that stores rows as Google Calendar events.
// Ownership is kept in the private extended property "user_id".
func New(calendar Calendar, calendarID string, l log.Logger) repository.Repository {
	if calendar == nil {
		panic("event/repository/gcalendar: calendar is required")
	}
	return &implRepository{calendar: calendar, calendarID: calendarID, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/gcalendar.%s", method)
}
