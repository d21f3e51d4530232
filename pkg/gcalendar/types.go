package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID        string
	Summary           string
	Description       string
	Location          string
	ColorID           string // Google event palette id, "1".."11"
	StartTime         time.Time
	EndTime           time.Time
	Timezone          string // e.g. "UTC"
	PrivateProperties map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID                string
	Summary           string
	Description       string
	Location          string
	ColorID           string
	HtmlLink          string
	StartTime         time.Time
	EndTime           time.Time
	PrivateProperties map[string]string
	Created           time.Time
	Updated           time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID        string
	TimeMin           time.Time
	TimeMax           time.Time
	MaxResults        int64
	PrivateProperties map[string]string // matched as privateExtendedProperty=k=v
}
