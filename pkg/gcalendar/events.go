package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

// CreateEvent inserts a new event and returns the stored copy.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		ColorId:     req.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if len(req.PrivateProperties) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{Private: req.PrivateProperties}
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return toEvent(created)
}

// ListEvents returns single (expanded) events ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime")

	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	for k, v := range req.PrivateProperties {
		call = call.PrivateExtendedProperty(k + "=" + v)
	}

	list, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		ev, err := toEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func toEvent(e *calendar.Event) (*Event, error) {
	start, err := parseEventTime(e.Start)
	if err != nil {
		return nil, fmt.Errorf("event %s start: %w", e.Id, err)
	}
	end, err := parseEventTime(e.End)
	if err != nil {
		return nil, fmt.Errorf("event %s end: %w", e.Id, err)
	}

	ev := &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		ColorID:     e.ColorId,
		HtmlLink:    e.HtmlLink,
		StartTime:   start,
		EndTime:     end,
	}
	if e.ExtendedProperties != nil {
		ev.PrivateProperties = e.ExtendedProperties.Private
	}
	if created, err := time.Parse(time.RFC3339, e.Created); err == nil {
		ev.Created = created
	}
	if updated, err := time.Parse(time.RFC3339, e.Updated); err == nil {
		ev.Updated = updated
	}
	return ev, nil
}

// parseEventTime accepts timed and all-day values; all-day dates are read as UTC midnight.
func parseEventTime(dt *calendar.EventDateTime) (time.Time, error) {
	if dt == nil {
		return time.Time{}, fmt.Errorf("missing time")
	}
	if dt.DateTime != "" {
		return time.Parse(time.RFC3339, dt.DateTime)
	}
	return time.Parse("2006-01-02", dt.Date)
}
