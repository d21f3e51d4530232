package gcalendar

import (
	"context"
	"fmt"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	pkgGCalendar "calendar-assistant/pkg/gcalendar"
)

const userIDProperty = "user_id"

// Google Calendar event palette ids.
var colorIDs = map[model.Color]string{
	model.ColorBlue:   "9",
	model.ColorPurple: "3",
	model.ColorGreen:  "10",
	model.ColorOrange: "6",
	model.ColorRed:    "11",
	model.ColorPink:   "4",
}

func colorFromID(id string) model.Color {
	for c, gid := range colorIDs {
		if gid == id {
			return c
		}
	}
	return model.DefaultColor
}

// CreateEvent inserts the event into the configured calendar.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	color := opt.Color
	if color == "" {
		color = model.DefaultColor
	}

	created, err := r.calendar.CreateEvent(ctx, pkgGCalendar.CreateEventRequest{
		CalendarID:        r.calendarID,
		Summary:           opt.Title,
		Description:       opt.Description,
		Location:          opt.Location,
		ColorID:           colorIDs[color],
		StartTime:         opt.StartTime.UTC(),
		EndTime:           opt.EndTime.UTC(),
		Timezone:          "UTC",
		PrivateProperties: map[string]string{userIDProperty: opt.UserID},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	ev := toModel(*created)
	ev.UserID = opt.UserID
	return ev, nil
}

// ListEvents lists the user's events from the configured calendar.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	items, err := r.calendar.ListEvents(ctx, pkgGCalendar.ListEventsRequest{
		CalendarID:        r.calendarID,
		TimeMin:           opt.From,
		TimeMax:           opt.To,
		MaxResults:        int64(opt.Limit),
		PrivateProperties: map[string]string{userIDProperty: opt.UserID},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		ev := toModel(item)
		ev.UserID = opt.UserID
		events = append(events, ev)
	}
	return events, nil
}

func toModel(e pkgGCalendar.Event) model.Event {
	return model.Event{
		ID:          e.ID,
		Title:       e.Summary,
		Description: e.Description,
		StartTime:   e.StartTime.UTC(),
		EndTime:     e.EndTime.UTC(),
		Location:    e.Location,
		Color:       colorFromID(e.ColorID),
		CreatedAt:   e.Created.UTC(),
		UpdatedAt:   e.Updated.UTC(),
	}
}
