package http

import (
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// --- Request DTOs ---

type listReq struct {
	UserID string `form:"user_id" binding:"required"`
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  int    `form:"limit"`

	from time.Time
	to   time.Time
}

func (r *listReq) validate() error {
	var err error
	if r.From != "" {
		if r.from, err = time.Parse(time.RFC3339, r.From); err != nil {
			return errInvalidFrom
		}
	}
	if r.To != "" {
		if r.to, err = time.Parse(time.RFC3339, r.To); err != nil {
			return errInvalidTo
		}
	}
	return nil
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{
		UserID: r.UserID,
		From:   r.from,
		To:     r.to,
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

// EventResp is the wire shape of an Event. Timestamps use the
// millisecond UTC form, e.g. 2025-06-10T14:00:00.000Z.
type EventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Color       string `json:"color"`
	UserID      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewEventResp converts a model.Event into its wire shape.
func NewEventResp(ev model.Event) EventResp {
	return EventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   datemath.FormatISO(ev.StartTime),
		EndTime:     datemath.FormatISO(ev.EndTime),
		Location:    ev.Location,
		Color:       string(ev.Color),
		UserID:      ev.UserID,
		CreatedAt:   formatOptional(ev.CreatedAt),
		UpdatedAt:   formatOptional(ev.UpdatedAt),
	}
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return datemath.FormatISO(t)
}

type listResp struct {
	Events []EventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]EventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = NewEventResp(ev)
	}
	return listResp{Events: events, Count: len(events)}
}
