package http

import (
	"strings"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// apology is the reply text of every failed request.
const apology = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// --- Request DTOs ---

type chatReq struct {
	Message         string         `json:"message"`
	LifeBalanceData map[string]any `json:"lifeBalanceData"`
	Context         string         `json:"context"`
	UserID          string         `json:"userId"`
	Timezone        string         `json:"timezone"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return assistant.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		Message:         r.Message,
		LifeBalanceData: r.LifeBalanceData,
		Context:         r.Context,
		UserID:          strings.TrimSpace(r.UserID),
		Timezone:        r.Timezone,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Color       string `json:"color"`
	UserID      string `json:"user_id"`
}

type chatResp struct {
	Response     string     `json:"response"`
	Suggestions  []string   `json:"suggestions"`
	CreatedEvent *eventResp `json:"createdEvent"`
	Action       *string    `json:"action"`
}

type errorResp struct {
	Error    string `json:"error"`
	Response string `json:"response"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	resp := chatResp{
		Response:    out.Response,
		Suggestions: out.Suggestions,
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	if out.CreatedEvent != nil {
		ev := newEventResp(*out.CreatedEvent)
		resp.CreatedEvent = &ev
	}
	if out.Action != "" {
		action := out.Action
		resp.Action = &action
	}
	return resp
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   datemath.FormatISO(ev.StartTime),
		EndTime:     datemath.FormatISO(ev.EndTime),
		Location:    ev.Location,
		Color:       string(ev.Color),
		UserID:      ev.UserID,
	}
}
