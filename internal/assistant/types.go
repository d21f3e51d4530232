package assistant

import (
	"time"

	"calendar-assistant/internal/model"
)

// ActionEventCreated is reported when a directive was persisted.
const ActionEventCreated = "event_created"

// Outcome records what happened to the event directive of a reply.
type Outcome string

const (
	OutcomeNoDirective        Outcome = "no_directive"
	OutcomePersistenceSkipped Outcome = "persistence_skipped"
	OutcomeDirectiveInvalid   Outcome = "directive_invalid"
	OutcomePersistFailed      Outcome = "persist_failed"
	OutcomeCreated            Outcome = "created"
)

// --- UseCase Inputs ---

type ChatInput struct {
	Message         string
	LifeBalanceData map[string]any // optional wellness metrics
	Context         string         // informational tag, e.g. "chat" or "create_event"
	UserID          string         // empty disables persistence
	Timezone        string         // informational only
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response     string
	Suggestions  []string
	CreatedEvent *model.Event
	Action       string // ActionEventCreated or ""
	Outcome      Outcome
}

// GenerationContext is the clock snapshot a single request is anchored to.
type GenerationContext struct {
	Now       time.Time
	Year      int
	Month     time.Month
	Day       int
	ISO       string // 2025-06-10T09:00:00.000Z
	HumanDate string // Tuesday, June 10, 2025
	HumanTime string // 9:00 AM

	Today    string // 2025-06-10
	Tomorrow string
	NextWeek string
	// NextWeekday is a worked example for relative weekday requests.
	NextWeekday     time.Weekday
	NextWeekdayDate string
}
