package event

import (
	"time"

	"calendar-assistant/internal/model"
)

// --- UseCase Inputs ---

type ListInput struct {
	UserID string
	From   time.Time // zero = unbounded
	To     time.Time // zero = unbounded
	Limit  int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Events []model.Event
}

type FeedOutput struct {
	Calendar []byte // text/calendar body
}
