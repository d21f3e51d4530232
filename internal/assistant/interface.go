package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one user message, creating at most one calendar event
	// when the generated reply carries an event directive.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
