package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns a caller's events ordered by start time.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Feed renders the same events as an iCalendar document.
	Feed(ctx context.Context, input ListInput) (FeedOutput, error)
}
