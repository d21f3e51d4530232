package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/ics"
)

// List returns the caller's events in the requested window.
func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	opt, err := uc.listOptions(input)
	if err != nil {
		return event.ListOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: repo.ListEvents user=%s: %v", opt.UserID, err)
		return event.ListOutput{}, fmt.Errorf("list events: %w", err)
	}

	uc.l.Debugf(ctx, "event.usecase.List: user=%s count=%d", opt.UserID, len(events))
	return event.ListOutput{Events: events}, nil
}

// Feed renders the caller's events as an iCalendar document.
func (uc *implUseCase) Feed(ctx context.Context, input event.ListInput) (event.FeedOutput, error) {
	out, err := uc.List(ctx, input)
	if err != nil {
		return event.FeedOutput{}, err
	}
	return event.FeedOutput{
		Calendar: ics.Render(input.UserID, out.Events, uc.now()),
	}, nil
}

func (uc *implUseCase) listOptions(input event.ListInput) (repository.ListEventsOptions, error) {
	if input.UserID == "" {
		return repository.ListEventsOptions{}, event.ErrMissingUserID
	}
	if !input.From.IsZero() && !input.To.IsZero() && !input.From.Before(input.To) {
		return repository.ListEventsOptions{}, event.ErrInvalidRange
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return repository.ListEventsOptions{
		UserID: input.UserID,
		From:   input.From.UTC(),
		To:     input.To.UTC(),
		Limit:  limit,
	}, nil
}
