package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
)

const (
	confirmationDateLayout = "Monday, January 2"
	confirmationTimeLayout = "3:04 PM"
)

type extraction struct {
	reply   string
	event   *model.Event
	outcome assistant.Outcome
}

// extractEvent persists the reply's event directive, if any, on behalf of
// userID and rewrites the reply when a row was created. Every failure leaves
// the reply as generated.
func (uc *implUseCase) extractEvent(ctx context.Context, reply, userID string, year int) extraction {
	unchanged := func(o assistant.Outcome) extraction {
		return extraction{reply: reply, outcome: o}
	}

	if !hasDirective(reply) {
		return unchanged(assistant.OutcomeNoDirective)
	}
	if strings.TrimSpace(userID) == "" {
		uc.l.Infof(ctx, "assistant.usecase.extractEvent: directive present but no user id, persistence skipped")
		return unchanged(assistant.OutcomePersistenceSkipped)
	}

	span, err := findDirective(reply)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.extractEvent: %v", err)
		return unchanged(assistant.OutcomeDirectiveInvalid)
	}

	d, err := normalize(span.Raw, year)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.extractEvent: %v payload=%q", err, reply[span.Start:span.End])
		return unchanged(assistant.OutcomeDirectiveInvalid)
	}

	created, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		UserID:      userID,
		Title:       d.Title,
		Description: d.Description,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Location:    d.Location,
		Color:       d.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.extractEvent: %v: %v user=%s title=%q", assistant.ErrPersistence, err, userID, d.Title)
		return unchanged(assistant.OutcomePersistFailed)
	}

	uc.l.Infof(ctx, "assistant.usecase.extractEvent: created event id=%s user=%s start=%s", created.ID, userID, created.StartTime)

	text := tidy(cut(reply, span.Start, span.End))
	if !hasConfirmation(text) {
		text = appendParagraph(text, confirmation(created))
	}
	return extraction{reply: text, event: &created, outcome: assistant.OutcomeCreated}
}

func hasConfirmation(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "created") || strings.Contains(lower, "scheduled")
}

func confirmation(ev model.Event) string {
	start := ev.StartTime.UTC()
	return fmt.Sprintf("✅ I've created \"%s\" for %s at %s (UTC).",
		ev.Title, start.Format(confirmationDateLayout), start.Format(confirmationTimeLayout))
}

// cut removes s[start:end] and joins the remaining halves with at most one
// space when they meet mid-line.
func cut(s string, start, end int) string {
	before := strings.TrimRight(s[:start], " \t")
	after := strings.TrimLeft(s[end:], " \t")
	if before == "" || after == "" || strings.HasSuffix(before, "\n") || strings.HasPrefix(after, "\n") {
		return before + after
	}
	return before + " " + after
}

func tidy(s string) string {
	s = trailingSpaceRe.ReplaceAllString(s, "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func appendParagraph(text, p string) string {
	if text == "" {
		return p
	}
	return text + "\n\n" + p
}
