package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/log"
)

type mockRepo struct {
	gotList repository.ListEventsOptions
	events  []model.Event
	err     error
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	return model.Event{}, errors.New("not used")
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	m.gotList = opt
	return m.events, m.err
}

var fixedNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockRepo) event.UseCase {
	return New(log.NewNop(), repo, func() time.Time { return fixedNow })
}

func TestList(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     event.ListInput
		wantErr   error
		wantLimit int
	}{
		{name: "missing user", input: event.ListInput{}, wantErr: event.ErrMissingUserID},
		{name: "inverted range", input: event.ListInput{UserID: "u1", From: to, To: from}, wantErr: event.ErrInvalidRange},
		{name: "empty range", input: event.ListInput{UserID: "u1", From: from, To: from}, wantErr: event.ErrInvalidRange},
		{name: "default limit", input: event.ListInput{UserID: "u1", From: from, To: to}, wantLimit: defaultListLimit},
		{name: "open range", input: event.ListInput{UserID: "u1", Limit: 5}, wantLimit: 5},
		{name: "limit capped", input: event.ListInput{UserID: "u1", Limit: 10_000}, wantLimit: maxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{events: []model.Event{{ID: "e1"}}}
			out, err := newTestUseCase(repo).List(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, out.Events, 1)
			assert.Equal(t, tt.wantLimit, repo.gotList.Limit)
			assert.Equal(t, "u1", repo.gotList.UserID)
		})
	}
}

func TestList_RepoError(t *testing.T) {
	repo := &mockRepo{err: repository.ErrFailedToList}
	_, err := newTestUseCase(repo).List(context.Background(), event.ListInput{UserID: "u1"})
	assert.ErrorIs(t, err, repository.ErrFailedToList)
}

func TestFeed(t *testing.T) {
	start := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)
	repo := &mockRepo{events: []model.Event{
		{ID: "e1", Title: "Team meeting", StartTime: start, EndTime: start.Add(time.Hour), Color: model.ColorBlue},
	}}

	out, err := newTestUseCase(repo).Feed(context.Background(), event.ListInput{UserID: "u1"})
	require.NoError(t, err)

	body := string(out.Calendar)
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:Team meeting")
	assert.Contains(t, body, "UID:e1@calendar-assistant")
}

func TestFeed_MissingUser(t *testing.T) {
	_, err := newTestUseCase(&mockRepo{}).Feed(context.Background(), event.ListInput{})
	assert.ErrorIs(t, err, event.ErrMissingUserID)
}
