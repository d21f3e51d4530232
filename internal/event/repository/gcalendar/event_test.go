package gcalendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/internal/event/repository"
	eventGCalendar "calendar-assistant/internal/event/repository/gcalendar"
	"calendar-assistant/internal/model"
	pkgGCalendar "calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

type mockCalendar struct {
	createReq  pkgGCalendar.CreateEventRequest
	listReq    pkgGCalendar.ListEventsRequest
	createErr  error
	listResult []pkgGCalendar.Event
	listErr    error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req pkgGCalendar.CreateEventRequest) (*pkgGCalendar.Event, error) {
	m.createReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &pkgGCalendar.Event{
		ID:          "g-1",
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		ColorID:     req.ColorID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req pkgGCalendar.ListEventsRequest) ([]pkgGCalendar.Event, error) {
	m.listReq = req
	return m.listResult, m.listErr
}

func TestCreateEvent(t *testing.T) {
	cal := &mockCalendar{}
	repo := eventGCalendar.New(cal, "primary", log.NewNop())
	start := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)

	ev, err := repo.CreateEvent(context.Background(), repository.CreateEventOptions{
		UserID: "u1", Title: "Team meeting", StartTime: start, EndTime: start.Add(time.Hour), Color: model.ColorPurple,
	})
	require.NoError(t, err)

	assert.Equal(t, "g-1", ev.ID)
	assert.Equal(t, "u1", ev.UserID)
	assert.Equal(t, model.ColorPurple, ev.Color)
	assert.Equal(t, "3", cal.createReq.ColorID)
	assert.Equal(t, "primary", cal.createReq.CalendarID)
	assert.Equal(t, map[string]string{"user_id": "u1"}, cal.createReq.PrivateProperties)
}

func TestCreateEvent_DefaultColorAndFailure(t *testing.T) {
	cal := &mockCalendar{}
	repo := eventGCalendar.New(cal, "", log.NewNop())

	_, err := repo.CreateEvent(context.Background(), repository.CreateEventOptions{UserID: "u1", Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "9", cal.createReq.ColorID)

	cal.createErr = errors.New("quota exceeded")
	_, err = repo.CreateEvent(context.Background(), repository.CreateEventOptions{UserID: "u1", Title: "x"})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
}

func TestListEvents(t *testing.T) {
	cal := &mockCalendar{listResult: []pkgGCalendar.Event{
		{ID: "a", Summary: "A", ColorID: "11"},
		{ID: "b", Summary: "B", ColorID: ""},
	}}
	repo := eventGCalendar.New(cal, "primary", log.NewNop())
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	events, err := repo.ListEvents(context.Background(), repository.ListEventsOptions{UserID: "u1", From: from, Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.ColorRed, events[0].Color)
	assert.Equal(t, model.ColorBlue, events[1].Color)
	assert.Equal(t, "u1", events[1].UserID)
	assert.Equal(t, int64(10), cal.listReq.MaxResults)
	assert.Equal(t, from, cal.listReq.TimeMin)

	cal.listErr = errors.New("boom")
	_, err = repo.ListEvents(context.Background(), repository.ListEventsOptions{UserID: "u1"})
	assert.ErrorIs(t, err, repository.ErrFailedToList)
}
