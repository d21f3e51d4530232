package ics

import (
	"bytes"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/internal/model"
)

func TestRender(t *testing.T) {
	start := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "e1", Title: "Team meeting", StartTime: start, EndTime: start.Add(time.Hour), Location: "Room 4", Color: model.ColorPurple},
		{ID: "e2", Title: "Gym", StartTime: start.Add(4 * time.Hour), EndTime: start.Add(5 * time.Hour), Color: model.ColorGreen},
	}

	out := Render("u1", events, start)

	cal, err := ical.ParseCalendar(bytes.NewReader(out))
	require.NoError(t, err)
	parsed := cal.Events()
	require.Len(t, parsed, 2)

	assert.Equal(t, "e1@calendar-assistant", parsed[0].Id())
	assert.Equal(t, "Team meeting", parsed[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Room 4", parsed[0].GetProperty(ical.ComponentPropertyLocation).Value)
	gotStart, err := parsed[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))

	assert.Nil(t, parsed[1].GetProperty(ical.ComponentPropertyLocation))
}

func TestRender_Empty(t *testing.T) {
	out := string(Render("", nil, time.Now()))
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
