package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := &http.Client{Transport: &rewriteTransport{
		Transport: http.DefaultTransport,
		Host:      ts.Listener.Addr().String(),
	}}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	require.NoError(t, err)
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	mockCreds := []byte(`{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`)
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		assert.Error(t, err)
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), mockCreds, tokenPath)
		assert.Error(t, err)
	})

	t.Run("installed app with token", func(t *testing.T) {
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600))
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), mockCreds, tokenPath)
		assert.NoError(t, err)
	})

	t.Run("installed app with broken token", func(t *testing.T) {
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600))
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), mockCreds, tokenPath)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath)
		assert.Error(t, err)
	})
}

func TestCreateEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/team@example.com/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "evt-1",
			"summary": "Team meeting",
			"location": "Room A",
			"colorId": "9",
			"htmlLink": "https://calendar.google.com/event?eid=evt-1",
			"created": "2025-06-10T08:00:00Z",
			"start": {"dateTime": "2025-06-11T14:00:00Z"},
			"end": {"dateTime": "2025-06-11T15:00:00Z"},
			"extendedProperties": {"private": {"user_id": "u1"}}
		}`))
	})

	start := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)
	ev, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID:        "team@example.com",
		Summary:           "Team meeting",
		Location:          "Room A",
		ColorID:           "9",
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		Timezone:          "UTC",
		PrivateProperties: map[string]string{"user_id": "u1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "evt-1", ev.ID)
	assert.True(t, ev.StartTime.Equal(start))
	assert.Equal(t, "u1", ev.PrivateProperties["user_id"])
	assert.Equal(t, "9", got["colorId"])
	assert.Equal(t, "2025-06-11T14:00:00Z", got["start"].(map[string]any)["dateTime"])
}

func TestListEvents(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [
			{"id": "a", "summary": "Timed", "start": {"dateTime": "2025-06-11T14:00:00Z"}, "end": {"dateTime": "2025-06-11T15:00:00Z"}},
			{"id": "b", "summary": "All day", "start": {"date": "2025-06-12"}, "end": {"date": "2025-06-13"}}
		]}`))
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MaxResults:        50,
		PrivateProperties: map[string]string{"user_id": "u1"},
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Timed", events[0].Summary)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), events[1].StartTime)

	assert.Equal(t, []string{"user_id=u1"}, query["privateExtendedProperty"])
	assert.Equal(t, []string{"true"}, query["singleEvents"])
	assert.Equal(t, []string{"startTime"}, query["orderBy"])
	assert.Equal(t, []string{"50"}, query["maxResults"])
}
