package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/event/repository"
	eventSqlite "calendar-assistant/internal/event/repository/sqlite"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
	pkgSqlite "calendar-assistant/pkg/sqlite"
)

// 2025-06-10 is a Tuesday.
var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func keepOrder(s []string) {}

type mockGemini struct {
	reply string
	err   error
	calls int
	req   *gemini.Request
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.calls++
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.Response{
		Content:      gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: m.reply}}},
		FinishReason: "STOP",
	}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

type mockRepo struct {
	calls int
	got   repository.CreateEventOptions
	err   error
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	m.calls++
	m.got = opt
	if m.err != nil {
		return model.Event{}, m.err
	}
	return model.Event{
		ID:        "ev-1",
		UserID:    opt.UserID,
		Title:     opt.Title,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
		Color:     opt.Color,
	}, nil
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	return nil, nil
}

func newTestUseCase(llm gemini.IGemini, repo repository.EventRepository) assistant.UseCase {
	return New(log.NewNop(), llm, repo, WithClock(fixedClock), WithShuffler(keepOrder))
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := pkgSqlite.Open(pkgSqlite.MemoryPath, eventSqlite.Migrations)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
