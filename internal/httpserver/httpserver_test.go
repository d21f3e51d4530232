package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventSqlite "calendar-assistant/internal/event/repository/sqlite"
	"calendar-assistant/pkg/log"
	pkgSqlite "calendar-assistant/pkg/sqlite"
)

func newTestServer(t *testing.T) *HTTPServer {
	return newLimitedTestServer(t, 0)
}

func newLimitedTestServer(t *testing.T, requestsPerMin int) *HTTPServer {
	t.Helper()
	db, err := pkgSqlite.Open(pkgSqlite.MemoryPath, eventSqlite.Migrations)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv, err := New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		RequestsPerMin: requestsPerMin,
		EventRepo:      eventSqlite.New(db, log.NewNop()),
		DB:             db,
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	assert.EqualError(t, err, "event repository is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events?user_id=u1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// no generation client configured
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.gin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "assistant is not configured", body["error"])
	assert.NotEmpty(t, body["response"])
}

func TestEventRoutesRateLimited(t *testing.T) {
	srv := newLimitedTestServer(t, 10)

	codes := make([]int, 0, 2)
	for range 2 {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events?user_id=u1", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
