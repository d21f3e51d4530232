package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
	uid func() string
}

// New creates a SQLite-backed event Repository. The schema must already be migrated (see Migrations).
func New(db *sql.DB, l log.Logger, opts ...Option) repository.Repository {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l, now: time.Now, uid: newID}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option customizes the repository.
type Option func(*implRepository)

// WithClock overrides the clock used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
