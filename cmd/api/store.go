package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"calendar-assistant/config"
	"calendar-assistant/internal/event/repository"
	eventGCalendar "calendar-assistant/internal/event/repository/gcalendar"
	eventSqlite "calendar-assistant/internal/event/repository/sqlite"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
	pkgSqlite "calendar-assistant/pkg/sqlite"
)

type eventStore struct {
	repo repository.Repository
	db   *sql.DB // nil for gcalendar
}

func (s eventStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openEventStore(ctx context.Context, cfg config.EventStoreConfig, l log.Logger) (eventStore, error) {
	switch cfg.Driver {
	case config.EventStoreGCalendar:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
		if err != nil {
			return eventStore{}, fmt.Errorf("google calendar: %w", err)
		}
		return eventStore{repo: eventGCalendar.New(client, cfg.CalendarID, l)}, nil

	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return eventStore{}, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		db, err := pkgSqlite.Open(cfg.SQLitePath, eventSqlite.Migrations)
		if err != nil {
			return eventStore{}, fmt.Errorf("sqlite: %w", err)
		}
		return eventStore{repo: eventSqlite.New(db, l), db: db}, nil
	}
}
