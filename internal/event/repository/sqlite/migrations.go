package sqlite

import (
	"database/sql"

	pkgSqlite "calendar-assistant/pkg/sqlite"
)

// Migrations is the schema for the events table.
var Migrations = []pkgSqlite.Migration{
	{Version: 1, Name: "create_events", Up: createEvents},
}

func createEvents(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL CHECK(title <> ''),
			description TEXT NOT NULL DEFAULT '',
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT 'blue' CHECK(color IN ('blue', 'purple', 'green', 'orange', 'red', 'pink')),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_user_start ON events(user_id, start_time)`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
