package sqlite_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/pkg/sqlite"
)

func createTable(name string) func(*sql.Tx) error {
	return func(tx *sql.Tx) error {
		_, err := tx.Exec(`CREATE TABLE ` + name + ` (id INTEGER PRIMARY KEY)`)
		return err
	}
}

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	migrations := []sqlite.Migration{
		{Version: 2, Name: "second", Up: createTable("b")},
		{Version: 1, Name: "first", Up: createTable("a")},
	}

	db, err := sqlite.Open(path, migrations)
	require.NoError(t, err)

	var names []string
	rows, err := db.Query(`SELECT name FROM schema_migrations ORDER BY version`)
	require.NoError(t, err)
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	rows.Close()
	assert.Equal(t, []string{"first", "second"}, names)
	require.NoError(t, db.Close())

	// re-opening must not re-run CREATE TABLE
	db, err = sqlite.Open(path, migrations)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpen_FailedMigrationRollsBack(t *testing.T) {
	boom := errors.New("boom")
	_, err := sqlite.Open(sqlite.MemoryPath, []sqlite.Migration{
		{Version: 1, Name: "broken", Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`CREATE TABLE half (id INTEGER)`); err != nil {
				return err
			}
			return boom
		}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
