package main

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDirection(t *testing.T) {
	assert.NoError(t, validateDirection(directionUp))
	assert.NoError(t, validateDirection(directionDown))
	assert.Error(t, validateDirection("sideways"))
}

func TestRunMigrations(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "storage.db")

	require.NoError(t, runMigrations(log, path, "migrations", directionUp))
	require.NoError(t, runMigrations(log, path, "migrations", directionUp), "second run is a no-op")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'endpoint'").Scan(&n))
	assert.Equal(t, 1, n)

	require.NoError(t, runMigrations(log, path, "migrations", directionDown))
	require.NoError(t, db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'endpoint'").Scan(&n))
	assert.Equal(t, 0, n)
}
