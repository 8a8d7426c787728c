package histstore

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augur-cli/augur/schema"
)

func TestMigrateHistorySQLiteUp(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))

	// The history table and indexes must exist afterwards
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='augur_history'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "augur_history", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_augur_history_kind'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrateHistorySQLiteUpIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
}

func TestMigrateHistorySQLiteDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='augur_history'`).Scan(&name)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestMigrateHistorySQLiteToVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 1))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Table exists at version 1, the index does not arrive until version 2
	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='augur_history'`).Scan(&name)
	require.NoError(t, err)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_augur_history_kind'`).Scan(&name)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestMigrateHistoryUnsupportedBackends(t *testing.T) {
	assert.Error(t, MigrateHistory(schema.NoneBackend, "", -1))
	assert.Error(t, MigrateHistory(schema.JSONBackend, "", -1))
	assert.Error(t, MigrateHistory(schema.DatabaseBackend("etcd"), "", -1))
}
