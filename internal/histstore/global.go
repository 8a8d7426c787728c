package histstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
)

// Global store instance for main logic.
var (
	manager   = &storeManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// storeManager guards the global store pointer during initialization.
type storeManager struct {
	sync.RWMutex
	store contract.HistoryStore
}

// Store returns the global history store. InitStore must run first;
// before that it returns nil.
func Store() contract.HistoryStore {
	manager.RLock()
	defer manager.RUnlock()
	return manager.store
}

// InitStore initializes the global history store. It runs exactly once,
// even with concurrent calls.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewHistoryStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize history store: %w", err)
			return
		}

		manager.Lock()
		manager.store = store
		manager.Unlock()
	})

	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		manager.Lock()
		defer manager.Unlock()
		if manager.store != nil {
			_ = manager.store.Close()
		}
	})
}

// ClearHistory clears persisted history for the specified backend without
// going through an open store.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For JSON, it deletes the records file.
// For NoneBackend, it does nothing.
func ClearHistory(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		dbFilePath := connStr
		if dbFilePath == "" {
			dbFilePath = contract.GetHistoryDBFilePath()
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr)

	case schema.JSONBackend:
		dir := connStr
		if dir == "" {
			dir = contract.GetHistoryJSONDirPath()
		}
		recordsPath := filepath.Join(dir, recordsFileName)
		if err := os.Remove(recordsPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove history file %s: %w", recordsPath, err)
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported history backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", historyTable)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", historyTable, err)
	}

	return nil
}
