package histstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
)

// HistoryStoreImpl handles durable history storage using various database backends.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	location   string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore initializes and returns a new HistoryStore based on the backend type.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName string
	var location string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		location = dbPath
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		location = connStr
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		location = connStr
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.JSONBackend:
		return NewJSONHistoryStore(connStr)

	case schema.NoneBackend:
		// Return a no-op store for disabled history
		return &HistoryStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported history backend: %s. Must be sqlite, mysql, postgresql, json, or none", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", historyTable, err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
		location:   location,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(historyTable, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				kind VARCHAR(20) NOT NULL,
				template_name VARCHAR(255),
				variables TEXT,
				prompt TEXT NOT NULL,
				result TEXT NOT NULL,
				created_at DATETIME(6) NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				kind TEXT NOT NULL,
				template_name TEXT,
				variables TEXT,
				prompt TEXT NOT NULL,
				result TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				kind TEXT NOT NULL,
				template_name TEXT,
				variables TEXT,
				prompt TEXT NOT NULL,
				result TEXT NOT NULL,
				created_at TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

// Append persists one finished record.
func (hs *HistoryStoreImpl) Append(ctx context.Context, record schema.HistoryRecord) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	variablesJSON, err := json.Marshal(record.Variables)
	if err != nil {
		return fmt.Errorf("failed to marshal variables: %w", err)
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`INSERT INTO %s (kind, template_name, variables, prompt, result, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`INSERT INTO %s (kind, template_name, variables, prompt, result, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`, quotedTableName)
	}

	_, err = hs.db.ExecContext(ctx, query,
		string(record.Kind), record.Template, string(variablesJSON),
		record.Prompt, record.Result, formatTime(createdAt, hs.backend))
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first, capped at limit.
func (hs *HistoryStoreImpl) List(ctx context.Context, limit int) ([]schema.HistoryRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)
	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT id, kind, template_name, variables, prompt, result, created_at
			FROM %s ORDER BY id DESC LIMIT $1`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT id, kind, template_name, variables, prompt, result, created_at
			FROM %s ORDER BY id DESC LIMIT ?`, quotedTableName)
	}

	rows, err := hs.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return hs.scanRecords(rows)
}

// All returns every record, oldest first. Used by export.
func (hs *HistoryStoreImpl) All(ctx context.Context) ([]schema.HistoryRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)
	query := fmt.Sprintf(`SELECT id, kind, template_name, variables, prompt, result, created_at
		FROM %s ORDER BY id ASC`, quotedTableName)

	rows, err := hs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return hs.scanRecords(rows)
}

// scanRecords converts SQL rows into history records.
func (hs *HistoryStoreImpl) scanRecords(rows *sql.Rows) ([]schema.HistoryRecord, error) {
	var results []schema.HistoryRecord

	for rows.Next() {
		var record schema.HistoryRecord
		var kind string
		var template sql.NullString
		var variablesJSON sql.NullString

		switch hs.backend {
		case schema.SQLiteBackend:
			var createdAtStr string
			if err := rows.Scan(&record.ID, &kind, &template, &variablesJSON, &record.Prompt, &record.Result, &createdAtStr); err != nil {
				return nil, fmt.Errorf("failed to scan history record: %w", err)
			}
			createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
			record.CreatedAt = createdAt
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&record.ID, &kind, &template, &variablesJSON, &record.Prompt, &record.Result, &record.CreatedAt); err != nil {
				return nil, fmt.Errorf("failed to scan history record: %w", err)
			}
		}

		record.Kind = schema.RecordKind(kind)
		record.Template = template.String
		if variablesJSON.Valid && variablesJSON.String != "" {
			if err := json.Unmarshal([]byte(variablesJSON.String), &record.Variables); err != nil {
				return nil, fmt.Errorf("failed to unmarshal variables: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history records: %w", err)
	}
	return results, nil
}

// Clear removes all records.
func (hs *HistoryStoreImpl) Clear(ctx context.Context) error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)
	query := fmt.Sprintf("DELETE FROM %s", quotedTableName)
	if _, err := hs.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Status returns storage information about the store.
func (hs *HistoryStoreImpl) Status(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    hs.backend,
		Location:   hs.location,
		KindCounts: make(map[schema.RecordKind]int),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)

	// Get total records
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := hs.db.QueryRowContext(ctx, countQuery)
	if err := row.Scan(&status.TotalRecords); err != nil {
		return status, fmt.Errorf("failed to get total records: %w", err)
	}

	if status.TotalRecords == 0 {
		return status, nil
	}

	// Get per-kind counts
	kindQuery := fmt.Sprintf("SELECT kind, COUNT(*) FROM %s GROUP BY kind", quotedTableName)
	rows, err := hs.db.QueryContext(ctx, kindQuery)
	if err != nil {
		return status, fmt.Errorf("failed to get kind counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return status, fmt.Errorf("failed to scan kind count: %w", err)
		}
		status.KindCounts[schema.RecordKind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return status, fmt.Errorf("error iterating kind counts: %w", err)
	}

	return status, nil
}

// Close closes the underlying DB connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
