package histstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
)

// recordsFileName is the file the JSON backend appends to.
const recordsFileName = "records.json"

// JSONHistoryStore persists records as a single JSON file. It suits users
// who want inspectable history without a database server.
type JSONHistoryStore struct {
	mu   sync.Mutex // Serializes read-modify-write cycles on the file
	dir  string
	path string
}

var _ contract.HistoryStore = &JSONHistoryStore{} // Compile-time check

// NewJSONHistoryStore creates a JSON file store rooted at dir. An empty dir
// falls back to the default location under the user's home directory.
func NewJSONHistoryStore(dir string) (*JSONHistoryStore, error) {
	if dir == "" {
		dir = contract.GetHistoryJSONDirPath()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory %q: %w", dir, err)
	}
	return &JSONHistoryStore{
		dir:  dir,
		path: filepath.Join(dir, recordsFileName),
	}, nil
}

// load reads the records file. A missing file yields an empty slice.
func (js *JSONHistoryStore) load() ([]schema.HistoryRecord, error) {
	data, err := os.ReadFile(js.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file %q: %w", js.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []schema.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history file %q: %w", js.path, err)
	}
	return records, nil
}

// save writes the full record set atomically via a temp file rename.
func (js *JSONHistoryStore) save(records []schema.HistoryRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history records: %w", err)
	}

	tmpPath := js.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := os.Rename(tmpPath, js.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

// Append persists one finished record.
func (js *JSONHistoryStore) Append(_ context.Context, record schema.HistoryRecord) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	records, err := js.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	record.ID = maxID + 1
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	records = append(records, record)
	return js.save(records)
}

// List returns the most recent records, newest first, capped at limit.
func (js *JSONHistoryStore) List(_ context.Context, limit int) ([]schema.HistoryRecord, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	records, err := js.load()
	if err != nil {
		return nil, err
	}

	// Reverse to newest first
	results := make([]schema.HistoryRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		results = append(results, records[i])
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

// All returns every record, oldest first. Used by export.
func (js *JSONHistoryStore) All(_ context.Context) ([]schema.HistoryRecord, error) {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.load()
}

// Clear removes all records.
func (js *JSONHistoryStore) Clear(_ context.Context) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if err := os.Remove(js.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove history file %q: %w", js.path, err)
	}
	return nil
}

// Status returns storage information about the store.
func (js *JSONHistoryStore) Status(_ context.Context) (schema.StoreStatus, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	status := schema.StoreStatus{
		Backend:    schema.JSONBackend,
		Location:   js.path,
		KindCounts: make(map[schema.RecordKind]int),
	}

	records, err := js.load()
	if err != nil {
		return status, err
	}

	status.TotalRecords = int64(len(records))
	for _, r := range records {
		status.KindCounts[r.Kind]++
	}
	return status, nil
}

// Close is a no-op for the file-backed store.
func (js *JSONHistoryStore) Close() error {
	return nil
}
