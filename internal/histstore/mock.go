package histstore

import (
	"context"
	"sync"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
)

// MockHistoryStore is an in-memory store for testing.
type MockHistoryStore struct {
	mu      sync.Mutex
	records []schema.HistoryRecord
	nextID  int64

	AppendErr error // Forced error for Append, if set
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// NewMockHistoryStore creates an empty in-memory store.
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{nextID: 1}
}

// Append persists one finished record.
func (ms *MockHistoryStore) Append(_ context.Context, record schema.HistoryRecord) error {
	if ms.AppendErr != nil {
		return ms.AppendErr
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	record.ID = ms.nextID
	ms.nextID++
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	ms.records = append(ms.records, record)
	return nil
}

// List returns the most recent records, newest first, capped at limit.
func (ms *MockHistoryStore) List(_ context.Context, limit int) ([]schema.HistoryRecord, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	results := make([]schema.HistoryRecord, 0, len(ms.records))
	for i := len(ms.records) - 1; i >= 0; i-- {
		results = append(results, ms.records[i])
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

// All returns every record, oldest first.
func (ms *MockHistoryStore) All(_ context.Context) ([]schema.HistoryRecord, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	results := make([]schema.HistoryRecord, len(ms.records))
	copy(results, ms.records)
	return results, nil
}

// Clear removes all records.
func (ms *MockHistoryStore) Clear(_ context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.records = nil
	return nil
}

// Status returns storage information about the store.
func (ms *MockHistoryStore) Status(_ context.Context) (schema.StoreStatus, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	status := schema.StoreStatus{
		Backend:      "mock",
		TotalRecords: int64(len(ms.records)),
		KindCounts:   make(map[schema.RecordKind]int),
	}
	for _, r := range ms.records {
		status.KindCounts[r.Kind]++
	}
	return status, nil
}

// Close is a no-op for the in-memory store.
func (ms *MockHistoryStore) Close() error {
	return nil
}
