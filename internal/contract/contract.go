// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/augur-cli/augur/schema"
)

// HistoryStore defines the interface for reading history storage.
// This allows the persistence layer to be mocked for testing.
type HistoryStore interface {
	// Append persists one finished record.
	Append(ctx context.Context, record schema.HistoryRecord) error

	// List returns the most recent records, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]schema.HistoryRecord, error)

	// All returns every record, oldest first. Used by export.
	All(ctx context.Context) ([]schema.HistoryRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Status returns storage information about the store.
	Status(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// ChatClient defines the single operation needed from a language model
// backend. This allows oracle logic to be tested without network access.
type ChatClient interface {
	// Complete sends a prompt and returns the model's reply text.
	Complete(ctx context.Context, prompt string) (string, error)
}
