// Package parquet provides data structures and functions for exporting augur
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/augur-cli/augur/schema"
)

// HistoryRow represents a single persisted prediction in Parquet form.
// This struct maps to the augur_history database table.
type HistoryRow struct {
	// ID is the unique identifier for this record
	ID int64 `parquet:"id,snappy"`

	// Kind marks which command produced the record (oracle, forecast, cast)
	Kind string `parquet:"kind,snappy"`

	// Template is the prompt template name for oracle records (nullable)
	Template *string `parquet:"template,optional,snappy"`

	// Variables contains the JSON-encoded template variables (nullable)
	Variables *string `parquet:"variables,optional,snappy"`

	// Prompt is the fully rendered prompt text (nullable)
	Prompt *string `parquet:"prompt,optional,snappy"`

	// Result holds the completion text or the structured result as JSON
	Result string `parquet:"result,snappy"`

	// CreatedAt is when the record was persisted (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// WriteHistoryParquet writes a slice of HistoryRow structs to a Parquet file.
func WriteHistoryParquet(data []HistoryRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the HistoryRow struct tags
	writer := parquet.NewGenericWriter[HistoryRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertHistoryRecords converts schema.HistoryRecord to HistoryRow for Parquet export.
func ConvertHistoryRecords(records []schema.HistoryRecord) []HistoryRow {
	result := make([]HistoryRow, len(records))
	for i, record := range records {
		row := HistoryRow{
			ID:        record.ID,
			Kind:      string(record.Kind),
			Result:    record.Result,
			CreatedAt: record.CreatedAt,
		}
		if record.Template != "" {
			template := record.Template
			row.Template = &template
		}
		if len(record.Variables) > 0 {
			if data, err := json.Marshal(record.Variables); err == nil {
				variables := string(data)
				row.Variables = &variables
			}
		}
		if record.Prompt != "" {
			prompt := record.Prompt
			row.Prompt = &prompt
		}
		result[i] = row
	}
	return result
}
