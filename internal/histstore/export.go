package histstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of history data to a Parquet file.
func ExecuteHistoryExport(ctx context.Context, store contract.HistoryStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRecords == 0 {
		return errors.New("no history records found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total records: %d\n", status.TotalRecords)

	// Retrieve all records
	records, err := store.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	// Convert and write to Parquet
	rows := parquet.ConvertHistoryRecords(records)
	exportFile := outputFile + ".history.parquet"
	if err := parquet.WriteHistoryParquet(rows, exportFile); err != nil {
		return fmt.Errorf("failed to write history records: %w", err)
	}
	fmt.Printf("Exported %d records to: %s\n", len(rows), exportFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
