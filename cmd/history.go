package cmd

import (
	"fmt"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/histstore"
	"github.com/augur-cli/augur/internal/outwriter"
	"github.com/augur-cli/augur/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize persistence with the loaded config
	if err := histstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	// Get output-related config values (used by list, status, export)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	cfg.Width = viper.GetInt("width")
	cfg.ResultLimit = viper.GetInt("limit")
	colors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// listHistory renders the most recent history records.
func listHistory() {
	records, err := histstore.Store().List(rootCtx, cfg.ResultLimit)
	if err != nil {
		contract.LogFatal("Failed to list history", err)
	}
	if err := outwriter.NewOutWriter().WriteHistory(records, cfg); err != nil {
		contract.LogFatal("Failed to write history", err)
	}
}

// historyCmd focused on stored prediction management. Running it without a
// subcommand lists recent records.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored forecasts, casts, and oracle replies",
	Long: `Manage the prediction history shared by forecast, cast, and oracle.

Every completed run appends a record (kind, template, variables, prompt,
result, timestamp) to the configured backend.

Supported backends: SQLite (default), MySQL, PostgreSQL, JSON files, or None

Subcommands:
  list    - Show the most recent records (default)
  status  - Show backend statistics and connection info
  clear   - Remove all stored records
  export  - Export records to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Show recent predictions
  augur history

  # Inspect the MySQL backend
  AUGUR_HISTORY_BACKEND=mysql AUGUR_HISTORY_DB_CONNECT="..." augur history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		listHistory()
	},
}

// historyListCmd lists recent records.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent history records",
	Long: `List stored records, newest first, capped at --limit.

Result payloads are truncated to the table width in text mode; use
--output json for the full records.

Examples:
  # Last 20 records (default)
  augur history list

  # Last 5 records as JSON
  augur history list -l 5 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		listHistory()
	},
}

// historyClearCmd clears all stored records.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored history records",
	Long: `Delete every stored prediction from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the history table
For JSON: Deletes the records file

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  augur history export --output-file backup
  augur history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := histstore.ClearHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the history store.

Displays:
- Backend type and storage location
- Total number of stored records
- Record counts per kind (forecast, cast, oracle)

Examples:
  # Check history status
  augur history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := histstore.Store().Status(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		if err := outwriter.NewOutWriter().WriteStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write history status", err)
		}
	},
}

// historyExportCmd exports history data to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history records to Parquet for analytics",
	Long: `Export all stored records to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export all records
  augur history export --output-file predictions

  # Query the export with DuckDB
  duckdb -c "SELECT kind, count(*) FROM read_parquet('predictions.history.parquet') GROUP BY kind"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := histstore.ExecuteHistoryExport(rootCtx, histstore.Store(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for
specific versions. Migrations apply to the SQL backends only; the JSON
and none backends have no schema.

Examples:
  # Migrate to latest version (default)
  augur history migrate

  # Rollback to initial state
  augur history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println("Migrations completed successfully.")
	},
}
