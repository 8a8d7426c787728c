// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteEnsemble prints an ensemble forecast using the configured output format.
func (ow *OutWriter) WriteEnsemble(result schema.EnsembleResult, cfg *contract.Config, duration time.Duration) error {
	return PrintEnsembleResults(result, cfg, duration)
}

// WriteModel prints a single-model forecast using the configured output format.
func (ow *OutWriter) WriteModel(algorithm schema.Algorithm, values []float64, cfg *contract.Config, duration time.Duration) error {
	return PrintModelResults(algorithm, values, cfg, duration)
}

// WriteTrend prints a trend analysis using the configured output format.
func (ow *OutWriter) WriteTrend(trend schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(trend, cfg, duration)
}

// WriteReading prints a divination reading using the configured output format.
func (ow *OutWriter) WriteReading(reading schema.Reading, cfg *contract.Config, duration time.Duration) error {
	return PrintReading(reading, cfg, duration)
}

// WriteOracle prints an oracle exchange using the configured output format.
func (ow *OutWriter) WriteOracle(result schema.OracleResult, cfg *contract.Config, duration time.Duration) error {
	return PrintOracleResults(result, cfg, duration)
}

// WriteHistory prints stored history records using the configured output format.
func (ow *OutWriter) WriteHistory(records []schema.HistoryRecord, cfg *contract.Config) error {
	return PrintHistoryRecords(records, cfg)
}

// WriteStatus prints the history backend status using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return PrintStoreStatus(status, cfg)
}

// GetMaxTableTextWidth calculates the maximum width for free-text columns in
// table output based on terminal width and table configuration.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (ID + Kind + Template + Created)
	// plus table borders, separators, and padding.
	baseWidth := 50

	// Calculate available space for the free-text column
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to prevent overly long rows
		return 70
	}
	return available
}
