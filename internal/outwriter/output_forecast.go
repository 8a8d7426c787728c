package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintEnsembleResults outputs an ensemble forecast, dispatching based on the output format configured.
func PrintEnsembleResults(result schema.EnsembleResult, cfg *contract.Config, duration time.Duration) error {
	successMsg := successMsgFor(cfg.Output, "forecast results")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteEnsembleResults(w, result, cfg, duration)
	}, successMsg)
}

// WriteEnsembleResults writes an ensemble forecast to w in the configured format.
func WriteEnsembleResults(w io.Writer, result schema.EnsembleResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForEnsemble(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForEnsemble(w, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeEnsembleTable(w, result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing forecast table output: %w", err)
		}
	}
	return nil
}

// writeEnsembleTable prints per-model predictions in a table followed by the
// trend summary.
func writeEnsembleTable(w io.Writer, result schema.EnsembleResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if result.Insufficient() {
		fmt.Fprintf(w, "No forecast: %s\n", result.Err)
		return nil
	}

	table := tablewriter.NewWriter(w)

	// --- 1. Define Headers ---
	headers := []string{"Model", "Weight", "Forecast"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var data [][]string
	for _, id := range modelOrder {
		slot, ok := result.Predictions[id]
		if !ok {
			continue
		}
		value := slot.Err
		if slot.OK() {
			value = fmtFloat(slot.Value)
		}
		row := []string{
			string(id),
			fmt.Sprintf("%.2f", schema.EnsembleWeights[id]),
			value,
		}
		data = append(data, row)
	}
	data = append(data, []string{"ensemble", "", fmtFloat(result.Ensemble)})

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	writeTrendSummary(w, result.Trend, cfg, fmtFloat)
	fmt.Fprintf(w, "Forecast completed in %v over %d steps. History backend: %s\n", duration, result.Steps, cfg.HistoryBackend)
	return nil
}

// PrintModelResults outputs a single-model forecast horizon, dispatching based on the output format configured.
func PrintModelResults(algorithm schema.Algorithm, values []float64, cfg *contract.Config, duration time.Duration) error {
	successMsg := successMsgFor(cfg.Output, "forecast results")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteModelResults(w, algorithm, values, cfg, duration)
	}, successMsg)
}

// WriteModelResults writes a single-model forecast horizon to w in the configured format.
func WriteModelResults(w io.Writer, algorithm schema.Algorithm, values []float64, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForModel(w, algorithm, values); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForModel(w, values, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeModelTable(w, algorithm, values, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing forecast table output: %w", err)
		}
	}
	return nil
}

// writeModelTable prints one row per forecast step.
func writeModelTable(w io.Writer, algorithm schema.Algorithm, values []float64, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Step", "Forecast"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, v := range values {
		data = append(data, []string{fmt.Sprintf("%d", i+1), fmtFloat(v)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Forecast (%s) completed in %v over %d steps. History backend: %s\n", algorithm, duration, len(values), cfg.HistoryBackend)
	return nil
}

// PrintTrendResults outputs a trend analysis, dispatching based on the output format configured.
func PrintTrendResults(trend schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	successMsg := successMsgFor(cfg.Output, "trend results")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteTrendResults(w, trend, cfg, duration)
	}, successMsg)
}

// WriteTrendResults writes a trend analysis to w in the configured format.
func WriteTrendResults(w io.Writer, trend schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, trend); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForTrend(w, trend, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		writeTrendSummary(w, trend, cfg, fmtFloat)
		fmt.Fprintf(w, "Trend analysis completed in %v. History backend: %s\n", duration, cfg.HistoryBackend)
	}
	return nil
}

// writeTrendSummary prints the trend block shared by the ensemble and trend paths.
func writeTrendSummary(w io.Writer, trend schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string) {
	fmt.Fprintf(w, "Trend: %s (%s, strength %s)\n", trend.Trend, strengthLabel(trend.Strength, cfg), fmtFloat(trend.Strength))
	fmt.Fprintf(w, "Avg change: %s%%  Volatility: %s  Confidence: %s\n",
		fmtFloat(trend.AvgChangeRate), fmtFloat(trend.Volatility), fmtFloat(trend.Confidence))
}

// successMsgFor picks the persistence message shown when output goes to a file.
func successMsgFor(mode schema.OutputMode, what string) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON " + what
	case schema.CSVOut:
		return "Wrote CSV " + what
	default:
		return "Wrote " + what
	}
}
