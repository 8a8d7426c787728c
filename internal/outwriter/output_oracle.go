package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
)

// PrintOracleResults outputs an oracle exchange, dispatching based on the output format configured.
func PrintOracleResults(result schema.OracleResult, cfg *contract.Config, duration time.Duration) error {
	successMsg := successMsgFor(cfg.Output, "oracle results")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteOracleResults(w, result, cfg, duration)
	}, successMsg)
}

// WriteOracleResults writes an oracle exchange to w in the configured format.
func WriteOracleResults(w io.Writer, result schema.OracleResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForOracle(w, result); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		writeOracleText(w, result, cfg, duration)
	}
	return nil
}

// writeOracleText prints the filled prompt once, then each reply in order.
func writeOracleText(w io.Writer, result schema.OracleResult, cfg *contract.Config, duration time.Duration) {
	fmt.Fprintf(w, "Template: %s\n", result.Template)
	fmt.Fprintf(w, "Prompt:\n%s\n", result.Prompt)
	for i, reply := range result.Replies {
		fmt.Fprintf(w, "\nReply %d:\n%s\n", i+1, reply)
	}
	fmt.Fprintf(w, "\nOracle (%s) completed in %v with %d replies. History backend: %s\n",
		result.Model, duration, len(result.Replies), cfg.HistoryBackend)
}

// writeCSVResultsForOracle writes one reply per row.
func writeCSVResultsForOracle(w io.Writer, result schema.OracleResult) error {
	header := []string{
		"template",
		"model",
		"reply_index",
		"reply",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, reply := range result.Replies {
			row := []string{
				result.Template,
				result.Model,
				strconv.Itoa(i + 1),
				reply,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
