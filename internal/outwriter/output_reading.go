package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintReading outputs a divination reading, dispatching based on the output format configured.
func PrintReading(reading schema.Reading, cfg *contract.Config, duration time.Duration) error {
	successMsg := successMsgFor(cfg.Output, "reading")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteReading(w, reading, cfg, duration)
	}, successMsg)
}

// WriteReading writes a divination reading to w in the configured format.
func WriteReading(w io.Writer, reading schema.Reading, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForReading(w, reading); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForReading(w, reading); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeReadingText(w, reading, cfg, duration); err != nil {
			return fmt.Errorf("error writing reading output: %w", err)
		}
	}
	return nil
}

// writeReadingText prints the reading in full: the trigram table, the
// judgement, the target spirit and the verdict.
func writeReadingText(w io.Writer, reading schema.Reading, cfg *contract.Config, duration time.Duration) error {
	if reading.Question != "" {
		fmt.Fprintf(w, "Question: %s\n", reading.Question)
	}
	fmt.Fprintf(w, "Method: %s (%s)\n", reading.Cast.Method, formatBasis(reading.Cast))

	table := tablewriter.NewWriter(w)

	headers := []string{"Position", "Trigram", "Symbol", "Element", "Nature"}
	table.Header(headers)

	data := [][]string{
		trigramRow("Upper", reading.Cast.Upper),
		trigramRow("Lower", reading.Cast.Lower),
		trigramRow("Mutation", reading.Cast.Mutation),
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Judgement: %s\n", reading.Judgement.Summary)
	fmt.Fprintf(w, "Target spirit: %s (%s). %s\n", reading.Spirit.Role, reading.Spirit.Element, reading.Spirit.Advice)
	fmt.Fprintf(w, "Verdict: %s\n", tierLabel(reading.Verdict.Tier, cfg))
	fmt.Fprintf(w, "%s\n", reading.Verdict.Explanation)
	fmt.Fprintf(w, "Advice: %s\n", reading.Verdict.Advice)
	fmt.Fprintf(w, "Note: %s\n", reading.Verdict.Disclaimer)
	fmt.Fprintf(w, "Cast completed in %v. History backend: %s\n", duration, cfg.HistoryBackend)
	return nil
}

// trigramRow renders one trigram as a table row.
func trigramRow(position string, t schema.Trigram) []string {
	return []string{
		position,
		fmt.Sprintf("%s (%d)", t.Name, t.Number),
		t.Symbol,
		string(t.Element),
		t.Nature,
	}
}

// formatBasis reproduces the casting inputs so the arithmetic behind the
// trigram numbers stays visible. The time method spells out both mod-8
// sums alongside the trigram numbers they produced.
func formatBasis(cast schema.CastResult) string {
	basis := cast.Basis
	switch {
	case basis.Random:
		return "random draw"
	case basis.Direction != "":
		return fmt.Sprintf("direction %s, code %d", basis.Direction, basis.DirectionCode)
	default:
		return fmt.Sprintf("upper = (%d+%d+%d) mod 8 = %d, lower = (%d+%d+%d+%d) mod 8 = %d",
			basis.Year, basis.Month, basis.Day, cast.Upper.Number,
			basis.Year, basis.Month, basis.Day, basis.Hour, cast.Lower.Number)
	}
}
