package outwriter

import (
	"fmt"
	"io"
	"sort"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintHistoryRecords outputs stored history records, dispatching based on the output format configured.
func PrintHistoryRecords(records []schema.HistoryRecord, cfg *contract.Config) error {
	successMsg := successMsgFor(cfg.Output, "history records")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteHistoryRecords(w, records, cfg)
	}, successMsg)
}

// WriteHistoryRecords writes stored history records to w in the configured format.
func WriteHistoryRecords(w io.Writer, records []schema.HistoryRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForHistory(w, records); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForHistory(w, records); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeHistoryTable(w, records, cfg); err != nil {
			return fmt.Errorf("error writing history table output: %w", err)
		}
	}
	return nil
}

// writeHistoryTable prints one row per record with the result truncated to
// the terminal width.
func writeHistoryTable(w io.Writer, records []schema.HistoryRecord, cfg *contract.Config) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No history records found.")
		return nil
	}

	table := tablewriter.NewWriter(w)

	headers := []string{"ID", "Kind", "Template", "Created", "Result"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, r := range records {
		row := []string{
			fmt.Sprintf("%d", r.ID),
			string(r.Kind),
			r.Template,
			r.CreatedAt.Format(contract.DateTimeFormat),
			truncateText(r.Result, maxWidth),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing %d records. History backend: %s\n", len(records), cfg.HistoryBackend)
	return nil
}

// PrintStoreStatus outputs the history backend status, dispatching based on the output format configured.
func PrintStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	successMsg := successMsgFor(cfg.Output, "history status")
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteStoreStatus(w, status, cfg)
	}, successMsg)
}

// WriteStoreStatus writes the history backend status to w in the configured format.
func WriteStoreStatus(w io.Writer, status schema.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, status); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForStatus(w, status); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		writeStatusText(w, status)
	}
	return nil
}

// writeStatusText prints the backend summary and per-kind counts.
func writeStatusText(w io.Writer, status schema.StoreStatus) {
	fmt.Fprintf(w, "Backend: %s\n", status.Backend)
	if status.Location != "" {
		fmt.Fprintf(w, "Location: %s\n", status.Location)
	}
	fmt.Fprintf(w, "Total records: %d\n", status.TotalRecords)
	for _, kind := range sortedKinds(status.KindCounts) {
		fmt.Fprintf(w, "  %s: %d\n", kind, status.KindCounts[kind])
	}
}

// sortedKinds returns the kind keys in a stable order.
func sortedKinds(counts map[schema.RecordKind]int) []schema.RecordKind {
	kinds := make([]schema.RecordKind, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
