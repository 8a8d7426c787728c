package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
)

// historyJSONOutput wraps the record list so the top level is an object.
type historyJSONOutput struct {
	Records []schema.HistoryRecord `json:"records"`
}

// writeJSONResultsForHistory marshals the history records to JSON and writes them.
func writeJSONResultsForHistory(w io.Writer, records []schema.HistoryRecord) error {
	return writeJSON(w, historyJSONOutput{Records: records})
}

// writeCSVResultsForHistory writes one record per row. Variables are
// JSON-encoded in their column to stay a single cell.
func writeCSVResultsForHistory(w io.Writer, records []schema.HistoryRecord) error {
	header := []string{
		"id",
		"kind",
		"template",
		"variables",
		"prompt",
		"result",
		"created_at",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range records {
			variables := ""
			if len(r.Variables) > 0 {
				encoded, err := json.Marshal(r.Variables)
				if err != nil {
					return fmt.Errorf("failed to encode variables for record %d: %w", r.ID, err)
				}
				variables = string(encoded)
			}
			row := []string{
				fmt.Sprintf("%d", r.ID),
				string(r.Kind),
				r.Template,
				variables,
				r.Prompt,
				r.Result,
				r.CreatedAt.Format(contract.DateTimeFormat),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVResultsForStatus writes one backend summary row per record kind.
func writeCSVResultsForStatus(w io.Writer, status schema.StoreStatus) error {
	header := []string{
		"backend",
		"location",
		"kind",
		"count",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		if len(status.KindCounts) == 0 {
			row := []string{string(status.Backend), status.Location, "", "0"}
			return csvWriter.Write(row)
		}
		for _, kind := range sortedKinds(status.KindCounts) {
			row := []string{
				string(status.Backend),
				status.Location,
				string(kind),
				fmt.Sprintf("%d", status.KindCounts[kind]),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
