package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/augur-cli/augur/schema"
)

// writeJSONResultsForReading marshals the schema.Reading to JSON and writes it.
func writeJSONResultsForReading(w io.Writer, reading schema.Reading) error {
	return writeJSON(w, reading)
}

// writeCSVResultsForReading writes the reading as a single flat row.
func writeCSVResultsForReading(w io.Writer, reading schema.Reading) error {
	header := []string{
		"question",
		"method",
		"upper",
		"lower",
		"mutation",
		"relation",
		"tier",
		"spirit_role",
		"spirit_element",
		"advice",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		row := []string{
			reading.Question,
			string(reading.Cast.Method),
			reading.Cast.Upper.Name,
			reading.Cast.Lower.Name,
			reading.Cast.Mutation.Name,
			string(reading.Judgement.Relation),
			string(reading.Verdict.Tier),
			string(reading.Spirit.Role),
			string(reading.Spirit.Element),
			reading.Verdict.Advice,
		}
		return csvWriter.Write(row)
	})
}
