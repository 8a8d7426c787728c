package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/augur-cli/augur/schema"
)

// modelJSONOutput wraps a single-model horizon with its algorithm name.
type modelJSONOutput struct {
	Algorithm schema.Algorithm `json:"algorithm"`
	Steps     int              `json:"steps"`
	Values    []float64        `json:"values"`
}

// writeJSONResultsForEnsemble marshals the schema.EnsembleResult to JSON and writes it.
func writeJSONResultsForEnsemble(w io.Writer, result schema.EnsembleResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForEnsemble writes the per-model slots and the combined
// estimate as model,forecast,error rows.
func writeCSVResultsForEnsemble(w io.Writer, result schema.EnsembleResult, fmtFloat func(float64) string) error {
	header := []string{
		"model",
		"weight",
		"forecast",
		"error",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, id := range modelOrder {
			slot, ok := result.Predictions[id]
			if !ok {
				continue
			}
			value := ""
			if slot.OK() {
				value = fmtFloat(slot.Value)
			}
			row := []string{
				string(id),
				fmt.Sprintf("%.2f", schema.EnsembleWeights[id]),
				value,
				slot.Err,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return csvWriter.Write([]string{"ensemble", "", fmtFloat(result.Ensemble), result.Err})
	})
}

// writeJSONResultsForModel wraps the horizon with its algorithm and writes it.
func writeJSONResultsForModel(w io.Writer, algorithm schema.Algorithm, values []float64) error {
	return writeJSON(w, modelJSONOutput{
		Algorithm: algorithm,
		Steps:     len(values),
		Values:    values,
	})
}

// writeCSVResultsForModel writes one step,forecast row per horizon step.
func writeCSVResultsForModel(w io.Writer, values []float64, fmtFloat func(float64) string) error {
	header := []string{
		"step",
		"forecast",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, v := range values {
			row := []string{
				fmt.Sprintf("%d", i+1),
				fmtFloat(v),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVResultsForTrend writes the trend statistics as a single row.
func writeCSVResultsForTrend(w io.Writer, trend schema.TrendResult, fmtFloat func(float64) string) error {
	header := []string{
		"trend",
		"strength",
		"avg_change_rate",
		"volatility",
		"confidence",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		row := []string{
			string(trend.Trend),
			fmtFloat(trend.Strength),
			fmtFloat(trend.AvgChangeRate),
			fmtFloat(trend.Volatility),
			fmtFloat(trend.Confidence),
		}
		return csvWriter.Write(row)
	})
}
