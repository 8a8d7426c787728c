package core

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/histstore"
	"github.com/augur-cli/augur/internal/outwriter"
	"github.com/augur-cli/augur/internal/tmplstore"
	"github.com/augur-cli/augur/schema"
)

// ExecutorFunc defines the function signature for executing different prediction modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteForecast runs the configured forecasting algorithm over the input
// series and prints results to stdout. It serves as the main entry point for
// the 'forecast' mode.
func ExecuteForecast(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	ow := outwriter.NewOutWriter()

	switch cfg.Algorithm {
	case schema.TrendAlgorithm:
		trend := AnalyzeTrend(cfg.Series)
		recordResult(ctx, schema.ForecastRecord, trend)
		return ow.WriteTrend(trend, cfg, time.Since(start))

	case schema.MAAlgorithm, schema.EMAAlgorithm, schema.LinearAlgorithm:
		values, err := GetModelForecast(cfg.Algorithm, cfg.Series, cfg.Steps)
		if err != nil {
			return err
		}
		recordResult(ctx, schema.ForecastRecord, map[string]any{
			"algorithm": cfg.Algorithm,
			"values":    values,
		})
		return ow.WriteModel(cfg.Algorithm, values, cfg, time.Since(start))

	default: // EnsembleAlgorithm
		result := GetEnsembleForecast(cfg.Series, cfg.Steps)
		recordResult(ctx, schema.ForecastRecord, result)
		return ow.WriteEnsemble(result, cfg, time.Since(start))
	}
}

// GetEnsembleForecast runs the full ensemble over a series. Insufficient
// data is reported inside the result, not as an error.
func GetEnsembleForecast(series []float64, steps int) schema.EnsembleResult {
	return NewEnsemblePredictor().Predict(series, steps)
}

// GetModelForecast runs a single forecasting model over a series.
func GetModelForecast(algorithm schema.Algorithm, series []float64, steps int) ([]float64, error) {
	var model Forecaster
	switch algorithm {
	case schema.MAAlgorithm:
		model = NewMovingAverage()
	case schema.EMAAlgorithm:
		model = NewExponentialSmoothing()
	case schema.LinearAlgorithm:
		model = NewLinearRegression()
	default:
		return nil, fmt.Errorf("algorithm %s is not a single model", algorithm)
	}
	values, err := model.Predict(series, steps)
	if err != nil {
		return nil, fmt.Errorf("forecast failed: %w", err)
	}
	return values, nil
}

// ExecuteCast derives a reading from the configured casting method and
// prints it to stdout. It serves as the main entry point for the 'cast' mode.
func ExecuteCast(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	reading := GetReading(cfg)
	recordResult(ctx, schema.CastRecord, reading)
	return outwriter.NewOutWriter().WriteReading(reading, cfg, time.Since(start))
}

// GetReading casts trigrams per the configured method and composes the full
// reading. Repeated calls differ unless a seed is set.
func GetReading(cfg *contract.Config) schema.Reading {
	rng := newRand(cfg)
	params := CastParams{
		Year:      cfg.Year,
		Month:     cfg.Month,
		Day:       cfg.Day,
		Hour:      cfg.Hour,
		Direction: cfg.Direction,
	}
	cast := Cast(cfg.Method, params, rng)
	return ComposeReading(cfg.Question, cast)
}

// ExecuteOracle fills the configured template, queries the chat model the
// configured number of times and prints the exchange. It serves as the main
// entry point for the 'oracle' mode.
func ExecuteOracle(ctx context.Context, cfg *contract.Config, client contract.ChatClient) error {
	start := time.Now()
	result, err := GetOracleResults(ctx, cfg, client)
	if err != nil {
		return err
	}

	for _, reply := range result.Replies {
		record := schema.HistoryRecord{
			Kind:      schema.OracleRecord,
			Template:  result.Template,
			Variables: cfg.Variables,
			Prompt:    result.Prompt,
			Result:    reply,
		}
		appendRecord(ctx, record)
	}

	return outwriter.NewOutWriter().WriteOracle(result, cfg, time.Since(start))
}

// GetOracleResults fills the template with the question and extra variables,
// then collects one reply per configured repeat.
func GetOracleResults(ctx context.Context, cfg *contract.Config, client contract.ChatClient) (schema.OracleResult, error) {
	store, err := tmplstore.NewStore(cfg.TemplatesDir)
	if err != nil {
		return schema.OracleResult{}, fmt.Errorf("failed to open templates: %w", err)
	}
	if _, err := store.EnsureDefaults(); err != nil {
		return schema.OracleResult{}, fmt.Errorf("failed to install default templates: %w", err)
	}

	variables := make(map[string]string, len(cfg.Variables)+1)
	for k, v := range cfg.Variables {
		variables[k] = v
	}
	if cfg.Question != "" {
		variables["question"] = cfg.Question
	}

	prompt, err := store.Fill(cfg.Template, variables)
	if err != nil {
		return schema.OracleResult{}, err
	}

	result := schema.OracleResult{
		Template: cfg.Template,
		Prompt:   prompt,
		Model:    cfg.Model,
		Replies:  make([]string, 0, cfg.Times),
	}
	for i := range cfg.Times {
		reply, err := client.Complete(ctx, prompt)
		if err != nil {
			return schema.OracleResult{}, fmt.Errorf("oracle request %d failed: %w", i+1, err)
		}
		result.Replies = append(result.Replies, reply)
	}
	return result, nil
}

// newRand builds the random source for casting. A set seed makes the cast
// reproducible; otherwise the current time is used.
func newRand(cfg *contract.Config) *rand.Rand {
	if cfg.SeedSet {
		return rand.New(rand.NewSource(cfg.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// recordResult persists a structured result as a history record. Recording
// failures are logged, never fatal: the prediction was already produced.
func recordResult(ctx context.Context, kind schema.RecordKind, result any) {
	encoded, err := json.Marshal(result)
	if err != nil {
		contract.LogWarn("Failed to encode history record", err)
		return
	}
	appendRecord(ctx, schema.HistoryRecord{Kind: kind, Result: string(encoded)})
}

// appendRecord persists one history record through the global store.
func appendRecord(ctx context.Context, record schema.HistoryRecord) {
	store := histstore.Store()
	if store == nil {
		return
	}
	if err := store.Append(ctx, record); err != nil {
		contract.LogWarn("Failed to record history", err)
	}
}
