package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/augur-cli/augur/core"
	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HistoryStore
}

func (h *toolHandler) handleForecastSeries(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	series, err := contract.ParseSeries(request.GetString("data", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid series: %v", err)), nil
	}
	cfg.Series = series

	if s := request.GetInt("steps", 0); s > 0 {
		cfg.Steps = s
	}
	if cfg.Steps < 1 {
		cfg.Steps = contract.DefaultSteps
	}
	if cfg.Steps > contract.MaxSteps {
		return mcp.NewToolResultError(fmt.Sprintf("steps must be at most %d", contract.MaxSteps)), nil
	}
	if a := request.GetString("algorithm", ""); a != "" {
		cfg.Algorithm = schema.Algorithm(a)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = schema.EnsembleAlgorithm
	}
	if _, ok := schema.ValidAlgorithms[cfg.Algorithm]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid algorithm '%s'. must be ensemble, ma, ema, linear, trend", cfg.Algorithm)), nil
	}

	var result any
	switch cfg.Algorithm {
	case schema.TrendAlgorithm:
		result = core.AnalyzeTrend(cfg.Series)
	case schema.MAAlgorithm, schema.EMAAlgorithm, schema.LinearAlgorithm:
		values, err := core.GetModelForecast(cfg.Algorithm, cfg.Series, cfg.Steps)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
		}
		result = map[string]any{"algorithm": cfg.Algorithm, "steps": cfg.Steps, "values": values}
	default:
		result = core.GetEnsembleForecast(cfg.Series, cfg.Steps)
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCastHexagram(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Question = request.GetString("question", "")

	if m := request.GetString("method", ""); m != "" {
		cfg.Method = schema.CastMethod(m)
	}
	if cfg.Method == "" {
		cfg.Method = schema.TimeMethod
	}
	if _, ok := schema.ValidCastMethods[cfg.Method]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid cast method '%s'. must be time, direction, random", cfg.Method)), nil
	}

	cfg.Direction = request.GetString("direction", "")
	if cfg.Method == schema.DirectionMethod && cfg.Direction == "" {
		return mcp.NewToolResultError("--direction is required when using the direction method"), nil
	}
	if seed := request.GetInt("seed", 0); seed != 0 {
		cfg.Seed = int64(seed)
		cfg.SeedSet = true
	}

	reading := core.GetReading(cfg)
	jsonData, _ := json.MarshalIndent(reading, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.store == nil {
		return mcp.NewToolResultError(errNoHistoryStore.Error()), nil
	}

	limit := request.GetInt("limit", contract.DefaultResultLimit)
	if limit < 1 {
		limit = contract.DefaultResultLimit
	}
	if limit > contract.MaxResultLimit {
		limit = contract.MaxResultLimit
	}

	records, err := h.store.List(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// errNoHistoryStore signals that the server was started without a backend.
var errNoHistoryStore = errors.New("no history store configured")
