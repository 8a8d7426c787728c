// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Augur MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Augur Prediction Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: forecast_series ---
	s.AddTool(mcp.NewTool("forecast_series",
		mcp.WithDescription("Forecast the next values of a numeric series and characterize its trend."),
		mcp.WithString("data", mcp.Description("Comma-separated numeric series (e.g. '10,12,11,13')."), mcp.Required()),
		mcp.WithNumber("steps", mcp.Description("Number of forecast steps. Defaults to 3.")),
		mcp.WithString("algorithm", mcp.Description("Forecasting algorithm (ensemble, ma, ema, linear, trend). Defaults to 'ensemble'."), mcp.Enum("ensemble", "ma", "ema", "linear", "trend")),
	), h.handleForecastSeries)

	// --- 2. Tool: cast_hexagram ---
	s.AddTool(mcp.NewTool("cast_hexagram",
		mcp.WithDescription("Cast trigrams for a question and compose a five-element reading."),
		mcp.WithString("question", mcp.Description("The question the reading concerns.")),
		mcp.WithString("method", mcp.Description("Casting method (time, direction, random). Defaults to 'time'."), mcp.Enum("time", "direction", "random")),
		mcp.WithString("direction", mcp.Description("Compass direction or trigram name, required for the direction method.")),
		mcp.WithNumber("seed", mcp.Description("Random seed for reproducible casts.")),
	), h.handleCastHexagram)

	// --- 3. Tool: list_history ---
	s.AddTool(mcp.NewTool("list_history",
		mcp.WithDescription("List recent prediction history records, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of records returned.")),
	), h.handleListHistory)

	return s
}

// StartMCPServer starts the Augur MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
