package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/histstore"
	mcp_internal "github.com/augur-cli/augur/internal/mcp"
	"github.com/augur-cli/augur/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		Steps:     contract.DefaultSteps,
		Algorithm: schema.EnsembleAlgorithm,
		Method:    schema.TimeMethod,
		Year:      2026,
		Month:     8,
		Day:       29,
		Hour:      15,
	}
}

func TestMCPServerForecastSeries(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig(), histstore.NewMockHistoryStore())
	ctx := context.Background()

	tool := s.GetTool("forecast_series")
	require.NotNil(t, tool, "Tool forecast_series should exist")

	t.Run("ensemble forecast", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "forecast_series",
				Arguments: map[string]any{
					"data": "10,12,11,13,14",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &parsed))
		assert.Contains(t, parsed, "predictions")
		assert.Contains(t, parsed, "ensemble")
	})

	t.Run("invalid series", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "forecast_series",
				Arguments: map[string]any{
					"data": "10,abc",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid series")
	})

	t.Run("invalid algorithm", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "forecast_series",
				Arguments: map[string]any{
					"data":      "10,12,11",
					"algorithm": "arima",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid algorithm")
	})

	t.Run("single model forecast", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "forecast_series",
				Arguments: map[string]any{
					"data":      "10,12,11,13",
					"algorithm": "linear",
					"steps":     2.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &parsed))
		assert.Equal(t, "linear", parsed["algorithm"])
		assert.Len(t, parsed["values"], 2)
	})
}

func TestMCPServerCastHexagram(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig(), histstore.NewMockHistoryStore())
	ctx := context.Background()

	tool := s.GetTool("cast_hexagram")
	require.NotNil(t, tool, "Tool cast_hexagram should exist")

	t.Run("time method", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "cast_hexagram",
				Arguments: map[string]any{
					"question": "Will the deal close?",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &parsed))
		assert.Equal(t, "Will the deal close?", parsed["question"])
		assert.Contains(t, parsed, "cast")
		assert.Contains(t, parsed, "verdict")
	})

	t.Run("direction method missing direction", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "cast_hexagram",
				Arguments: map[string]any{
					"method": "direction",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "--direction is required")
	})

	t.Run("invalid method", func(t *testing.T) {
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "cast_hexagram",
				Arguments: map[string]any{
					"method": "tarot",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid cast method")
	})
}

func TestMCPServerListHistory(t *testing.T) {
	store := histstore.NewMockHistoryStore()
	require.NoError(t, store.Append(context.Background(), schema.HistoryRecord{
		Kind:   schema.CastRecord,
		Result: `{"question":"test"}`,
	}))

	s := mcp_internal.NewMCPServer(baseConfig(), store)
	ctx := context.Background()

	tool := s.GetTool("list_history")
	require.NotNil(t, tool, "Tool list_history should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "list_history",
			Arguments: map[string]any{},
		},
	}

	res, err := tool.Handler(ctx, req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "cast", parsed[0]["kind"])
}

func TestMCPServerListHistoryNoStore(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig(), nil)
	ctx := context.Background()

	tool := s.GetTool("list_history")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "list_history",
			Arguments: map[string]any{},
		},
	}

	res, err := tool.Handler(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no history store configured")
}
