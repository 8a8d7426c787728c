package core

import (
	"testing"

	"github.com/augur-cli/augur/schema"
	"github.com/stretchr/testify/assert"
)

// TestAnalyzeTrendClassification covers the direction thresholds and
// strength scaling.
func TestAnalyzeTrendClassification(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		trend    schema.TrendDirection
		strength float64
	}{
		{
			name:     "rising saturates strength",
			series:   []float64{10, 12, 14.4, 17.28}, // +20% each step
			trend:    schema.RisingTrend,
			strength: 1.0,
		},
		{
			name:     "falling with partial strength",
			series:   []float64{100, 94, 88.36}, // -6% each step
			trend:    schema.FallingTrend,
			strength: 0.6,
		},
		{
			name:     "oscillating has fixed strength",
			series:   []float64{10, 10.2, 10, 10.2},
			trend:    schema.OscillatingTrend,
			strength: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeTrend(tt.series)
			assert.Equal(t, tt.trend, got.Trend)
			assert.InDelta(t, tt.strength, got.Strength, 1e-9)
		})
	}
}

// TestAnalyzeTrendInsufficientData verifies the unknown fallbacks.
func TestAnalyzeTrendInsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
	}{
		{name: "empty", series: nil},
		{name: "single point", series: []float64{5}},
		{name: "all zero predecessors", series: []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeTrend(tt.series)
			assert.Equal(t, schema.UnknownTrend, got.Trend)
			assert.Zero(t, got.Strength)
		})
	}
}

// TestAnalyzeTrendSkipsZeroSteps checks that a step starting from zero is
// excluded rather than dividing by zero.
func TestAnalyzeTrendSkipsZeroSteps(t *testing.T) {
	got := AnalyzeTrend([]float64{0, 5, 10})
	// Only the 5 -> 10 step is valid: +100%.
	assert.Equal(t, schema.RisingTrend, got.Trend)
	assert.InDelta(t, 1.0, got.Strength, 1e-9)
	assert.InDelta(t, 100, got.AvgChangeRate, 1e-9)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

// TestAnalyzeTrendStatistics pins volatility and confidence on the
// reference series.
func TestAnalyzeTrendStatistics(t *testing.T) {
	got := AnalyzeTrend(workedSeries)
	assert.Equal(t, schema.RisingTrend, got.Trend)
	assert.InDelta(t, 11.32, got.AvgChangeRate, 0.01)
	assert.InDelta(t, 0.1146, got.Volatility, 0.0001)
	assert.InDelta(t, 0.75, got.Confidence, 1e-9)
}
