package core

import (
	"math"

	"github.com/augur-cli/augur/schema"
)

// Thresholds for trend classification on the mean per-step change.
const (
	risingThreshold  = 0.05
	fallingThreshold = -0.05
)

// AnalyzeTrend computes descriptive statistics over a numeric series:
// direction, strength, volatility and confidence. Fewer than two points,
// or a series whose every step starts from zero, yields an unknown trend
// with zero strength.
func AnalyzeTrend(series []float64) schema.TrendResult {
	if len(series) < 2 {
		return schema.TrendResult{Trend: schema.UnknownTrend}
	}

	// Per-step percentage changes. Steps starting from zero are skipped
	// to keep the ratio well-defined.
	var changes []float64
	for i := 1; i < len(series); i++ {
		if series[i-1] == 0 {
			continue
		}
		changes = append(changes, (series[i]-series[i-1])/series[i-1])
	}
	if len(changes) == 0 {
		return schema.TrendResult{Trend: schema.UnknownTrend}
	}

	avg := mean(changes)

	var trend schema.TrendDirection
	var strength float64
	switch {
	case avg > risingThreshold:
		trend = schema.RisingTrend
		strength = math.Min(math.Abs(avg)*10, 1.0)
	case avg < fallingThreshold:
		trend = schema.FallingTrend
		strength = math.Min(math.Abs(avg)*10, 1.0)
	default:
		trend = schema.OscillatingTrend
		strength = 0.5
	}

	// Volatility is the population standard deviation of the changes.
	var variance float64
	for _, c := range changes {
		variance += (c - avg) * (c - avg)
	}
	volatility := math.Sqrt(variance / float64(len(changes)))

	// Confidence is the fraction of steps agreeing with the majority
	// direction. On an exact positive/negative tie both counts are equal,
	// so the positive side is taken without changing the value.
	var positive, negative int
	for _, c := range changes {
		if c > 0 {
			positive++
		} else if c < 0 {
			negative++
		}
	}
	majority := positive
	if negative > positive {
		majority = negative
	}
	confidence := float64(majority) / float64(len(changes))

	return schema.TrendResult{
		Trend:         trend,
		Strength:      schema.Round(strength, 2),
		AvgChangeRate: schema.Round(avg*100, 2),
		Volatility:    schema.Round(volatility, 4),
		Confidence:    schema.Round(confidence, 2),
	}
}
