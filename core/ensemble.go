package core

import (
	"fmt"

	"github.com/augur-cli/augur/schema"
)

// minEnsemblePoints is the minimum series length for ensemble prediction.
const minEnsemblePoints = 3

// EnsemblePredictor combines the three forecasting models and the trend
// analyzer into one weighted estimate. A single model failing does not
// abort aggregation; its slot records the reason instead.
type EnsemblePredictor struct {
	models  map[schema.ModelID]Forecaster
	weights map[schema.ModelID]float64
}

// NewEnsemblePredictor returns an ensemble over the default models with
// the fixed static weights.
func NewEnsemblePredictor() *EnsemblePredictor {
	return &EnsemblePredictor{
		models: map[schema.ModelID]Forecaster{
			schema.MovingAverageModel: NewMovingAverage(),
			schema.ExpSmoothingModel:  NewExponentialSmoothing(),
			schema.LinearModel:        NewLinearRegression(),
		},
		weights: schema.EnsembleWeights,
	}
}

// Predict runs the trend analyzer and every model once, taking the first
// forecast step from each, and aggregates the numeric slots into a single
// weighted scalar rounded to 2 decimals. Fewer than three points returns
// an explicit insufficient-data result with an empty prediction map.
func (p *EnsemblePredictor) Predict(series []float64, steps int) schema.EnsembleResult {
	if len(series) < minEnsemblePoints {
		return schema.EnsembleResult{
			Trend:       schema.TrendResult{Trend: schema.UnknownTrend},
			Predictions: map[schema.ModelID]schema.ForecastSlot{},
			Steps:       steps,
			Err:         fmt.Sprintf("insufficient data: need at least %d points, got %d", minEnsemblePoints, len(series)),
		}
	}

	trend := AnalyzeTrend(series)

	predictions := make(map[schema.ModelID]schema.ForecastSlot, len(p.models))
	for id, model := range p.models {
		predictions[id] = runModel(model, series, steps)
	}

	// Normalize by the realized weight sum: only models that produced a
	// number participate. All models failing is a normal zero result.
	var total, weightSum float64
	for id, weight := range p.weights {
		slot, ok := predictions[id]
		if !ok || !slot.OK() {
			continue
		}
		total += slot.Value * weight
		weightSum += weight
	}
	var ensemble float64
	if weightSum > 0 {
		ensemble = schema.Round(total/weightSum, 2)
	}

	return schema.EnsembleResult{
		Trend:       trend,
		Predictions: predictions,
		Ensemble:    ensemble,
		Steps:       steps,
	}
}

// runModel invokes a single model in isolation, converting any failure
// (error or panic) into an error slot.
func runModel(model Forecaster, series []float64, steps int) (slot schema.ForecastSlot) {
	defer func() {
		if r := recover(); r != nil {
			slot = schema.ForecastSlot{Err: fmt.Sprintf("model panic: %v", r)}
		}
	}()

	values, err := model.Predict(series, steps)
	if err != nil {
		return schema.ForecastSlot{Err: err.Error()}
	}
	if len(values) == 0 {
		return schema.ForecastSlot{Err: "model returned no forecast"}
	}
	return schema.ForecastSlot{Value: values[0]}
}
