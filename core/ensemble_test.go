package core

import (
	"errors"
	"testing"

	"github.com/augur-cli/augur/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingModel always errors; panicModel always panics. Both stand in for
// a broken forecaster during aggregation tests.
type failingModel struct{}

func (failingModel) Predict([]float64, int) ([]float64, error) {
	return nil, errors.New("model blew up")
}

type panicModel struct{}

func (panicModel) Predict([]float64, int) ([]float64, error) {
	panic("out of bounds")
}

// TestEnsemblePredictWorkedExample pins the weighted aggregate on the
// reference series.
func TestEnsemblePredictWorkedExample(t *testing.T) {
	result := NewEnsemblePredictor().Predict(workedSeries, 1)

	require.False(t, result.Insufficient())
	require.Len(t, result.Predictions, 3)

	ma := result.Predictions[schema.MovingAverageModel]
	require.True(t, ma.OK())
	assert.InDelta(t, 12.2, ma.Value, 1e-9)

	ema := result.Predictions[schema.ExpSmoothingModel]
	require.True(t, ema.OK())
	assert.InDelta(t, 12.4828, ema.Value, 1e-9)

	linear := result.Predictions[schema.LinearModel]
	require.True(t, linear.OK())
	assert.InDelta(t, 15.5, linear.Value, 1e-9)

	// 0.30*12.2 + 0.35*12.4828 + 0.35*15.5, rounded to 2 decimals.
	assert.InDelta(t, 13.45, result.Ensemble, 1e-9)
	assert.Equal(t, 1, result.Steps)
	assert.Equal(t, schema.RisingTrend, result.Trend.Trend)
}

// TestEnsemblePredictInsufficientData verifies short series never raise
// and carry an empty prediction map.
func TestEnsemblePredictInsufficientData(t *testing.T) {
	for _, series := range [][]float64{nil, {1}, {1, 2}} {
		result := NewEnsemblePredictor().Predict(series, 1)
		assert.True(t, result.Insufficient())
		assert.Empty(t, result.Predictions)
		assert.Zero(t, result.Ensemble)
		assert.Equal(t, schema.UnknownTrend, result.Trend.Trend)
	}
}

// TestEnsemblePredictIsolatesFailure checks a broken model is recorded in
// its slot while the remaining weights renormalize.
func TestEnsemblePredictIsolatesFailure(t *testing.T) {
	p := NewEnsemblePredictor()
	p.models[schema.LinearModel] = failingModel{}

	result := p.Predict(workedSeries, 1)

	require.False(t, result.Insufficient())
	broken := result.Predictions[schema.LinearModel]
	assert.False(t, broken.OK())
	assert.Equal(t, "model blew up", broken.Err)

	// Only ma (0.30) and ema (0.35) participate.
	expected := schema.Round((0.30*12.2+0.35*12.4828)/0.65, 2)
	assert.InDelta(t, expected, result.Ensemble, 1e-9)
}

// TestEnsemblePredictRecoversPanic checks a panicking model is captured
// as an error slot instead of crashing aggregation.
func TestEnsemblePredictRecoversPanic(t *testing.T) {
	p := NewEnsemblePredictor()
	p.models[schema.ExpSmoothingModel] = panicModel{}

	result := p.Predict(workedSeries, 1)

	slot := result.Predictions[schema.ExpSmoothingModel]
	assert.False(t, slot.OK())
	assert.Contains(t, slot.Err, "model panic")
}

// TestEnsemblePredictAllModelsFailed confirms a zero realized weight sum
// yields a normal zero ensemble, not an error.
func TestEnsemblePredictAllModelsFailed(t *testing.T) {
	p := NewEnsemblePredictor()
	for id := range p.models {
		p.models[id] = failingModel{}
	}

	result := p.Predict(workedSeries, 1)

	assert.False(t, result.Insufficient())
	assert.Zero(t, result.Ensemble)
	for _, slot := range result.Predictions {
		assert.False(t, slot.OK())
	}
}
