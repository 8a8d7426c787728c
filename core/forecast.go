// Package core has the forecasting and divination engines.
package core

import (
	"errors"

	"github.com/augur-cli/augur/schema"
)

// ErrEmptySeries is returned when a model is asked to forecast nothing.
var ErrEmptySeries = errors.New("series is empty")

// Forecaster produces point forecasts over an ordered numeric series.
// Implementations are pure: the same series and step count always yield
// the same forecast.
type Forecaster interface {
	Predict(series []float64, steps int) ([]float64, error)
}

// MovingAverage forecasts the mean of the last Window observations,
// constant across the horizon.
type MovingAverage struct {
	Window int
}

// NewMovingAverage returns a moving-average model with the default window.
func NewMovingAverage() *MovingAverage {
	return &MovingAverage{Window: schema.DefaultMAWindow}
}

// Predict returns mean(series[-window:]) repeated steps times. Series
// shorter than the window fall back to the mean of the whole series.
func (m *MovingAverage) Predict(series []float64, steps int) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	window := series
	if len(series) >= m.Window {
		window = series[len(series)-m.Window:]
	}
	return repeat(mean(window), steps), nil
}

// ExponentialSmoothing forecasts the final smoothed value of the series,
// constant across the horizon. Alpha=1 degenerates to the last
// observation; alpha near 0 tends to the first.
type ExponentialSmoothing struct {
	Alpha float64
}

// NewExponentialSmoothing returns a smoothing model with the default alpha.
func NewExponentialSmoothing() *ExponentialSmoothing {
	return &ExponentialSmoothing{Alpha: schema.DefaultEMAAlpha}
}

// Predict seeds the smoother with the first observation and folds the rest
// through s = alpha*x + (1-alpha)*s.
func (e *ExponentialSmoothing) Predict(series []float64, steps int) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	smoothed := series[0]
	for _, x := range series[1:] {
		smoothed = e.Alpha*x + (1-e.Alpha)*smoothed
	}
	return repeat(smoothed, steps), nil
}

// LinearRegression fits an ordinary least squares line of value against
// index and extrapolates it. This is the only model whose forecast steps
// are not identical.
type LinearRegression struct{}

// NewLinearRegression returns a least-squares trend model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Predict fits y = slope*x + intercept over x = 0..n-1 and forecasts
// slope*(n+i-1) + intercept at horizon i (1-indexed). A zero-variance
// x denominator or n < 2 collapses to a flat line at the series mean.
func (l *LinearRegression) Predict(series []float64, steps int) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	n := len(series)
	slope, intercept := fitLine(series)

	out := make([]float64, steps)
	for i := 1; i <= steps; i++ {
		out[i-1] = slope*float64(n+i-1) + intercept
	}
	return out, nil
}

// fitLine computes the OLS slope and intercept of value against index.
func fitLine(series []float64) (slope, intercept float64) {
	n := len(series)
	if n < 2 {
		return 0, mean(series)
	}

	xMean := float64(n-1) / 2
	yMean := mean(series)

	var num, den float64
	for i, y := range series {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0, yMean
	}
	slope = num / den
	intercept = yMean - slope*xMean
	return slope, intercept
}

// mean returns the arithmetic mean of a non-empty series.
func mean(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// repeat fills a horizon with a constant forecast.
func repeat(v float64, steps int) []float64 {
	out := make([]float64, steps)
	for i := range out {
		out[i] = v
	}
	return out
}
