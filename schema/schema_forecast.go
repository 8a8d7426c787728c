package schema

import "encoding/json"

// ForecastSlot is the tagged per-model result collected during ensemble
// aggregation: either a numeric forecast or the reason the model failed.
type ForecastSlot struct {
	Value float64
	Err   string
}

// OK reports whether the slot holds a numeric forecast.
func (s ForecastSlot) OK() bool {
	return s.Err == ""
}

// MarshalJSON renders a slot as a bare number on success and as the error
// string on failure, matching the persisted history format.
func (s ForecastSlot) MarshalJSON() ([]byte, error) {
	if !s.OK() {
		return json.Marshal(s.Err)
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *ForecastSlot) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		s.Value = v
		s.Err = ""
		return nil
	}
	var msg string
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	s.Value = 0
	s.Err = msg
	return nil
}

// TrendResult holds the descriptive statistics of a numeric series.
type TrendResult struct {
	Trend         TrendDirection `json:"trend"`
	Strength      float64        `json:"strength"`
	AvgChangeRate float64        `json:"avg_change_rate"` // mean per-step change, percent
	Volatility    float64        `json:"volatility"`      // population stddev of changes
	Confidence    float64        `json:"confidence"`      // fraction agreeing with majority direction
}

// EnsembleResult is the combined output of the forecasting path.
// Err is set (and Predictions left empty) when the series is too short;
// callers branch on the field rather than on a returned error.
type EnsembleResult struct {
	Trend       TrendResult              `json:"trend"`
	Predictions map[ModelID]ForecastSlot `json:"predictions"`
	Ensemble    float64                  `json:"ensemble"`
	Steps       int                      `json:"steps"`
	Err         string                   `json:"error,omitempty"`
}

// Insufficient reports whether the result was produced from too little data.
func (r EnsembleResult) Insufficient() bool {
	return r.Err != ""
}
