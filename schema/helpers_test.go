package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrigramByNumber verifies lookup and the defensive fallback.
func TestTrigramByNumber(t *testing.T) {
	assert.Equal(t, "Qian", TrigramByNumber(1).Name)
	assert.Equal(t, "Kun", TrigramByNumber(8).Name)

	unknown := TrigramByNumber(42)
	assert.Equal(t, "Unknown", unknown.Name)
	assert.Equal(t, 42, unknown.Number)
}

// TestRound checks half-up rounding at the supported precisions.
func TestRound(t *testing.T) {
	assert.InDelta(t, 12.35, Round(12.345, 2), 1e-9)
	assert.InDelta(t, 0.1235, Round(0.12349, 4), 1e-9)
	assert.InDelta(t, -3.14, Round(-3.14159, 2), 1e-9)
}

// TestTierFor covers all relation-to-tier mappings.
func TestTierFor(t *testing.T) {
	tests := []struct {
		relation Relation
		tier     Tier
	}{
		{ParityRelation, BalancedTier},
		{GeneratingRelation, AuspiciousTier},
		{GeneratedByRelation, AuspiciousTier},
		{RestrainingRelation, InauspiciousTier},
		{RestrainedByRelation, InauspiciousTier},
		{UnrelatedRelation, BalancedTier},
	}
	for _, tt := range tests {
		t.Run(string(tt.relation), func(t *testing.T) {
			assert.Equal(t, tt.tier, TierFor(tt.relation))
		})
	}
}

// TestForecastSlotJSON checks the tagged value-or-error representation.
func TestForecastSlotJSON(t *testing.T) {
	ok := ForecastSlot{Value: 12.2}
	data, err := json.Marshal(ok)
	require.NoError(t, err)
	assert.Equal(t, "12.2", string(data))

	failed := ForecastSlot{Err: "model blew up"}
	data, err = json.Marshal(failed)
	require.NoError(t, err)
	assert.Equal(t, `"model blew up"`, string(data))

	var back ForecastSlot
	require.NoError(t, json.Unmarshal([]byte(`"model blew up"`), &back))
	assert.False(t, back.OK())
	require.NoError(t, json.Unmarshal([]byte(`15.4`), &back))
	assert.True(t, back.OK())
	assert.InDelta(t, 15.4, back.Value, 1e-9)
}
