package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/augur-cli/augur/schema"
)

func TestGetPlainStrengthLabel(t *testing.T) {
	tests := []struct {
		name     string
		strength float64
		expected string
	}{
		{"strong upper", 1.0, StrongValue},
		{"strong boundary", 0.7, StrongValue},
		{"moderate", 0.5, ModerateValue},
		{"moderate boundary", 0.3, ModerateValue},
		{"weak", 0.29, WeakValue},
		{"zero", 0.0, WeakValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainStrengthLabel(tt.strength))
		})
	}
}

func TestGetColorStrengthLabel(t *testing.T) {
	// Colored labels still contain the plain text regardless of escapes.
	for _, strength := range []float64{0.9, 0.5, 0.1} {
		plain := GetPlainStrengthLabel(strength)
		assert.True(t, strings.Contains(GetColorStrengthLabel(strength), plain))
	}
}

func TestGetPlainTierLabel(t *testing.T) {
	assert.Equal(t, "Auspicious", GetPlainTierLabel(schema.AuspiciousTier))
	assert.Equal(t, "Inauspicious", GetPlainTierLabel(schema.InauspiciousTier))
	assert.Equal(t, "Balanced", GetPlainTierLabel(schema.BalancedTier))
}

func TestGetColorTierLabel(t *testing.T) {
	for _, tier := range []schema.Tier{schema.AuspiciousTier, schema.InauspiciousTier, schema.BalancedTier} {
		assert.True(t, strings.Contains(GetColorTierLabel(tier), GetPlainTierLabel(tier)))
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	assert.True(t, strings.HasSuffix(GetHistoryDBFilePath(), ".augur_history.db"))
	assert.NotEmpty(t, GetHistoryJSONDirPath())
	assert.NotEmpty(t, GetTemplatesDirPath())
}
