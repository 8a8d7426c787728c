package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReading() schema.Reading {
	return schema.Reading{
		Question: "Will the project succeed?",
		Cast: schema.CastResult{
			Method:   schema.TimeMethod,
			Upper:    schema.TrigramByNumber(3),
			Lower:    schema.TrigramByNumber(4),
			Mutation: schema.TrigramByNumber(1),
			// (2026+1+16) mod 8 -> 3, (2026+1+16+9) mod 8 -> 4
			Basis: schema.CastBasis{Year: 2026, Month: 1, Day: 16, Hour: 9},
		},
		Judgement: schema.Judgement{
			Relation: schema.GeneratedByRelation,
			Tier:     schema.AuspiciousTier,
			Summary:  "wood generates fire: the lower trigram nourishes the upper.",
		},
		Spirit: schema.TargetSpirit{
			Role:    schema.GeneralSpirit,
			Element: schema.Fire,
			Advice:  "The target spirit is fire: favorable toward the south and in summer.",
		},
		Verdict: schema.Verdict{
			Tier:        schema.AuspiciousTier,
			Explanation: "The elements generate one another; the primary trigrams are favorable and matters trend toward improvement. The mutation trigram Qian signals change to watch.",
			Advice:      "Seize the moment and act decisively.",
			Disclaimer:  "Readings are for reflection only; outcomes still depend on your own effort.",
		},
	}
}

func TestWriteReadingText(t *testing.T) {
	cfg := &contract.Config{
		Output:         schema.TextOut,
		Precision:      2,
		HistoryBackend: schema.SQLiteBackend,
		Width:          120,
	}

	var buf bytes.Buffer
	err := WriteReading(&buf, sampleReading(), cfg, 5*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Question: Will the project succeed?")
	assert.Contains(t, output, "Method: time (upper = (2026+1+16) mod 8 = 3, lower = (2026+1+16+9) mod 8 = 4)")
	assert.Contains(t, output, "Li (3)")
	assert.Contains(t, output, "Zhen (4)")
	assert.Contains(t, output, "Qian (1)")
	assert.Contains(t, output, "☲")
	assert.Contains(t, output, "Judgement: wood generates fire")
	assert.Contains(t, output, "Target spirit: general (fire)")
	assert.Contains(t, output, "Verdict: Auspicious")
	assert.Contains(t, output, "Advice: Seize the moment and act decisively.")
	assert.Contains(t, output, "Note: Readings are for reflection only")
	assert.Contains(t, output, "Cast completed in 5ms. History backend: sqlite")
}

func TestWriteReadingTextOmitsEmptyQuestion(t *testing.T) {
	reading := sampleReading()
	reading.Question = ""

	cfg := &contract.Config{
		Output:         schema.TextOut,
		Precision:      2,
		HistoryBackend: schema.NoneBackend,
	}

	var buf bytes.Buffer
	err := WriteReading(&buf, reading, cfg, 5*time.Millisecond)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Question:")
}

func TestWriteReadingJSON(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.JSONOut,
		Precision: 2,
	}

	var buf bytes.Buffer
	err := WriteReading(&buf, sampleReading(), cfg, 5*time.Millisecond)
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "Will the project succeed?", parsed["question"])
	assert.Contains(t, parsed, "cast")
	assert.Contains(t, parsed, "judgement")
	assert.Contains(t, parsed, "target_spirit")
	assert.Contains(t, parsed, "verdict")

	cast := parsed["cast"].(map[string]any)
	upper := cast["upper"].(map[string]any)
	assert.Equal(t, "Li", upper["name"])
	assert.Equal(t, "fire", upper["element"])

	verdict := parsed["verdict"].(map[string]any)
	assert.Equal(t, "auspicious", verdict["tier"])
}

func TestWriteReadingCSV(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.CSVOut,
		Precision: 2,
	}

	var buf bytes.Buffer
	err := WriteReading(&buf, sampleReading(), cfg, 5*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "question")
	assert.Contains(t, lines[0], "relation")
	assert.Contains(t, lines[0], "tier")
	assert.Contains(t, lines[1], "Will the project succeed?")
	assert.Contains(t, lines[1], "time")
	assert.Contains(t, lines[1], "Li")
	assert.Contains(t, lines[1], "generated-by")
	assert.Contains(t, lines[1], "auspicious")
}

func TestFormatBasis(t *testing.T) {
	tests := []struct {
		name string
		cast schema.CastResult
		want string
	}{
		{
			name: "time shows both mod-8 sums",
			cast: schema.CastResult{
				Upper: schema.TrigramByNumber(7),
				Lower: schema.TrigramByNumber(1),
				Basis: schema.CastBasis{Year: 2026, Month: 2, Day: 27, Hour: 10},
			},
			want: "upper = (2026+2+27) mod 8 = 7, lower = (2026+2+27+10) mod 8 = 1",
		},
		{
			name: "time at midnight keeps the hour term",
			cast: schema.CastResult{
				Upper: schema.TrigramByNumber(3),
				Lower: schema.TrigramByNumber(3),
				Basis: schema.CastBasis{Year: 2026, Month: 1, Day: 16, Hour: 0},
			},
			want: "upper = (2026+1+16) mod 8 = 3, lower = (2026+1+16+0) mod 8 = 3",
		},
		{
			name: "direction",
			cast: schema.CastResult{
				Basis: schema.CastBasis{Direction: "southeast", DirectionCode: 4},
			},
			want: "direction southeast, code 4",
		},
		{
			name: "random",
			cast: schema.CastResult{
				Basis: schema.CastBasis{Random: true},
			},
			want: "random draw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBasis(tt.cast))
		})
	}
}
