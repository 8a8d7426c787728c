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

func sampleOracleResult() schema.OracleResult {
	return schema.OracleResult{
		Template: "fortune",
		Prompt:   "You are a fortune teller. The question is: will it rain?",
		Model:    "glm-4-flash",
		Replies:  []string{"The skies favor patience.", "Rain arrives before dusk."},
	}
}

func TestWriteOracleResultsText(t *testing.T) {
	cfg := &contract.Config{
		Output:         schema.TextOut,
		Precision:      2,
		HistoryBackend: schema.SQLiteBackend,
	}

	var buf bytes.Buffer
	err := WriteOracleResults(&buf, sampleOracleResult(), cfg, 200*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Template: fortune")
	assert.Contains(t, output, "Prompt:\nYou are a fortune teller.")
	assert.Contains(t, output, "Reply 1:\nThe skies favor patience.")
	assert.Contains(t, output, "Reply 2:\nRain arrives before dusk.")
	assert.Contains(t, output, "Oracle (glm-4-flash) completed in 200ms with 2 replies. History backend: sqlite")
}

func TestWriteOracleResultsJSON(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.JSONOut,
		Precision: 2,
	}

	var buf bytes.Buffer
	err := WriteOracleResults(&buf, sampleOracleResult(), cfg, 200*time.Millisecond)
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "fortune", parsed["template"])
	assert.Equal(t, "glm-4-flash", parsed["model"])
	assert.Contains(t, parsed["prompt"], "will it rain?")

	replies := parsed["replies"].([]any)
	require.Len(t, replies, 2)
	assert.Equal(t, "The skies favor patience.", replies[0])
}

func TestWriteOracleResultsCSV(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.CSVOut,
		Precision: 2,
	}

	var buf bytes.Buffer
	err := WriteOracleResults(&buf, sampleOracleResult(), cfg, 200*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "template,model,reply_index,reply", lines[0])
	assert.Contains(t, lines[1], "fortune")
	assert.Contains(t, lines[1], "1,The skies favor patience.")
	assert.Contains(t, lines[2], "2,Rain arrives before dusk.")
}
