package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augur-cli/augur/schema"
)

func sampleRows() []HistoryRow {
	now := time.Now()
	template := "daily_fortune"
	variables := `{"topic":"rain"}`
	prompt := "Will it rain tomorrow in Seattle?"

	return []HistoryRow{
		{
			ID:        1,
			Kind:      "oracle",
			Template:  &template,
			Variables: &variables,
			Prompt:    &prompt,
			Result:    "Likely showers in the afternoon.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        2,
			Kind:      "forecast",
			Result:    `{"ensemble":13.42}`,
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:        3,
			Kind:      "cast",
			Result:    `{"upper":7,"lower":1}`,
			CreatedAt: now,
		},
	}
}

func TestHistoryRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	rowSchema := parquet.SchemaOf(new(HistoryRow))
	require.NotNil(t, rowSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"id",
		"kind",
		"template",
		"variables",
		"prompt",
		"result",
		"created_at",
	}

	for _, colName := range expectedColumns {
		col, ok := rowSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteHistoryParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "history.parquet")

	data := sampleRows()

	// Write data to Parquet file
	err := WriteHistoryParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[HistoryRow](file)
	defer reader.Close()

	readData := make([]HistoryRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	// Verify data integrity
	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].ID, readData[i].ID, "ID should match")
		assert.Equal(t, data[i].Kind, readData[i].Kind, "Kind should match")
		assert.Equal(t, data[i].Result, readData[i].Result, "Result should match")
		assert.WithinDuration(t, data[i].CreatedAt, readData[i].CreatedAt, time.Nanosecond, "CreatedAt should match within nanosecond precision")

		// Check nullable fields
		if data[i].Template == nil {
			assert.Nil(t, readData[i].Template, "Template should be nil")
		} else {
			require.NotNil(t, readData[i].Template, "Template should not be nil")
			assert.Equal(t, *data[i].Template, *readData[i].Template, "Template should match")
		}

		if data[i].Prompt == nil {
			assert.Nil(t, readData[i].Prompt, "Prompt should be nil")
		} else {
			require.NotNil(t, readData[i].Prompt, "Prompt should not be nil")
			assert.Equal(t, *data[i].Prompt, *readData[i].Prompt, "Prompt should match")
		}
	}
}

func TestWriteHistoryParquet_EmptyData(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_history.parquet")

	// Write empty data
	err := WriteHistoryParquet([]HistoryRow{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteHistoryParquet_InvalidPath(t *testing.T) {
	// Try to write to invalid path
	err := WriteHistoryParquet(sampleRows(), "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertHistoryRecords(t *testing.T) {
	now := time.Now()
	records := []schema.HistoryRecord{
		{
			ID:        1,
			Kind:      schema.OracleRecord,
			Template:  "daily_fortune",
			Variables: map[string]string{"topic": "rain"},
			Prompt:    "Will it rain?",
			Result:    "Yes.",
			CreatedAt: now,
		},
		{
			ID:        2,
			Kind:      schema.CastRecord,
			Result:    `{"upper":7}`,
			CreatedAt: now,
		},
	}

	rows := ConvertHistoryRecords(records)
	require.Len(t, rows, 2)

	// Oracle record keeps its optional fields
	assert.Equal(t, "oracle", rows[0].Kind)
	require.NotNil(t, rows[0].Template)
	assert.Equal(t, "daily_fortune", *rows[0].Template)
	require.NotNil(t, rows[0].Variables)
	assert.JSONEq(t, `{"topic":"rain"}`, *rows[0].Variables)
	require.NotNil(t, rows[0].Prompt)

	// Cast record leaves unused fields nil
	assert.Equal(t, "cast", rows[1].Kind)
	assert.Nil(t, rows[1].Template)
	assert.Nil(t, rows[1].Variables)
	assert.Nil(t, rows[1].Prompt)
}
