package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  logger.LogLevel
		valid bool
	}{
		{"debug", logger.DebugLevel, true},
		{"info", logger.InfoLevel, true},
		{"warning", logger.WarnLevel, true},
		{"warn", logger.WarnLevel, true},
		{"error", logger.ErrorLevel, true},
		{"loud", logger.WarnLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONOutputWithSchema(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(&buf, logger.DebugLevel, true)
	t.Cleanup(func() { logger.InitWriter(&bytes.Buffer{}, logger.WarnLevel, true) })

	logger.WithSchema(logger.Debug(), "file_error", "File 'a.txt' not found.").Msg("classified")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "file_error", entry["error_type"])
	assert.Equal(t, "File 'a.txt' not found.", entry["error_msg"])
	assert.Equal(t, "classified", entry["message"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(&buf, logger.WarnLevel, true)
	t.Cleanup(func() { logger.InitWriter(&bytes.Buffer{}, logger.WarnLevel, true) })

	logger.Default().Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Default().ErrorWithCode(errors.New().New(errors.ErrTypeMismatch)).Msg("shown")
	assert.Contains(t, buf.String(), `"error_code":"type_mismatch"`)
}
