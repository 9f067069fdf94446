package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{level: LevelInfo, fields: map[string]interface{}{}}
	logger.AddOutput(NewWriterOutput(&buf, FormatText))

	logger.Debug("hidden")
	logger.Info("loaded", Field{Key: "count", Value: 3}, Field{Key: "file", Value: "a.json"})
	logger.With(Field{Key: "component", Value: "watcher"}).Warnf("retry %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] loaded count=3 file=a.json")
	assert.Contains(t, out, "[WARN] retry 2 component=watcher")
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{level: LevelDebug, fields: map[string]interface{}{}}
	logger.AddOutput(NewWriterOutput(&buf, FormatJSON))

	logger.Error("boom", Field{Key: "path", Value: "/tmp/x"})

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, "/tmp/x", entry.Fields["path"])
}

func TestNewLoggerFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger("info", logFile, false)
	require.NoError(t, err)
	logger.Info("written to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewLoggerBadPath(t *testing.T) {
	_, err := NewLogger("info", filepath.Join(t.TempDir(), "missing", "app.log"), false)
	assert.Error(t, err)
}

func TestGlobalHelpersWithoutLogger(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() {
		LogInfo("nothing")
		LogDebugf("nothing %d", 1)
		LogErrorf("nothing %s", "x")
	})
}
