package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, cfg)
	return &buf
}

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      log.Level
	}{
		{-1, log.ErrorLevel},
		{0, log.ErrorLevel},
		{1, log.WarnLevel},
		{2, log.InfoLevel},
		{3, log.DebugLevel},
		{4, TraceLevel},
		{9, TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogging_DefaultErrorOnly(t *testing.T) {
	buf := captureLog(LogConfig{})

	Info("hidden-info")
	Warn("hidden-warn")
	Error("shown-error")

	out := buf.String()
	assert.NotContains(t, out, "hidden-info")
	assert.NotContains(t, out, "hidden-warn")
	assert.Contains(t, out, "shown-error")
	assert.Equal(t, log.ErrorLevel, Level())
}

func TestSetupLogging_InfoShowsCreatedLine(t *testing.T) {
	buf := captureLog(LogConfig{Verbosity: 2, Timestamps: BoolPtr(false)})

	Info("Created /tmp/demo/myapp")
	Debug("hidden-debug")

	out := buf.String()
	assert.Contains(t, out, "Created /tmp/demo/myapp")
	assert.NotContains(t, out, "hidden-debug")
	assert.NotRegexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_TimestampsFromConfig(t *testing.T) {
	buf := captureLog(LogConfig{Verbosity: 1, Timestamps: BoolPtr(true)})
	Warn("stamped")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_DebugForcesTimestamps(t *testing.T) {
	buf := captureLog(LogConfig{Verbosity: 3, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")

	out := buf.String()
	assert.Contains(t, out, "verbose-msg")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_Trace(t *testing.T) {
	buf := captureLog(LogConfig{Verbosity: 4})
	Trace("trace-msg", "path", "/tmp/x")

	out := buf.String()
	assert.Contains(t, out, "TRAC")
	assert.Contains(t, out, "trace-msg")
	assert.Contains(t, out, "/tmp/x")

	buf = captureLog(LogConfig{Verbosity: 3})
	Trace("hidden-trace")
	assert.NotContains(t, buf.String(), "hidden-trace")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
