// Package output provides logging and terminal output for newcrate.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// TraceLevel is the most verbose level, below debug.
const TraceLevel = log.DebugLevel - 4

// logger is the global logger instance.
var logger = newLogger(os.Stderr, log.ErrorLevel, false)

// LogConfig holds logging configuration resolved from flags and config.
type LogConfig struct {
	// Verbosity is the number of -v flags given.
	Verbosity int

	// Timestamps controls whether timestamps are shown.
	// nil means off unless verbosity reaches debug.
	Timestamps *bool
}

// LevelForVerbosity maps a -v count to a log level:
// 0 error, 1 warn, 2 info, 3 debug, 4 and above trace.
func LevelForVerbosity(v int) log.Level {
	switch {
	case v <= 0:
		return log.ErrorLevel
	case v == 1:
		return log.WarnLevel
	case v == 2:
		return log.InfoLevel
	case v == 3:
		return log.DebugLevel
	default:
		return TraceLevel
	}
}

// SetupLogging configures the global logger on stderr.
func SetupLogging(cfg LogConfig) {
	SetupLoggingTo(os.Stderr, cfg)
}

// SetupLoggingTo configures the global logger to write to w.
func SetupLoggingTo(w io.Writer, cfg LogConfig) {
	level := LevelForVerbosity(cfg.Verbosity)
	debug := level <= log.DebugLevel

	timestamps := debug
	if !debug && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = newLogger(w, level, timestamps)
	logger.SetReportCaller(debug)
}

func newLogger(w io.Writer, level log.Level, timestamps bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		TimeFormat:      "15:04:05",
	})

	styles := log.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRAC").
		Bold(true).
		MaxWidth(4).
		Foreground(ColorDimGray)
	l.SetStyles(styles)

	return l
}

// Level returns the current log level.
func Level() log.Level {
	return logger.GetLevel()
}

// Trace logs a trace message.
func Trace(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Log(TraceLevel, msg, keyvals...)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Error(msg, keyvals...)
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
