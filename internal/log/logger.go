// Package log is a small verbosity-levelled wrapper around log/slog.
// Diagnostics go to stderr so stdout carries only comparison results.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Verbosity levels, selected with repeated -v flags.
const (
	LevelQuiet = iota // errors and warnings only
	LevelInfo         // -v: source selection, resolved reference
	LevelDebug        // -vv: parsed offset, config files
	LevelTrace        // -vvv: every sample
)

const slogLevelTrace = slog.Level(-8)

var (
	verbosity int
	logger    *slog.Logger
)

// Initialize sets up the global logger at the given verbosity.
func Initialize(level int, w io.Writer) {
	verbosity = level
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && a.Value.Any() == slogLevelTrace {
				return slog.String(slog.LevelKey, "TRACE")
			}
			return a
		},
	}))
}

func slogLevel(level int) slog.Level {
	switch {
	case level >= LevelTrace:
		return slogLevelTrace
	case level >= LevelDebug:
		return slog.LevelDebug
	case level >= LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Info logs at info level (-v)
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Debug logs at debug level (-vv)
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Trace logs at trace level (-vvv)
func Trace(msg string, args ...any) {
	logger.Log(context.Background(), slogLevelTrace, msg, args...)
}

// Warn logs at warn level (always visible)
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs at error level (always visible)
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// IsDebug returns true if debug-level logging is enabled
func IsDebug() bool {
	return verbosity >= LevelDebug
}

// IsTrace returns true if trace-level logging is enabled
func IsTrace() bool {
	return verbosity >= LevelTrace
}

func init() {
	Initialize(LevelQuiet, os.Stderr)
}
