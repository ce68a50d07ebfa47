// Package logging provides structured logging for the minitest
// runtime with console, JSON Lines and multi-destination output.
package logging

import (
	"fmt"
	"io"
	"strings"
)

// Logger defines the interface for structured run logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name case-insensitively. Unknown
// names fall back to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatNone    = "none"
)

// New creates a logger writing to w in the given format. Verbose
// enables debug messages.
func New(format string, verbose bool, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatConsole:
		return NewConsoleLoggerWithWriter(w, verbose), nil
	case FormatJSON:
		level := LevelInfo
		if verbose {
			level = LevelDebug
		}
		return NewJSONLogger(LoggerConfig{
			Output:  w,
			Level:   level,
			Verbose: verbose,
		})
	case FormatNone:
		return NullLogger{}, nil
	default:
		return nil, fmt.Errorf(
			"unknown log format: %s", format,
		)
	}
}
