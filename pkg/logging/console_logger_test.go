package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Info("hello world")
	logger.Warn("warning message")
	logger.Error("error occurred")

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "hello world")
	assert.Contains(t, output, "WARN")
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "ERROR")
	assert.Contains(t, output, "error occurred")
}

func TestConsoleLogger_Debug_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	logger.Debug("debug message")

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "debug message")
}

func TestConsoleLogger_Debug_NotVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Debug("debug message")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	child := logger.WithFields(LogField("suite", "demo"))
	child.Info("run", IntField("cases", 4))

	output := buf.String()
	assert.Contains(t, output, "cases=4")
	assert.Contains(t, output, "suite=demo")
}

func TestConsoleLogger_Close(t *testing.T) {
	assert.NoError(t, NewConsoleLogger(false).Close())
}
