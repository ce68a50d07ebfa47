// Package report renders the results of a completed suite run:
// the fixed-format text report, and JSON or YAML summaries for
// tooling.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"digital.vasic.minitest/pkg/suite"
)

// ErrUnknownFormat is returned by ForFormat for an unsupported
// report format.
var ErrUnknownFormat = errors.New("unknown report format")

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Reporter defines the interface for rendering suite results.
// Reporters write nothing for a suite that has not been run.
type Reporter interface {
	// Format returns the name of the report format.
	Format() string

	// WriteReport renders the results of s to w.
	WriteReport(w io.Writer, s *suite.Suite) error
}

// ForFormat returns the reporter for the named format.
func ForFormat(format string) (Reporter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return TextReporter{}, nil
	case FormatJSON:
		return NewJSONReporter(true), nil
	case FormatYAML, "yml":
		return YAMLReporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
