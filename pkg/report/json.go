package report

import (
	"encoding/json"
	"fmt"
	"io"

	"digital.vasic.minitest/pkg/suite"
)

// JSONReporter renders run summaries as JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Format returns "json".
func (r *JSONReporter) Format() string { return FormatJSON }

// GenerateSummary returns the JSON summary of s, or nil if the
// suite has not been run.
func (r *JSONReporter) GenerateSummary(
	s *suite.Suite,
) ([]byte, error) {
	summary := BuildSummary(s)
	if summary == nil {
		return nil, nil
	}

	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteReport writes the JSON summary of s to w, followed by a
// newline.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	s *suite.Suite,
) error {
	data, err := r.GenerateSummary(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if data == nil {
		return nil
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
