package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"digital.vasic.minitest/pkg/suite"
)

// YAMLReporter renders run summaries as YAML.
type YAMLReporter struct{}

// Format returns "yaml".
func (YAMLReporter) Format() string { return FormatYAML }

// WriteReport writes the YAML summary of s to w.
func (YAMLReporter) WriteReport(w io.Writer, s *suite.Suite) error {
	summary := BuildSummary(s)
	if summary == nil {
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
