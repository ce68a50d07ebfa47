package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.minitest/pkg/suite"
)

const separatorWidth = 70

var (
	heavySeparator = strings.Repeat("=", separatorWidth)
	lightSeparator = strings.Repeat("-", separatorWidth)
)

// TextReporter renders the fixed human-readable report.
type TextReporter struct{}

// Format returns "text".
func (TextReporter) Format() string { return FormatText }

// WriteReport renders s to w; see Print.
func (TextReporter) WriteReport(w io.Writer, s *suite.Suite) error {
	return Print(w, s)
}

// Print writes the report of a completed suite to w: a block per
// failed case in registration order, then the run summary. It
// writes nothing if the suite has not been run, and never
// modifies the suite.
func Print(w io.Writer, s *suite.Suite) error {
	if !s.Completed() {
		return nil
	}

	if _, err := io.WriteString(w, Render(s)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Render returns the text report of s, or "" if it has not been
// run.
func Render(s *suite.Suite) string {
	if !s.Completed() {
		return ""
	}

	var sb strings.Builder
	failures := 0

	for _, tc := range s.Cases() {
		f, ok := tc.Failure()
		if !tc.Failed() || !ok {
			continue
		}
		failures++

		sb.WriteString(heavySeparator + "\n")
		fmt.Fprintf(&sb, "FAIL: %s\n", tc.Name())
		sb.WriteString(lightSeparator + "\n")
		fmt.Fprintf(&sb, "%s\n\t%s\n", f.Location(), f.Call())
		fmt.Fprintf(&sb, "Error:\n\t%s\n\n", f.Detail())
	}

	n := s.Count()
	noun := "tests"
	if n == 1 {
		noun = "test"
	}

	sb.WriteString(lightSeparator + "\n")
	fmt.Fprintf(&sb, "Ran %d %s in %.3fs\n\n", n, noun, s.Elapsed())

	if failures > 0 {
		fmt.Fprintf(&sb, "FAILED (failures=%d)\n", failures)
	} else {
		sb.WriteString("OK\n")
	}

	return sb.String()
}
