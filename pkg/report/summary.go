package report

import (
	"time"

	"github.com/google/uuid"

	"digital.vasic.minitest/pkg/assertion"
	"digital.vasic.minitest/pkg/suite"
)

// Case statuses used in summaries.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Summary is a structured view of a completed run.
type Summary struct {
	ID             string        `json:"id" yaml:"id"`
	GeneratedAt    time.Time     `json:"generated_at" yaml:"generated_at"`
	Total          int           `json:"total" yaml:"total"`
	Passed         int           `json:"passed" yaml:"passed"`
	Failed         int           `json:"failed" yaml:"failed"`
	ElapsedSeconds float64       `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Cases          []CaseSummary `json:"cases" yaml:"cases"`
}

// CaseSummary describes the outcome of one case.
type CaseSummary struct {
	Index   int             `json:"index" yaml:"index"`
	Name    string          `json:"name" yaml:"name"`
	Status  string          `json:"status" yaml:"status"`
	Failure *FailureSummary `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// FailureSummary describes the failure of a case in both raw and
// rendered form.
type FailureSummary struct {
	Kind   assertion.Kind       `json:"kind" yaml:"kind"`
	File   string               `json:"file" yaml:"file"`
	Line   int                  `json:"line" yaml:"line"`
	Args   []assertion.Argument `json:"args" yaml:"args"`
	Call   string               `json:"call" yaml:"call"`
	Detail string               `json:"detail" yaml:"detail"`
}

// BuildSummary creates a summary of the last run of s. It returns
// nil if the suite has not been run.
func BuildSummary(s *suite.Suite) *Summary {
	if !s.Completed() {
		return nil
	}

	cases := s.Cases()
	summary := &Summary{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Total:          len(cases),
		ElapsedSeconds: s.Elapsed(),
		Cases:          make([]CaseSummary, 0, len(cases)),
	}

	for i, tc := range cases {
		cs := CaseSummary{
			Index:  i,
			Name:   tc.Name(),
			Status: StatusPassed,
		}

		if f, ok := tc.Failure(); tc.Failed() && ok {
			cs.Status = StatusFailed
			cs.Failure = &FailureSummary{
				Kind:   f.Kind,
				File:   f.File,
				Line:   f.Line,
				Args:   f.Args,
				Call:   f.Call(),
				Detail: f.Detail(),
			}
			summary.Failed++
		} else {
			summary.Passed++
		}

		summary.Cases = append(summary.Cases, cs)
	}

	return summary
}
