// Package metrics records run, case and assertion counters for
// the minitest runtime.
package metrics

// RunMetrics defines the interface for recording run metrics.
type RunMetrics interface {
	// RecordCase records the outcome of one test case.
	RecordCase(name string, passed bool)
	// RecordAssertion records one evaluated assertion.
	RecordAssertion(kind string, passed bool)
	// RecordRun records a finished run.
	RecordRun(failures int, elapsedSeconds float64)
}

// NoopMetrics is a no-op implementation of RunMetrics useful for
// testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordCase(_ string, _ bool)      {}
func (NoopMetrics) RecordAssertion(_ string, _ bool) {}
func (NoopMetrics) RecordRun(_ int, _ float64)       {}

func resultLabel(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}
