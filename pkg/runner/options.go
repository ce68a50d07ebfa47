package runner

import (
	"io"

	"digital.vasic.minitest/pkg/logging"
	"digital.vasic.minitest/pkg/metrics"
	"digital.vasic.minitest/pkg/monitor"
	"digital.vasic.minitest/pkg/timer"
)

// Option configures a Runner.
type Option func(*Runner)

// WithProgress streams one '.' or 'F' per finished case to w,
// followed by a newline after the last case.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

// WithTimer sets the stopwatch used to time a run. Without one
// the elapsed time of a run is 0.
func WithTimer(t timer.Func) Option {
	return func(r *Runner) {
		r.timer = t
	}
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink fed with case, assertion and
// run outcomes.
func WithMetrics(m metrics.RunMetrics) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithCollector publishes run events to c.
func WithCollector(c *monitor.EventCollector) Option {
	return func(r *Runner) {
		r.collector = c
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id func() string) Option {
	return func(r *Runner) {
		if id != nil {
			r.newRunID = id
		}
	}
}
