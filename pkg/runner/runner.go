// Package runner executes a test suite: every case once, in
// registration order, on the calling goroutine. It optionally
// streams a progress line, times the run, and publishes logs,
// metrics and monitor events about it.
package runner

import (
	"io"

	"github.com/google/uuid"

	"digital.vasic.minitest/pkg/assertion"
	"digital.vasic.minitest/pkg/logging"
	"digital.vasic.minitest/pkg/metrics"
	"digital.vasic.minitest/pkg/monitor"
	"digital.vasic.minitest/pkg/suite"
	"digital.vasic.minitest/pkg/timer"
)

// Progress characters written after each case.
const (
	progressPass = '.'
	progressFail = 'F'
)

// Runner executes suites. The zero value is not usable; create
// one with New.
type Runner struct {
	progress  io.Writer
	timer     timer.Func
	logger    logging.Logger
	metrics   metrics.RunMetrics
	collector *monitor.EventCollector
	newRunID  func() string
}

// New creates a Runner with the supplied options.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopMetrics{},
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes s with an optional progress sink and stopwatch,
// either of which may be nil, and returns the number of failed
// cases.
func Run(s *suite.Suite, progress io.Writer, t timer.Func) uint {
	return New(WithProgress(progress), WithTimer(t)).Run(s)
}

// Run executes every case of s once in registration order and
// marks the suite completed, whatever the outcome. Cases failed
// in an earlier run are reset before they execute again. It
// returns the number of cases that failed.
func (r *Runner) Run(s *suite.Suite) uint {
	runID := r.newRunID()
	log := r.logger.WithFields(
		logging.StringField("run_id", runID),
	)
	cases := s.Cases()

	log.Info("run_started", logging.IntField("cases", len(cases)))
	if r.collector != nil {
		r.collector.EmitRunStarted(runID, len(cases))
	}

	s.SetObserver(func(_ *suite.Case, k assertion.Kind, passed bool) {
		r.metrics.RecordAssertion(k.String(), passed)
	})
	defer s.SetObserver(nil)

	if r.timer != nil {
		r.timer(true)
	}

	progress := &progressWriter{w: r.progress, log: log}
	var failures uint

	for i, tc := range cases {
		tc.Run()
		r.metrics.RecordCase(tc.Name(), !tc.Failed())

		if !tc.Failed() {
			progress.mark(progressPass)
			log.Debug("case_passed",
				logging.StringField("case", tc.Name()),
			)
			if r.collector != nil {
				r.collector.EmitCasePassed(runID, i, tc.Name())
			}
			continue
		}

		failures++
		progress.mark(progressFail)

		f, _ := tc.Failure()
		log.Info("case_failed",
			logging.StringField("case", tc.Name()),
			logging.StringField("call", f.Call()),
			logging.StringField("detail", f.Detail()),
			logging.StringField("location", f.Location()),
		)
		if r.collector != nil {
			r.collector.EmitCaseFailed(runID, i, tc.Name(), f)
		}
	}
	progress.end()

	var elapsed float64
	if r.timer != nil {
		elapsed = r.timer(false)
	}
	s.Complete(elapsed)

	r.metrics.RecordRun(int(failures), elapsed)
	log.Info("run_completed",
		logging.IntField("cases", len(cases)),
		logging.IntField("failures", int(failures)),
		logging.Float64Field("elapsed_seconds", elapsed),
	)
	if r.collector != nil {
		r.collector.EmitRunCompleted(
			runID, len(cases), int(failures), elapsed,
		)
	}

	return failures
}

// progressWriter writes the live progress line. A failing sink
// is reported once and then ignored so the run always finishes.
type progressWriter struct {
	w      io.Writer
	log    logging.Logger
	failed bool
}

func (p *progressWriter) mark(c byte) {
	p.write([]byte{c})
}

func (p *progressWriter) end() {
	p.write([]byte{'\n'})
}

func (p *progressWriter) write(b []byte) {
	if p.w == nil || p.failed {
		return
	}
	if _, err := p.w.Write(b); err != nil {
		p.failed = true
		p.log.Warn("progress_write_failed", logging.ErrorField(err))
	}
}
