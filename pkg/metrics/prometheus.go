package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements RunMetrics with Prometheus
// collectors registered on its own registry, so several
// instances can coexist in one process.
type PrometheusMetrics struct {
	registry     *prometheus.Registry
	cases        *prometheus.CounterVec
	assertions   *prometheus.CounterVec
	runs         prometheus.Counter
	runDuration  prometheus.Histogram
	lastFailures prometheus.Gauge
}

// NewPrometheusMetrics creates a PrometheusMetrics with a fresh
// registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		registry: reg,
		cases: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minitest_cases_total",
				Help: "Total number of executed test cases",
			},
			[]string{"result"},
		),
		assertions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minitest_assertions_total",
				Help: "Total number of evaluated assertions",
			},
			[]string{"kind", "result"},
		),
		runs: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "minitest_runs_total",
				Help: "Total number of suite runs",
			},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "minitest_run_duration_seconds",
				Help:    "Suite run duration in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 60},
			},
		),
		lastFailures: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "minitest_last_run_failures",
				Help: "Number of failed cases in the last run",
			},
		),
	}
}

// RecordCase increments the case counter for the outcome.
func (m *PrometheusMetrics) RecordCase(_ string, passed bool) {
	m.cases.WithLabelValues(resultLabel(passed)).Inc()
}

// RecordAssertion increments the assertion counter for the kind
// and outcome.
func (m *PrometheusMetrics) RecordAssertion(kind string, passed bool) {
	m.assertions.WithLabelValues(kind, resultLabel(passed)).Inc()
}

// RecordRun counts the run, observes its duration and sets the
// failure gauge.
func (m *PrometheusMetrics) RecordRun(failures int, elapsedSeconds float64) {
	m.runs.Inc()
	m.runDuration.Observe(elapsedSeconds)
	m.lastFailures.Set(float64(failures))
}

// Registry returns the registry the collectors live on.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the metrics in the
// Prometheus text format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
