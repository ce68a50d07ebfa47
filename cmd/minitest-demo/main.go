// Package main runs a small example suite with the minitest
// runtime and prints its report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"digital.vasic.minitest/pkg/config"
	"digital.vasic.minitest/pkg/env"
	"digital.vasic.minitest/pkg/logging"
	"digital.vasic.minitest/pkg/metrics"
	"digital.vasic.minitest/pkg/monitor"
	"digital.vasic.minitest/pkg/report"
	"digital.vasic.minitest/pkg/runner"
	"digital.vasic.minitest/pkg/timer"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailures = 1
	exitConfig   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	envPath    string
	format     string
	linger     time.Duration
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("minitest-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.envPath, "env", "", "path to a .env file")
	fs.StringVar(&opts.format, "format", "", "report format: text, json or yaml")
	fs.DurationVar(&opts.linger, "linger", 0,
		"keep the metrics and monitor endpoints up this long after the run")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	loader := env.NewLoader(config.EnvPrefix)
	if opts.envPath != "" {
		if err := loader.Load(opts.envPath); err != nil {
			return config.Config{}, fmt.Errorf(
				"failed to load env file: %w", err,
			)
		}
	}
	if err := cfg.ApplyEnv(loader); err != nil {
		return config.Config{}, err
	}
	if opts.format != "" {
		cfg.ReportFormat = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitConfig
	}

	logger, err := logging.New(cfg.LogFormat, cfg.Verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitConfig
	}
	defer logger.Close()

	reporter, err := report.ForFormat(cfg.ReportFormat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithTimer(timer.Monotonic()),
	}
	if cfg.Progress {
		runnerOpts = append(runnerOpts, runner.WithProgress(stderr))
	}

	var servers []*http.Server
	if cfg.MetricsAddr != "" {
		m := metrics.NewPrometheusMetrics()
		runnerOpts = append(runnerOpts, runner.WithMetrics(m))
		servers = append(servers, serve(logger, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux(m),
			ReadHeaderTimeout: 5 * time.Second,
		}))
	}
	if cfg.MonitorAddr != "" {
		collector := monitor.NewEventCollector()
		mon := monitor.NewServer(
			cfg.MonitorAddr, collector, monitor.NewDashboard(),
		)
		runnerOpts = append(runnerOpts, runner.WithCollector(collector))
		servers = append(servers, serve(logger, &http.Server{
			Addr:              cfg.MonitorAddr,
			Handler:           mon.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}))
	}

	s := demoSuite()
	failures := runner.New(runnerOpts...).Run(s)

	out := stdout
	if reporter.Format() == report.FormatText {
		out = stderr
	}
	if err := reporter.WriteReport(out, s); err != nil {
		logger.Error("report_failed", logging.ErrorField(err))
	}

	if len(servers) > 0 && opts.linger > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(opts.linger):
		}
	}
	shutdown(servers)

	if failures > 0 {
		return exitFailures
	}
	return exitOK
}

func metricsMux(m *metrics.PrometheusMetrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}

func serve(logger logging.Logger, srv *http.Server) *http.Server {
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server_failed",
				logging.StringField("addr", srv.Addr),
				logging.ErrorField(err),
			)
		}
	}()
	logger.Info("server_started", logging.StringField("addr", srv.Addr))
	return srv
}

func shutdown(servers []*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range servers {
		_ = srv.Shutdown(ctx)
	}
}
