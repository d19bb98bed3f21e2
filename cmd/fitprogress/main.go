// Package main prints a weekly workout progress report, built from a workouts
// CSV file and a health metrics JSON file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/2beens/fitprogress/internal/config"
	"github.com/2beens/fitprogress/internal/health"
	"github.com/2beens/fitprogress/internal/logging"
	"github.com/2beens/fitprogress/internal/summary"
	"github.com/2beens/fitprogress/internal/telemetry/metrics"
	"github.com/2beens/fitprogress/internal/telemetry/tracing"
	"github.com/2beens/fitprogress/internal/workouts"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK = 0
	// configuration or report failure, nothing printed
	exitFailure = 1
	// report printed, but at least one input was read as empty
	exitDegraded = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("fitprogress", flag.ContinueOnError)
	flags.SetOutput(stderr)
	env := flags.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flags.String("config", "./config.toml", "path for the TOML config file")
	dotEnvPath := flags.String("dotenv", "./.env", "path for an optional .env file (USER_NAME, WEEKLY_GOAL)")
	workoutsPath := flags.String("workouts", "", "workouts CSV file path, overrides the config value")
	healthPath := flags.String("health", "", "health metrics JSON file path, overrides the config value")
	formatFlag := flags.String("format", "text", "report format [text | json]")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	format, err := summary.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return exitFailure
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %s\n", err)
		return exitFailure
	}
	if *workoutsPath != "" {
		cfg.WorkoutsPath = *workoutsPath
	}
	if *healthPath != "" {
		cfg.HealthMetricsPath = *healthPath
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStderr:      cfg.LogToStderr,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitprogress",
		Stderr:           stderr,
	})
	if cfg.SentryEnabled {
		defer logging.Flush()
	}

	if cfg.Source == "" {
		log.Debugf("config file [%s] not found, using defaults", *configPath)
	}
	log.Debugf("running in [%s] environment", cfg.Environment)
	log.Debugf("workouts file: [%s], health metrics file: [%s]", cfg.WorkoutsPath, cfg.HealthMetricsPath)

	shutdownTracing, err := tracing.Setup(cfg.TracingEnabled, stderr)
	if err != nil {
		log.Errorf("tracing setup: %s", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				log.Errorf("tracing shutdown: %s", err)
			}
		}()
	}

	if err := config.LoadDotEnv(*dotEnvPath); err != nil {
		log.Errorf("failed to build progress report: %s (%s)", err, summary.ErrorHint)
		return exitFailure
	}
	goal, err := config.LoadGoal(ctx)
	if err != nil {
		log.Errorf("failed to build progress report: %s (%s)", err, summary.ErrorHint)
		return exitFailure
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitprogress", "report", promRegistry)
	defer writeMetrics(cfg.MetricsTextfile, promRegistry)

	reporter := summary.NewReporter(goal, summary.ReporterParams{
		Workouts:          workouts.NewAggregator(metricsManager),
		Health:            health.NewCounter(metricsManager),
		WorkoutsPath:      cfg.WorkoutsPath,
		HealthMetricsPath: cfg.HealthMetricsPath,
		MetricsManager:    metricsManager,
	})

	s, err := reporter.Run(ctx)
	if err != nil {
		log.Errorf("failed to build progress report: %s (%s)", err, summary.ErrorHint)
		return exitFailure
	}

	if err := s.Render(stdout, format); err != nil {
		log.Errorf("render report: %s", err)
		return exitFailure
	}

	if s.Degraded() {
		log.Warnf("report built from incomplete data (workouts: %s, health metrics: %s)", s.WorkoutsStatus, s.HealthStatus)
		return exitDegraded
	}
	return exitOK
}

func writeMetrics(path string, g prometheus.Gatherer) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path, g); err != nil {
		log.Errorf("%s", err)
		return
	}
	log.Debugf("metrics written to [%s]", path)
}
