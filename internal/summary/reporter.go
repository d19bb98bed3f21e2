package summary

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/2beens/fitprogress/internal/config"
	"github.com/2beens/fitprogress/internal/datafile"
	"github.com/2beens/fitprogress/internal/telemetry/metrics"
	"github.com/2beens/fitprogress/internal/telemetry/tracing"
	"github.com/2beens/fitprogress/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// ErrorHint is shown to the user next to a failed report.
const ErrorHint = "check that the workouts and health metrics files are present and well-formed"

var ErrReportPanic = errors.New("panic while building report")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=summary_test

type workoutsSource interface {
	Aggregate(ctx context.Context, path string) (workouts.AggregateResult, datafile.Failure)
}

type healthSource interface {
	Count(ctx context.Context, path string) (int, datafile.Failure)
}

type ReporterParams struct {
	Workouts          workoutsSource
	Health            healthSource
	WorkoutsPath      string
	HealthMetricsPath string
	// MetricsManager is optional.
	MetricsManager *metrics.Manager
}

type Reporter struct {
	goal              config.Goal
	workouts          workoutsSource
	health            healthSource
	workoutsPath      string
	healthMetricsPath string
	metricsManager    *metrics.Manager
}

func NewReporter(goal config.Goal, params ReporterParams) *Reporter {
	return &Reporter{
		goal:              goal,
		workouts:          params.Workouts,
		health:            params.Health,
		workoutsPath:      params.WorkoutsPath,
		healthMetricsPath: params.HealthMetricsPath,
		metricsManager:    params.MetricsManager,
	}
}

// Run reads both inputs and computes the summary.
// Reader failures only degrade the summary; an error is returned when the
// report itself cannot be built (bad goal, recovered panic).
func (r *Reporter) Run(ctx context.Context) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.run")
	defer func() {
		if rec := recover(); rec != nil {
			err = r.panicErr("summary", rec)
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if r.goal.WeeklyGoalMinutes <= 0 {
		return nil, fmt.Errorf("%w: weekly goal must be positive, got %d", config.ErrInvalidGoal, r.goal.WeeklyGoalMinutes)
	}

	var (
		workoutsResult  workouts.AggregateResult
		workoutsFailure datafile.Failure
		healthEntries   int
		healthFailure   datafile.Failure
	)

	g, gCtx := errgroup.WithContext(ctx)
	r.goSafe(g, "workouts", func() {
		workoutsResult, workoutsFailure = r.workouts.Aggregate(gCtx, r.workoutsPath)
	})
	r.goSafe(g, "health", func() {
		healthEntries, healthFailure = r.health.Count(gCtx, r.healthMetricsPath)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := Compute(r.goal, healthEntries, workoutsResult)
	s.WorkoutsStatus = workoutsFailure
	s.HealthStatus = healthFailure

	span.SetAttributes(
		attribute.Int("workouts.total", s.TotalWorkouts),
		attribute.Int("workouts.minutes", s.TotalMinutes),
		attribute.Int("health.entries", s.HealthEntries),
		attribute.Int("progress.percent", s.ProgressPercent),
	)
	r.observe(s)

	log.Debugf("summary built for [%s]: %d%% of %d minutes", s.UserName, s.ProgressPercent, s.WeeklyGoalMinutes)

	return &s, nil
}

func (r *Reporter) goSafe(g *errgroup.Group, name string, fn func()) {
	g.Go(func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = r.panicErr(name, rec)
			}
		}()
		fn()
		return nil
	})
}

func (r *Reporter) panicErr(where string, rec any) error {
	log.Errorf("%s: %s: %v\n%s", ErrReportPanic, where, rec, debug.Stack())
	if r.metricsManager != nil {
		r.metricsManager.CounterReportPanic.Inc()
	}
	return fmt.Errorf("%w: %s: %v", ErrReportPanic, where, rec)
}

func (r *Reporter) observe(s Summary) {
	if r.metricsManager == nil {
		return
	}
	r.metricsManager.GaugeWorkouts.Set(float64(s.TotalWorkouts))
	r.metricsManager.GaugeWorkoutMinutes.Set(float64(s.TotalMinutes))
	r.metricsManager.GaugeHealthEntries.Set(float64(s.HealthEntries))
	r.metricsManager.GaugeWeeklyGoalMinutes.Set(float64(s.WeeklyGoalMinutes))
	r.metricsManager.GaugeProgressPercent.Set(float64(s.ProgressPercent))
	r.metricsManager.GaugeMinutesRemaining.Set(float64(s.MinutesRemaining))
}
