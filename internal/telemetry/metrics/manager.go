package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the metrics describing a single report run.
type Manager struct {
	// counters
	CounterReaderFailures *prometheus.CounterVec
	CounterReportPanic    prometheus.Counter

	// gauges
	GaugeWorkouts          prometheus.Gauge
	GaugeWorkoutMinutes    prometheus.Gauge
	GaugeHealthEntries     prometheus.Gauge
	GaugeWeeklyGoalMinutes prometheus.Gauge
	GaugeProgressPercent   prometheus.Gauge
	GaugeMinutesRemaining  prometheus.Gauge

	// histograms
	HistReadDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fitprogress", "test_run", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitprogress", "test_run", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterReaderFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reader_failures",
		Help:      "The total number of input reads that degraded to a zero result",
	}, []string{"source", "kind"})
	counterReportPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "report_panic",
		Help:      "The total number of recovered panics while building the report",
	})

	gaugeWorkouts := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts",
		Help:      "Number of workout rows read",
	})
	gaugeWorkoutMinutes := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_minutes",
		Help:      "Sum of workout durations in minutes",
	})
	gaugeHealthEntries := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "health_entries",
		Help:      "Number of health metric entries read",
	})
	gaugeWeeklyGoalMinutes := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "weekly_goal_minutes",
		Help:      "Configured weekly workout goal in minutes",
	})
	gaugeProgressPercent := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_percent",
		Help:      "Progress towards the weekly goal in percent",
	})
	gaugeMinutesRemaining := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "minutes_remaining",
		Help:      "Workout minutes left to reach the weekly goal",
	})

	histReadDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "read_duration_seconds",
		Help:      "Histogram of input file read and parse time in seconds",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"source"})

	return &Manager{
		CounterReaderFailures:  counterReaderFailures,
		CounterReportPanic:     counterReportPanic,
		GaugeWorkouts:          gaugeWorkouts,
		GaugeWorkoutMinutes:    gaugeWorkoutMinutes,
		GaugeHealthEntries:     gaugeHealthEntries,
		GaugeWeeklyGoalMinutes: gaugeWeeklyGoalMinutes,
		GaugeProgressPercent:   gaugeProgressPercent,
		GaugeMinutesRemaining:  gaugeMinutesRemaining,
		HistReadDuration:       histReadDuration,
	}
}
