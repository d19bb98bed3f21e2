package health

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitprogress/internal/datafile"
	"github.com/2beens/fitprogress/internal/telemetry/metrics"
	"github.com/2beens/fitprogress/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MetricsField = "metrics"
	sourceName   = "health"
)

type Counter struct {
	metricsManager *metrics.Manager
}

// NewCounter creates the health entries counter. metricsManager may be nil.
func NewCounter(metricsManager *metrics.Manager) *Counter {
	return &Counter{
		metricsManager: metricsManager,
	}
}

// Count returns the number of entries in the metrics array of the JSON
// document at path. Errors are logged and turn into a zero count.
func (c *Counter) Count(ctx context.Context, path string) (int, datafile.Failure) {
	_, span := tracing.GlobalTracer.Start(ctx, "health.count")
	span.SetAttributes(attribute.String("path", path))

	start := time.Now()
	entries, err := CountFile(path)
	if c.metricsManager != nil {
		c.metricsManager.HistReadDuration.WithLabelValues(sourceName).Observe(time.Since(start).Seconds())
	}
	tracing.EndSpanWithErrCheck(span, err)

	if err != nil {
		failure := datafile.Classify(err)
		switch failure {
		case datafile.FailureNotFound:
			log.Errorf("health metrics file not found at %s", path)
		case datafile.FailureFormat:
			log.Errorf("invalid JSON format in %s", path)
		default:
			log.Errorf("failed to read health metrics file %s: %s", path, err)
		}
		if c.metricsManager != nil {
			c.metricsManager.CounterReaderFailures.WithLabelValues(sourceName, failure.String()).Inc()
		}
		return 0, failure
	}

	log.Infof("total health entries: %d", entries)
	return entries, datafile.FailureNone
}

func CountFile(path string) (int, error) {
	data, err := datafile.ReadAll(path)
	if err != nil {
		return 0, err
	}

	entries, err := CountEntries(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// CountEntries parses data as a single JSON value. A top level object with
// a metrics array yields the array length; anything else counts as 0.
func CountEntries(data []byte) (int, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: %w", datafile.ErrFormat, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return 0, nil
	}
	entries, ok := obj[MetricsField].([]any)
	if !ok {
		return 0, nil
	}
	return len(entries), nil
}
