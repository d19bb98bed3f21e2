package workouts

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitprogress/internal/datafile"
	"github.com/2beens/fitprogress/internal/telemetry/metrics"
	"github.com/2beens/fitprogress/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DurationColumn = "duration"
	sourceName     = "workouts"
)

// AggregateResult holds the totals of one workouts file.
// Both fields are never negative.
type AggregateResult struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalMinutes  int `json:"totalMinutes"`
}

type Aggregator struct {
	metricsManager *metrics.Manager
}

// NewAggregator creates the workouts aggregator. metricsManager may be nil.
func NewAggregator(metricsManager *metrics.Manager) *Aggregator {
	return &Aggregator{
		metricsManager: metricsManager,
	}
}

// Aggregate reads the CSV file at path and sums its workouts.
// It never fails: on any error a diagnostic is logged and the zero result
// is returned, together with the kind of failure that happened.
func (a *Aggregator) Aggregate(ctx context.Context, path string) (AggregateResult, datafile.Failure) {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.aggregate")
	span.SetAttributes(attribute.String("path", path))

	start := time.Now()
	result, err := ReadFile(path)
	if a.metricsManager != nil {
		a.metricsManager.HistReadDuration.WithLabelValues(sourceName).Observe(time.Since(start).Seconds())
	}
	tracing.EndSpanWithErrCheck(span, err)

	if err != nil {
		failure := datafile.Classify(err)
		switch failure {
		case datafile.FailureNotFound:
			log.Errorf("workout file not found at %s", path)
		case datafile.FailurePermission:
			log.Errorf("permission denied reading workout file at %s", path)
		default:
			log.Errorf("failed to read workout file %s: %s", path, err)
		}
		if a.metricsManager != nil {
			a.metricsManager.CounterReaderFailures.WithLabelValues(sourceName, failure.String()).Inc()
		}
		return AggregateResult{}, failure
	}

	log.Infof("total workouts: %d", result.TotalWorkouts)
	log.Infof("total minutes: %d", result.TotalMinutes)

	return result, datafile.FailureNone
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (AggregateResult, error) {
	f, r, err := datafile.Open(path)
	if err != nil {
		return AggregateResult{}, err
	}
	defer f.Close()

	result, err := Parse(r)
	if err != nil {
		return AggregateResult{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return result, nil
}

// Parse reads CSV with a header row from r.
// Every data row is counted; the duration column contributes its leading
// integer when that is positive, otherwise the row adds 0 minutes.
// The minutes total saturates at math.MaxInt.
// Rows that fail to parse are skipped and parsing goes on.
func Parse(r io.Reader) (AggregateResult, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return AggregateResult{}, nil
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return AggregateResult{}, fmt.Errorf("%w: header: %w", datafile.ErrFormat, err)
		}
		return AggregateResult{}, fmt.Errorf("read header: %w", err)
	}

	durationIdx := -1
	for i, column := range header {
		if strings.TrimSpace(column) == DurationColumn {
			durationIdx = i
			break
		}
	}
	if durationIdx == -1 {
		log.Debugf("no %q column in header %v", DurationColumn, header)
	}

	var result AggregateResult
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Debugf("skipping malformed workout row: %s", err)
				continue
			}
			return AggregateResult{}, fmt.Errorf("read row: %w", err)
		}

		result.TotalWorkouts++
		if durationIdx >= 0 && durationIdx < len(record) {
			minutes := parseMinutes(record[durationIdx])
			if minutes > math.MaxInt-result.TotalMinutes {
				log.Debugf("total minutes overflow at row %d, capping", result.TotalWorkouts)
				result.TotalMinutes = math.MaxInt
			} else {
				result.TotalMinutes += minutes
			}
		}
	}

	return result, nil
}

// parseMinutes reads the optionally signed integer prefix of raw,
// so "45min" is 45 and "12.5" is 12. No digits or a negative value gives 0.
func parseMinutes(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	minutes, err := strconv.ParseInt(s[:end], 10, 0)
	if errors.Is(err, strconv.ErrRange) && minutes > 0 {
		return math.MaxInt
	}
	if err != nil || minutes < 0 {
		return 0
	}
	return int(minutes)
}
