package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const defaultBackfillWorkers = 4

var ErrInvalidBackfillRange = errors.New("backfill range end before start")

type BackfillParams struct {
	SubjectIDs []int
	From       time.Time
	To         time.Time
	Workers    int
}

type BackfillReport struct {
	Units     int `json:"units"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Upserted  int `json:"upserted"`
	DurationS int `json:"durationS"`
}

// Backfill runs ComputeDailyCalculatedMetrics for every (subject, day) of the range on a bounded
// worker pool. A failing unit does not stop the others, all unit errors are returned combined.
// Units not yet started when ctx is done are skipped.
func (s *Service) Backfill(ctx context.Context, params BackfillParams) (_ BackfillReport, err error) {
	ctx, span := tracing.GlobalBackfillTracer.Start(ctx, "service.engine.backfill")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := s.day(params.From), s.day(params.To)
	if to.Before(from) {
		return BackfillReport{}, fmt.Errorf("%w: %s > %s", ErrInvalidBackfillRange, measurements.DayKey(from), measurements.DayKey(to))
	}
	workers := params.Workers
	if workers <= 0 {
		workers = defaultBackfillWorkers
	}
	span.SetAttributes(
		attribute.Int("backfill.subjects", len(params.SubjectIDs)),
		attribute.Int("backfill.workers", workers),
	)

	start := time.Now()
	var (
		mu       sync.Mutex
		report   BackfillReport
		unitErrs error
	)

	var g errgroup.Group
	g.SetLimit(workers)

units:
	for _, subjectID := range params.SubjectIDs {
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			if ctx.Err() != nil {
				break units
			}

			g.Go(func() error {
				calculated, err := s.ComputeDailyCalculatedMetrics(ctx, subjectID, day)

				mu.Lock()
				defer mu.Unlock()
				report.Units++
				if err != nil {
					report.Failed++
					unitErrs = multierr.Append(unitErrs, fmt.Errorf("subject %d, %s: %w", subjectID, measurements.DayKey(day), err))
					s.metricsManager.CounterBackfillUnits.WithLabelValues("failed").Inc()
					return nil
				}
				report.Upserted += len(calculated)
				s.metricsManager.CounterBackfillUnits.WithLabelValues("ok").Inc()
				return nil
			})
		}
	}

	// units never fail the group, errors are collected in unitErrs
	_ = g.Wait()

	days := measurements.DaysBetween(from, to) + 1
	report.Skipped = len(params.SubjectIDs)*days - report.Units
	duration := time.Since(start)
	report.DurationS = int(duration.Seconds())
	s.metricsManager.HistBackfillDuration.Observe(duration.Seconds())

	log.Debugf(
		"backfill done: %d units, %d failed, %d skipped, %d metrics upserted in %s",
		report.Units, report.Failed, report.Skipped, report.Upserted, duration,
	)

	if report.Skipped > 0 {
		unitErrs = multierr.Append(unitErrs, fmt.Errorf("backfill interrupted: %w", ctx.Err()))
	}
	return report, unitErrs
}
