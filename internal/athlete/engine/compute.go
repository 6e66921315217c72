package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// kinds read by the daily calculation
var computeKinds = []catalog.MetricKind{
	catalog.MorningSleepQuality,
	catalog.MorningSleepDuration,
	catalog.MorningGeneralFatigue,
	catalog.MorningPain,
	catalog.MorningMoodWellbeing,
	catalog.PostSessionRPE,
}

// ComputeDailyCalculatedMetrics derives the day's SBM values and the weekly load metrics of
// the enclosing ISO week (keyed on its Monday), upserts them and returns them.
// Stored kinds that are now undefined for the day or the week are deleted, so running it
// again for the same data always leaves the same rows.
func (s *Service) ComputeDailyCalculatedMetrics(ctx context.Context, subjectID int, date time.Time) (_ []measurements.CalculatedMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.compute-daily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := s.day(date)
	span.SetAttributes(
		attribute.Int("subject.id", subjectID),
		attribute.String("date", measurements.DayKey(day)),
	)

	if _, err := s.getSubject(ctx, subjectID); err != nil {
		return nil, err
	}

	monday, sunday := calc.WeekBounds(day)
	ms, err := s.measurements.ListMeasurements(ctx, measurements.Query{
		SubjectID: subjectID,
		Kinds:     computeKinds,
		From:      monday,
		To:        sunday,
	})
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	plan, err := s.plans.GetWeekAllocation(ctx, subjectID, monday)
	var planned *measurements.WeekAllocation
	switch {
	case errors.Is(err, measurements.ErrPlanNotFound):
	case err != nil:
		return nil, fmt.Errorf("get week allocation: %w", err)
	default:
		planned = &plan
	}

	calculated := Calculate(measurements.NewSnapshot(subjectID, ms, nil), day, planned)
	s.countComputation("compute_daily")

	if len(calculated) > 0 {
		if err := s.calculated.UpsertCalculated(ctx, calculated); err != nil {
			return nil, fmt.Errorf("upsert calculated metrics: %w", err)
		}
	}

	// a kind without a value for its key must not keep what an earlier run stored
	daily, weekly := undefinedKinds(calculated)
	if len(daily) > 0 {
		if err := s.calculated.DeleteCalculated(ctx, subjectID, day, daily); err != nil {
			return nil, fmt.Errorf("delete undefined daily metrics: %w", err)
		}
	}
	if len(weekly) > 0 {
		if err := s.calculated.DeleteCalculated(ctx, subjectID, monday, weekly); err != nil {
			return nil, fmt.Errorf("delete undefined weekly metrics: %w", err)
		}
	}
	log.Tracef(
		"subject %d, %s: %d calculated, %d undefined",
		subjectID, measurements.DayKey(day), len(calculated), len(daily)+len(weekly),
	)

	if err := s.cache.Invalidate(ctx, subjectID); err != nil {
		log.Errorf("invalidate cached results of subject %d: %s", subjectID, err)
	}

	return calculated, nil
}

// undefinedKinds splits the calculated kinds missing from calculated into day and week keyed ones.
func undefinedKinds(calculated []measurements.CalculatedMetric) (daily, weekly []catalog.CalculatedKind) {
	defined := make(map[catalog.CalculatedKind]bool, len(calculated))
	for _, c := range calculated {
		defined[c.Kind] = true
	}
	for _, k := range catalog.CalculatedKinds() {
		switch {
		case defined[k]:
		case k.Weekly():
			weekly = append(weekly, k)
		default:
			daily = append(daily, k)
		}
	}
	return daily, weekly
}

// Calculate derives the calculated metrics of day from the snapshot, which must hold the
// measurements of the whole ISO week containing day. Weekly kinds are produced only when the
// week has a session or a plan; ratios only when the planned load is not zero.
func Calculate(snapshot measurements.Snapshot, day time.Time, plan *measurements.WeekAllocation) []measurements.CalculatedMetric {
	day = measurements.Day(day)
	calculated := []measurements.CalculatedMetric{}
	add := func(kind catalog.CalculatedKind, date time.Time, value *float64) {
		if value == nil {
			return
		}
		d, _ := catalog.LookupCalculated(kind)
		calculated = append(calculated, measurements.CalculatedMetric{
			SubjectID: snapshot.SubjectID,
			Date:      date,
			Kind:      kind,
			Value:     *value,
			Unit:      d.Unit,
		})
	}

	sbmInputs := calc.SBMInputs{
		SleepQuality:       snapshot.ValueOn(catalog.MorningSleepQuality, day),
		GeneralFatigue:     snapshot.ValueOn(catalog.MorningGeneralFatigue, day),
		Pain:               snapshot.ValueOn(catalog.MorningPain, day),
		MoodWellbeing:      snapshot.ValueOn(catalog.MorningMoodWellbeing, day),
		SleepDurationHours: snapshot.ValueOn(catalog.MorningSleepDuration, day),
	}
	add(catalog.SBM, day, calc.SBMWeighted(sbmInputs))
	add(catalog.SBMProportional, day, calc.SBMProportional(sbmInputs))

	monday, sunday := calc.WeekBounds(day)
	var sessions []calc.Session
	for _, m := range snapshot.Measurements {
		if m.Kind != catalog.PostSessionRPE || m.Value == nil {
			continue
		}
		d := measurements.Day(m.Date)
		if d.Before(monday) || d.After(sunday) {
			continue
		}
		sessions = append(sessions, calc.Session{Date: d, RPE: *m.Value})
	}

	if len(sessions) == 0 && plan == nil {
		return calculated
	}

	cih := calc.CIH(sessions)
	cihNormalized := calc.CIHNormalized(sessions)
	var cph float64
	if plan != nil {
		cph = calc.CPH(plan.VolumePlanned, plan.IntensityPlanned)
	}

	add(catalog.CIH, monday, &cih)
	add(catalog.CIHNormalized, monday, cihNormalized)
	add(catalog.CPH, monday, &cph)
	add(catalog.RatioCIHCPH, monday, calc.Ratio(cih, cph))
	if cihNormalized != nil {
		add(catalog.RatioCIHNormalizedCPH, monday, calc.Ratio(*cihNormalized, cph))
	}

	return calculated
}
