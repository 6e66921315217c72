package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/alerts"
	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/cycle"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/readiness"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
	"github.com/2beens/athletemonitor/internal/athlete/trends"
	"github.com/2beens/athletemonitor/internal/telemetry/metrics"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCycleNotApplicable = errors.New("cycle tracking not applicable to subject")

const (
	// covers the 28 day chronic load window and the weekly ratios of the previous weeks
	snapshotLookbackDays = 35

	resultReadiness = "readiness"
	resultCycle     = "cycle"
)

type Params struct {
	Measurements MeasurementReader
	Plans        PlanReader
	Subjects     SubjectReader
	Calculated   CalculatedWriter
	Cache        ResultCache // optional

	// day boundaries of the evaluations, UTC when nil
	Location *time.Location

	Readiness readiness.Config
	Cycle     cycle.Config
	Alerts    alerts.Config

	MetricsManager *metrics.Manager
}

// Service loads a subject's data through the read ports and runs the engines over it.
// Every entry point takes the evaluation date explicitly, nothing reads the clock.
type Service struct {
	measurements MeasurementReader
	plans        PlanReader
	subjects     SubjectReader
	calculated   CalculatedWriter
	cache        ResultCache

	location       *time.Location
	readiness      *readiness.Engine
	cycleCfg       cycle.Config
	alerts         *alerts.Evaluator
	metricsManager *metrics.Manager
}

func NewService(params Params) *Service {
	cache := params.Cache
	if cache == nil {
		cache = noopCache{}
	}
	location := params.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		measurements:   params.Measurements,
		plans:          params.Plans,
		subjects:       params.Subjects,
		calculated:     params.Calculated,
		cache:          cache,
		location:       location,
		readiness:      readiness.NewEngine(params.Readiness),
		cycleCfg:       params.Cycle,
		alerts:         alerts.NewEvaluator(params.Alerts),
		metricsManager: params.MetricsManager,
	}
}

// day maps an instant to the calendar day it falls on for the athletes.
func (s *Service) day(t time.Time) time.Time {
	return measurements.Day(t.In(s.location))
}

func (s *Service) countComputation(operation string) {
	s.metricsManager.CounterComputations.WithLabelValues(operation).Inc()
}

// loadSnapshot fetches what any evaluation of asOf may read: the trailing lookback window of
// all kinds, the whole J1 history for cycle tracked subjects, and the stored calculated metrics.
func (s *Service) loadSnapshot(ctx context.Context, subject subjects.Subject, asOf time.Time) (measurements.Snapshot, error) {
	day := s.day(asOf)
	from := day.AddDate(0, 0, -snapshotLookbackDays)

	ms, err := s.measurements.ListMeasurements(ctx, measurements.Query{
		SubjectID: subject.ID,
		From:      from,
		To:        day,
	})
	if err != nil {
		return measurements.Snapshot{}, fmt.Errorf("list measurements: %w", err)
	}

	if cycle.Applicable(subject) {
		j1, err := s.measurements.ListMeasurements(ctx, measurements.Query{
			SubjectID: subject.ID,
			Kinds:     []catalog.MetricKind{catalog.MonthlyMenstrualJ1},
			To:        day,
		})
		if err != nil {
			return measurements.Snapshot{}, fmt.Errorf("list period history: %w", err)
		}

		merged := make([]measurements.Measurement, 0, len(ms)+len(j1))
		for _, m := range ms {
			if m.Kind != catalog.MonthlyMenstrualJ1 {
				merged = append(merged, m)
			}
		}
		ms = append(merged, j1...)
	}

	monday, _ := calc.WeekBounds(from)
	calculated, err := s.measurements.ListCalculated(ctx, subject.ID, monday, day)
	if err != nil {
		return measurements.Snapshot{}, fmt.Errorf("list calculated metrics: %w", err)
	}

	return measurements.NewSnapshot(subject.ID, ms, calculated), nil
}

// resultName scopes a cached result to the subject's measurements revision on day, so
// answers entered after the result was cached miss the stale entry.
func (s *Service) resultName(ctx context.Context, result string, subjectID int, day time.Time) (string, error) {
	rev, err := s.measurements.Revision(ctx, subjectID, day)
	if err != nil {
		return "", fmt.Errorf("get measurements revision: %w", err)
	}
	return result + "@" + rev.Key(), nil
}

func (s *Service) getSubject(ctx context.Context, subjectID int) (subjects.Subject, error) {
	subject, err := s.subjects.GetSubject(ctx, subjectID)
	if err != nil {
		return subjects.Subject{}, fmt.Errorf("get subject %d: %w", subjectID, err)
	}
	return subject, nil
}

func (s *Service) GetReadiness(ctx context.Context, subjectID int, asOf time.Time) (_ readiness.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.readiness")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject.id", subjectID))

	day := s.day(asOf)
	name, err := s.resultName(ctx, resultReadiness, subjectID, day)
	if err != nil {
		return readiness.Result{}, err
	}

	var cached readiness.Result
	if found, err := s.cache.Get(ctx, subjectID, name, day, &cached); err != nil {
		log.Errorf("get cached readiness of subject %d: %s", subjectID, err)
	} else if found {
		span.SetAttributes(attribute.Bool("readiness.from-cache", true))
		return cached, nil
	}

	subject, err := s.getSubject(ctx, subjectID)
	if err != nil {
		return readiness.Result{}, err
	}

	snapshot, err := s.loadSnapshot(ctx, subject, day)
	if err != nil {
		return readiness.Result{}, err
	}

	result := s.readiness.EvaluateSnapshot(snapshot, day)
	s.countComputation("readiness")

	if err := s.cache.Set(ctx, subjectID, name, day, result); err != nil {
		log.Errorf("cache readiness of subject %d: %s", subjectID, err)
	}

	return result, nil
}

func (s *Service) GetReadinessStatus(ctx context.Context, subjectID int, asOf time.Time) (readiness.Status, error) {
	result, err := s.GetReadiness(ctx, subjectID, asOf)
	if err != nil {
		return readiness.Status{}, err
	}
	return s.readiness.Status(result), nil
}

// CyclePhase is the inferred phase with the advice attached to it.
type CyclePhase struct {
	cycle.Result
	Recommendation cycle.Recommendation `json:"recommendation"`
}

// GetCyclePhase returns ErrCycleNotApplicable for subjects without cycle tracking.
func (s *Service) GetCyclePhase(ctx context.Context, subjectID int, asOf time.Time) (_ CyclePhase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.cycle-phase")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject.id", subjectID))

	subject, err := s.getSubject(ctx, subjectID)
	if err != nil {
		return CyclePhase{}, err
	}
	if !cycle.Applicable(subject) {
		return CyclePhase{}, ErrCycleNotApplicable
	}

	day := s.day(asOf)
	name, err := s.resultName(ctx, resultCycle, subjectID, day)
	if err != nil {
		return CyclePhase{}, err
	}

	var cached CyclePhase
	if found, err := s.cache.Get(ctx, subjectID, name, day, &cached); err != nil {
		log.Errorf("get cached cycle phase of subject %d: %s", subjectID, err)
	} else if found {
		return cached, nil
	}

	j1, err := s.measurements.ListMeasurements(ctx, measurements.Query{
		SubjectID: subjectID,
		Kinds:     []catalog.MetricKind{catalog.MonthlyMenstrualJ1},
		To:        day,
	})
	if err != nil {
		return CyclePhase{}, fmt.Errorf("list period history: %w", err)
	}

	snapshot := measurements.NewSnapshot(subjectID, j1, nil)
	result := cycle.Infer(snapshot.EventDates(catalog.MonthlyMenstrualJ1), day, s.cycleCfg)
	s.countComputation("cycle")

	phase := CyclePhase{
		Result:         result,
		Recommendation: cycle.RecommendationFor(result.Phase),
	}
	if err := s.cache.Set(ctx, subjectID, name, day, phase); err != nil {
		log.Errorf("cache cycle phase of subject %d: %s", subjectID, err)
	}

	return phase, nil
}

// GetAlerts evaluates the alert rules for the subject on asOf. The result is never nil.
func (s *Service) GetAlerts(ctx context.Context, subjectID int, asOf time.Time, opts alerts.Options) (_ []alerts.Alert, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.alerts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject.id", subjectID))

	subject, err := s.getSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	day := s.day(asOf)
	snapshot, err := s.loadSnapshot(ctx, subject, day)
	if err != nil {
		return nil, err
	}

	readinessResult := s.readiness.EvaluateSnapshot(snapshot, day)
	in := alerts.Input{
		Subject:   subject,
		AsOf:      day,
		Snapshot:  snapshot,
		Readiness: &readinessResult,
	}
	if cycle.Applicable(subject) {
		cycleResult := cycle.Infer(snapshot.EventDates(catalog.MonthlyMenstrualJ1), day, s.cycleCfg)
		in.Cycle = &cycleResult
	}

	raised := s.alerts.Evaluate(in, opts)
	s.countComputation("alerts")
	for _, a := range raised {
		s.metricsManager.CounterAlerts.WithLabelValues(string(a.Type), string(a.Kind)).Inc()
	}
	log.Tracef("subject %d, %s: %d alerts raised", subjectID, measurements.DayKey(day), len(raised))

	return raised, nil
}

type TrendReport struct {
	trends.Result
	Kind           string                `json:"kind"`
	Period         trends.Period         `json:"period"`
	From           time.Time             `json:"from"`
	Interpretation trends.Interpretation `json:"interpretation"`
	Points         []measurements.Point  `json:"points"`
}

// GetTrend classifies the evolution of a raw or calculated kind over the period ending on asOf.
func (s *Service) GetTrend(ctx context.Context, subjectID int, kind string, period trends.Period, asOf time.Time) (_ TrendReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("subject.id", subjectID),
		attribute.String("trend.kind", kind),
		attribute.String("trend.period", string(period)),
	)

	descriptor, err := catalog.Describe(kind)
	if err != nil {
		return TrendReport{}, err
	}
	day := s.day(asOf)
	from, err := trends.ResolvePeriod(period, day)
	if err != nil {
		return TrendReport{}, err
	}
	if !descriptor.IsNumeric() {
		return TrendReport{}, fmt.Errorf("%w: %s has no numeric values", catalog.ErrUnknownKind, kind)
	}

	if _, err := s.getSubject(ctx, subjectID); err != nil {
		return TrendReport{}, err
	}

	points, err := s.series(ctx, subjectID, kind, from, day)
	if err != nil {
		return TrendReport{}, err
	}

	result := trends.Classify(points)
	s.countComputation("trend")

	return TrendReport{
		Result:         result,
		Kind:           kind,
		Period:         period,
		From:           from,
		Interpretation: trends.ClassifyChange(result.Change, descriptor.OptimalTrend),
		Points:         points,
	}, nil
}

// series returns the daily points of a raw or calculated kind in [from, to].
func (s *Service) series(ctx context.Context, subjectID int, kind string, from, to time.Time) ([]measurements.Point, error) {
	if metricKind, err := catalog.ParseMetricKind(kind); err == nil {
		ms, err := s.measurements.ListMeasurements(ctx, measurements.Query{
			SubjectID: subjectID,
			Kinds:     []catalog.MetricKind{metricKind},
			From:      from,
			To:        to,
		})
		if err != nil {
			return nil, fmt.Errorf("list measurements: %w", err)
		}
		return measurements.NewSnapshot(subjectID, ms, nil).Series(metricKind, from, to), nil
	}

	calculatedKind, err := catalog.ParseCalculatedKind(kind)
	if err != nil {
		return nil, err
	}
	calculated, err := s.measurements.ListCalculated(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list calculated metrics: %w", err)
	}

	points := []measurements.Point{}
	for _, c := range calculated {
		if c.Kind == calculatedKind {
			points = append(points, measurements.Point{Date: measurements.Day(c.Date), Value: c.Value})
		}
	}
	sortPoints(points)
	return points, nil
}

// PrepareChartSeries aligns the requested kinds of the subject on a common date axis.
// Nil bounds are open.
func (s *Service) PrepareChartSeries(ctx context.Context, subjectID int, kinds []string, from, to *time.Time) (_ trends.Chart, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.chart-series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject.id", subjectID))

	var rawKinds []catalog.MetricKind
	wantCalculated := false
	for _, k := range kinds {
		if _, err := catalog.Describe(k); err != nil {
			return trends.Chart{}, err
		}
		if metricKind, err := catalog.ParseMetricKind(k); err == nil {
			rawKinds = append(rawKinds, metricKind)
		} else {
			wantCalculated = true
		}
	}

	if _, err := s.getSubject(ctx, subjectID); err != nil {
		return trends.Chart{}, err
	}

	var fromDay, toDay time.Time
	if from != nil {
		fromDay = s.day(*from)
		from = &fromDay
	}
	if to != nil {
		toDay = s.day(*to)
		to = &toDay
	}

	var rows []trends.Row
	if len(rawKinds) > 0 {
		ms, err := s.measurements.ListMeasurements(ctx, measurements.Query{
			SubjectID: subjectID,
			Kinds:     rawKinds,
			From:      fromDay,
			To:        toDay,
		})
		if err != nil {
			return trends.Chart{}, fmt.Errorf("list measurements: %w", err)
		}
		for _, m := range ms {
			if m.Value == nil {
				continue
			}
			rows = append(rows, trends.Row{Date: m.Date, Kind: string(m.Kind), Value: m.Value})
		}
	}

	if wantCalculated {
		calculated, err := s.measurements.ListCalculated(ctx, subjectID, fromDay, toDay)
		if err != nil {
			return trends.Chart{}, fmt.Errorf("list calculated metrics: %w", err)
		}
		for _, c := range calculated {
			value := c.Value
			rows = append(rows, trends.Row{Date: c.Date, Kind: string(c.Kind), Value: &value})
		}
	}

	s.countComputation("chart")
	return trends.PrepareChartSeries(rows, kinds, from, to)
}

func sortPoints(points []measurements.Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}
