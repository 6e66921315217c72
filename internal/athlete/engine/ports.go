package engine

import (
	"context"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
)

//go:generate mockgen -source=$GOFILE -destination=ports_mocks_test.go -package=engine_test

type MeasurementReader interface {
	ListMeasurements(ctx context.Context, query measurements.Query) ([]measurements.Measurement, error)
	ListCalculated(ctx context.Context, subjectID int, from, to time.Time) ([]measurements.CalculatedMetric, error)
	// Revision covers the measurements dated up to and including to.
	Revision(ctx context.Context, subjectID int, to time.Time) (measurements.Revision, error)
}

// PlanReader returns measurements.ErrPlanNotFound when the week has no allocation.
type PlanReader interface {
	GetWeekAllocation(ctx context.Context, subjectID int, weekStart time.Time) (measurements.WeekAllocation, error)
}

type SubjectReader interface {
	GetSubject(ctx context.Context, id int) (subjects.Subject, error)
}

type CalculatedWriter interface {
	UpsertCalculated(ctx context.Context, metrics []measurements.CalculatedMetric) error
	// DeleteCalculated removes the given kinds stored for the subject on date.
	DeleteCalculated(ctx context.Context, subjectID int, date time.Time, kinds []catalog.CalculatedKind) error
}

// ResultCache stores evaluated results per subject and day. The service scopes result names
// to the measurements revision they were evaluated on.
// Failures are logged by the service and never fail a request.
type ResultCache interface {
	Get(ctx context.Context, subjectID int, name string, day time.Time, dst any) (bool, error)
	Set(ctx context.Context, subjectID int, name string, day time.Time, v any) error
	Invalidate(ctx context.Context, subjectID int) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, int, string, time.Time, any) (bool, error) {
	return false, nil
}

func (noopCache) Set(context.Context, int, string, time.Time, any) error {
	return nil
}

func (noopCache) Invalidate(context.Context, int) error {
	return nil
}
