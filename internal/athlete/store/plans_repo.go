package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"
	"github.com/2beens/athletemonitor/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type PlansRepo struct {
	db       *pgxpool.Pool
	location *time.Location
}

func NewPlansRepo(db *pgxpool.Pool, loc *time.Location) *PlansRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &PlansRepo{
		db:       db,
		location: loc,
	}
}

func (r *PlansRepo) GetWeekAllocation(ctx context.Context, subjectID int, weekStart time.Time) (_ measurements.WeekAllocation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject.id", subjectID))

	plan := measurements.WeekAllocation{SubjectID: subjectID}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				week_start, volume_planned, intensity_planned
			FROM week_allocation
			WHERE subject_id = $1 AND week_start = $2::date;`,
		subjectID, measurements.DayKey(weekStart),
	).Scan(&plan.WeekStart, &plan.VolumePlanned, &plan.IntensityPlanned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return measurements.WeekAllocation{}, measurements.ErrPlanNotFound
		}
		return measurements.WeekAllocation{}, fmt.Errorf("query week allocation: %w", err)
	}

	plan.WeekStart = inLocation(plan.WeekStart, r.location)
	return plan, nil
}

// SaveWeekAllocation creates or replaces the allocation of plan's week.
func (r *PlansRepo) SaveWeekAllocation(ctx context.Context, plan measurements.WeekAllocation) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO week_allocation (subject_id, week_start, volume_planned, intensity_planned)
			VALUES ($1, $2::date, $3, $4)
			ON CONFLICT (subject_id, week_start)
			DO UPDATE SET volume_planned = EXCLUDED.volume_planned, intensity_planned = EXCLUDED.intensity_planned;`,
		plan.SubjectID, measurements.DayKey(plan.WeekStart), plan.VolumePlanned, plan.IntensityPlanned,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return subjects.ErrSubjectNotFound
		}
		return fmt.Errorf("save week allocation: %w", err)
	}

	return nil
}
