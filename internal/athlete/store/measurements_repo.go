package store

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"
	"github.com/2beens/athletemonitor/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MeasurementsRepo struct {
	db       *pgxpool.Pool
	location *time.Location
}

// NewMeasurementsRepo returns dates anchored in loc, the timezone the engine evaluates days in.
func NewMeasurementsRepo(db *pgxpool.Pool, loc *time.Location) *MeasurementsRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &MeasurementsRepo{
		db:       db,
		location: loc,
	}
}

func (r *MeasurementsRepo) ListMeasurements(ctx context.Context, query measurements.Query) (_ []measurements.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var kinds []string
	for _, k := range query.Kinds {
		kinds = append(kinds, string(k))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, subject_id, date, kind, value_numeric, value_text, unit, created_at
			FROM measurement
			WHERE subject_id = $1
				AND ($2::date IS NULL OR date >= $2::date)
				AND ($3::date IS NULL OR date <= $3::date)
				AND ($4::varchar[] IS NULL OR kind = ANY($4::varchar[]))
			ORDER BY date, created_at, id;`,
		query.SubjectID, dateArg(query.From), dateArg(query.To), kinds,
	)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	var ms []measurements.Measurement
	for rows.Next() {
		var m measurements.Measurement
		var kind string
		var text, unit *string
		if err := rows.Scan(&m.ID, &m.SubjectID, &m.Date, &kind, &m.Value, &text, &unit, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		m.Kind = catalog.MetricKind(kind)
		m.Date = inLocation(m.Date, r.location)
		if text != nil {
			m.Note = *text
		}
		if unit != nil {
			m.Unit = *unit
		}
		ms = append(ms, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ms, nil
}

func (r *MeasurementsRepo) ListCalculated(ctx context.Context, subjectID int, from, to time.Time) (_ []measurements.CalculatedMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calculated.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				subject_id, date, kind, value, unit
			FROM calculated_metric
			WHERE subject_id = $1
				AND ($2::date IS NULL OR date >= $2::date)
				AND ($3::date IS NULL OR date <= $3::date)
			ORDER BY date, kind;`,
		subjectID, dateArg(from), dateArg(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query calculated metrics: %w", err)
	}
	defer rows.Close()

	var calculated []measurements.CalculatedMetric
	for rows.Next() {
		var c measurements.CalculatedMetric
		var kind string
		var unit *string
		if err := rows.Scan(&c.SubjectID, &c.Date, &kind, &c.Value, &unit); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		c.Kind = catalog.CalculatedKind(kind)
		c.Date = inLocation(c.Date, r.location)
		if unit != nil {
			c.Unit = *unit
		}
		calculated = append(calculated, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return calculated, nil
}

func (r *MeasurementsRepo) Revision(ctx context.Context, subjectID int, to time.Time) (_ measurements.Revision, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.revision")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rev measurements.Revision
	var lastCreatedAt *time.Time
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT count(*), max(created_at)
			FROM measurement
			WHERE subject_id = $1
				AND ($2::date IS NULL OR date <= $2::date);`,
		subjectID, dateArg(to),
	).Scan(&rev.Count, &lastCreatedAt); err != nil {
		return measurements.Revision{}, fmt.Errorf("query measurements revision: %w", err)
	}
	if lastCreatedAt != nil {
		rev.LastCreatedAt = *lastCreatedAt
	}

	return rev, nil
}

// UpsertCalculated writes all metrics in one batch, overwriting existing (subject, date, kind) rows.
func (r *MeasurementsRepo) UpsertCalculated(ctx context.Context, calculated []measurements.CalculatedMetric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calculated.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(calculated) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, c := range calculated {
		var unit *string
		if c.Unit != "" {
			unit = &c.Unit
		}
		batch.Queue(
			`
				INSERT INTO calculated_metric (subject_id, date, kind, value, unit, updated_at)
				VALUES ($1, $2::date, $3, $4, $5, now())
				ON CONFLICT (subject_id, date, kind)
				DO UPDATE SET value = EXCLUDED.value, unit = EXCLUDED.unit, updated_at = now();`,
			c.SubjectID, measurements.DayKey(c.Date), string(c.Kind), c.Value, unit,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for range calculated {
		if _, err := br.Exec(); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return fmt.Errorf("upsert calculated metric: %w", subjects.ErrSubjectNotFound)
			}
			return fmt.Errorf("upsert calculated metric: %w", err)
		}
	}

	return nil
}

// DeleteCalculated removes the stored kinds of the subject on date. Missing rows are not an error.
func (r *MeasurementsRepo) DeleteCalculated(ctx context.Context, subjectID int, date time.Time, kinds []catalog.CalculatedKind) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calculated.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(kinds) == 0 {
		return nil
	}

	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}

	if _, err := r.db.Exec(
		ctx,
		`
			DELETE FROM calculated_metric
			WHERE subject_id = $1 AND date = $2::date AND kind = ANY($3::varchar[]);`,
		subjectID, measurements.DayKey(date), names,
	); err != nil {
		return fmt.Errorf("delete calculated metrics: %w", err)
	}

	return nil
}

// AddMeasurement inserts m and sets its ID and CreatedAt.
func (r *MeasurementsRepo) AddMeasurement(ctx context.Context, m *measurements.Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var text, unit *string
	if m.Note != "" {
		text = &m.Note
	}
	if m.Unit != "" {
		unit = &m.Unit
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO measurement (subject_id, date, kind, value_numeric, value_text, unit)
			VALUES ($1, $2::date, $3, $4, $5, $6)
			RETURNING id, created_at;`,
		m.SubjectID, measurements.DayKey(m.Date), string(m.Kind), m.Value, text, unit,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return subjects.ErrSubjectNotFound
		}
		return fmt.Errorf("insert measurement: %w", err)
	}

	return nil
}
