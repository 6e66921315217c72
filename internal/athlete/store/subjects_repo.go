package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/athletemonitor/internal/athlete/subjects"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type SubjectsRepo struct {
	db *pgxpool.Pool
}

func NewSubjectsRepo(db *pgxpool.Pool) *SubjectsRepo {
	return &SubjectsRepo{
		db: db,
	}
}

func (r *SubjectsRepo) GetSubject(ctx context.Context, id int) (_ subjects.Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject.id", id))

	var s subjects.Subject
	var gender string
	var sport *string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, gender, sport, active FROM subject WHERE id = $1;`,
		id,
	).Scan(&s.ID, &s.Name, &gender, &sport, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subjects.Subject{}, subjects.ErrSubjectNotFound
		}
		return subjects.Subject{}, fmt.Errorf("query subject: %w", err)
	}

	s.Gender = subjects.ParseGender(gender)
	if sport != nil {
		s.Sport = *sport
	}

	return s, nil
}

func (r *SubjectsRepo) ListActiveSubjectIDs(ctx context.Context) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.list-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id FROM subject WHERE active ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query active subjects: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// CreateSubject inserts s and returns it with its new id.
func (r *SubjectsRepo) CreateSubject(ctx context.Context, s subjects.Subject) (_ subjects.Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.Gender == "" {
		s.Gender = subjects.GenderUnknown
	}
	var sport *string
	if s.Sport != "" {
		sport = &s.Sport
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO subject (name, gender, sport, active) VALUES ($1, $2, $3, $4) RETURNING id;`,
		s.Name, string(s.Gender), sport, s.Active,
	).Scan(&s.ID)
	if err != nil {
		return subjects.Subject{}, fmt.Errorf("insert subject: %w", err)
	}

	return s, nil
}
