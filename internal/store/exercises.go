package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `id, name, description, equipment_required, difficulty_level`

func scanExercise(row scanner) (models.Exercise, error) {
	var e models.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.EquipmentRequired, &e.DifficultyLevel)
	return e, err
}

func (r *Repo) ListExercises(ctx context.Context) (_ []models.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+exerciseColumns+` FROM exercise ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanExercise)
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *models.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := scanExercise(r.db.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "exercise", id)
	}
	return &e, nil
}

func (r *Repo) CountExercises(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) AddExercise(ctx context.Context, e models.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	span.SetAttributes(attribute.Int("id", e.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise (`+exerciseColumns+`)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.Name, e.Description, e.EquipmentRequired, e.DifficultyLevel)
	if err != nil {
		return writeErr(err, "exercise", e.ID)
	}
	return nil
}
