package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/attribute"
)

const setColumns = `id, exercise_id, workout_exercise_id, sequence_number, effort, rest_time_after_set, comments, reps_done`

func scanSet(row scanner) (models.Set, error) {
	var (
		s        models.Set
		restTime pgtype.Time
	)
	err := row.Scan(
		&s.ID, &s.ExerciseID, &s.WorkoutExerciseID,
		&s.SequenceNumber, &s.Effort, &restTime, &s.Comments, &s.RepsDone,
	)
	if err != nil {
		return models.Set{}, err
	}
	s.RestTimeAfterSet = timeOfDayValue(restTime)
	return s, nil
}

func (r *Repo) GetSet(ctx context.Context, id int64) (_ *models.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s, err := scanSet(r.db.QueryRow(ctx, `SELECT `+setColumns+` FROM exercise_set WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "set", id)
	}
	return &s, nil
}

// ListSetsByWorkoutExerciseID matches on the workout exercise id alone.
func (r *Repo) ListSetsByWorkoutExerciseID(ctx context.Context, workoutExerciseID int64) (_ []models.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.list-by-workout-exercise")
	span.SetAttributes(attribute.Int64("workout-exercise-id", workoutExerciseID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+setColumns+`
		FROM exercise_set
		WHERE workout_exercise_id = $1
		ORDER BY id
	`, workoutExerciseID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSet)
}

// ListSetsByWorkoutExercises returns the sets belonging to any of the given
// workout exercises, matched on the full (exercise id, id) key.
func (r *Repo) ListSetsByWorkoutExercises(ctx context.Context, keys []models.WorkoutExerciseKey) (_ []models.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.list-by-workout-exercises")
	span.SetAttributes(attribute.Int("keys", len(keys)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseIDs := make([]int32, len(keys))
	weIDs := make([]int64, len(keys))
	for i, k := range keys {
		exerciseIDs[i] = int32(k.ExerciseID)
		weIDs[i] = k.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+setColumns+`
		FROM exercise_set
		WHERE (exercise_id, workout_exercise_id) IN (
			SELECT * FROM unnest($1::int[], $2::bigint[])
		)
		ORDER BY id
	`, exerciseIDs, weIDs)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSet)
}

func (r *Repo) AddSet(ctx context.Context, s models.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.add")
	span.SetAttributes(attribute.Int64("id", s.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_set (`+setColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		s.ID, s.ExerciseID, s.WorkoutExerciseID,
		s.SequenceNumber, s.Effort, timeOfDayParam(s.RestTimeAfterSet), s.Comments, s.RepsDone,
	)
	if err != nil {
		return writeErr(err, "set", s.ID)
	}
	return nil
}

func (r *Repo) UpdateSet(ctx context.Context, s models.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.update")
	span.SetAttributes(attribute.Int64("id", s.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE exercise_set
		SET exercise_id = $2, workout_exercise_id = $3, sequence_number = $4,
			effort = $5, rest_time_after_set = $6, comments = $7, reps_done = $8
		WHERE id = $1
	`,
		s.ID, s.ExerciseID, s.WorkoutExerciseID,
		s.SequenceNumber, s.Effort, timeOfDayParam(s.RestTimeAfterSet), s.Comments, s.RepsDone,
	)
	if err != nil {
		return writeErr(err, "set", s.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("set", s.ID)
	}
	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_set WHERE id = $1`, id)
	if err != nil {
		return writeErr(err, "set", id)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("set", id)
	}
	return nil
}
