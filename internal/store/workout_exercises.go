package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/attribute"
)

const workoutExerciseColumns = `exercise_id, id, workout_id, rest_time_after_exercise, sequence_number`

func scanWorkoutExercise(row scanner) (models.WorkoutExercise, error) {
	var (
		we       models.WorkoutExercise
		restTime pgtype.Time
	)
	if err := row.Scan(&we.ExerciseID, &we.ID, &we.WorkoutID, &restTime, &we.SequenceNumber); err != nil {
		return models.WorkoutExercise{}, err
	}
	we.RestTimeAfterExercise = timeOfDayValue(restTime)
	return we, nil
}

func (r *Repo) ListWorkoutExercises(ctx context.Context) (_ []models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+workoutExerciseColumns+` FROM workout_exercise ORDER BY id, exercise_id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkoutExercise)
}

func (r *Repo) ListWorkoutExercisesByWorkout(ctx context.Context, workoutID int64) (_ []models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.list-by-workout")
	span.SetAttributes(attribute.Int64("workout-id", workoutID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutExerciseColumns+`
		FROM workout_exercise
		WHERE workout_id = $1
		ORDER BY id, exercise_id
	`, workoutID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkoutExercise)
}

func (r *Repo) ListWorkoutExercisesByExercise(ctx context.Context, exerciseID int) (_ []models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.list-by-exercise")
	span.SetAttributes(attribute.Int("exercise-id", exerciseID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutExerciseColumns+`
		FROM workout_exercise
		WHERE exercise_id = $1
		ORDER BY id
	`, exerciseID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkoutExercise)
}

// GetWorkoutExercise returns the workout exercise with the given id. Ids are
// unique across exercises, the lowest exercise id wins if they ever are not.
func (r *Repo) GetWorkoutExercise(ctx context.Context, id int64) (_ *models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	we, err := scanWorkoutExercise(r.db.QueryRow(ctx, `
		SELECT `+workoutExerciseColumns+`
		FROM workout_exercise
		WHERE id = $1
		ORDER BY exercise_id
		LIMIT 1
	`, id))
	if err != nil {
		return nil, readErr(err, "workout exercise", id)
	}
	return &we, nil
}

func (r *Repo) AddWorkoutExercise(ctx context.Context, we models.WorkoutExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.add")
	span.SetAttributes(attribute.Int64("id", we.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_exercise (`+workoutExerciseColumns+`)
		VALUES ($1, $2, $3, $4, $5)
	`, we.ExerciseID, we.ID, we.WorkoutID, timeOfDayParam(we.RestTimeAfterExercise), we.SequenceNumber)
	if err != nil {
		return writeErr(err, "workout exercise", we.ID)
	}
	return nil
}

func (r *Repo) UpdateWorkoutExercise(ctx context.Context, we models.WorkoutExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.update")
	span.SetAttributes(attribute.Int64("id", we.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_exercise
		SET exercise_id = $1, workout_id = $3, rest_time_after_exercise = $4, sequence_number = $5
		WHERE id = $2
	`, we.ExerciseID, we.ID, we.WorkoutID, timeOfDayParam(we.RestTimeAfterExercise), we.SequenceNumber)
	if err != nil {
		return writeErr(err, "workout exercise", we.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("workout exercise", we.ID)
	}
	return nil
}

func (r *Repo) DeleteWorkoutExercise(ctx context.Context, key models.WorkoutExerciseKey) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout-exercises.delete")
	span.SetAttributes(attribute.Int64("id", key.ID), attribute.Int("exercise-id", key.ExerciseID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_exercise WHERE exercise_id = $1 AND id = $2`, key.ExerciseID, key.ID)
	if err != nil {
		return writeErr(err, "workout exercise", key.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("workout exercise", key.ID)
	}
	return nil
}
