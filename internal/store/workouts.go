package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/attribute"
)

const workoutColumns = `id, user_id, start_time, end_time, date, total_duration, sequence_number`

func scanWorkout(row scanner) (models.Workout, error) {
	var (
		w                            models.Workout
		startTime, endTime, totalDur pgtype.Time
		date                         pgtype.Date
	)
	if err := row.Scan(&w.ID, &w.UserID, &startTime, &endTime, &date, &totalDur, &w.SequenceNumber); err != nil {
		return models.Workout{}, err
	}
	w.StartTime = timeOfDayValue(startTime)
	w.EndTime = timeOfDayValue(endTime)
	w.TotalDuration = timeOfDayValue(totalDur)
	w.Date = dateValue(date)
	return w, nil
}

func (r *Repo) ListWorkouts(ctx context.Context) (_ []models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+workoutColumns+` FROM workout ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkout)
}

func (r *Repo) ListWorkoutsByUser(ctx context.Context, userID int64) (_ []models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list-by-user")
	span.SetAttributes(attribute.Int64("user-id", userID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+workoutColumns+` FROM workout WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkout)
}

func (r *Repo) ListWorkoutsByIDs(ctx context.Context, ids []int64) (_ []models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list-by-ids")
	span.SetAttributes(attribute.Int("ids", len(ids)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+workoutColumns+` FROM workout WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkout)
}

func (r *Repo) GetWorkout(ctx context.Context, id int64) (_ *models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := scanWorkout(r.db.QueryRow(ctx, `SELECT `+workoutColumns+` FROM workout WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "workout", id)
	}
	return &w, nil
}

func (r *Repo) AddWorkout(ctx context.Context, w models.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	span.SetAttributes(attribute.Int64("id", w.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout (`+workoutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		w.ID, w.UserID,
		timeOfDayParam(w.StartTime), timeOfDayParam(w.EndTime),
		dateParam(w.Date), timeOfDayParam(w.TotalDuration),
		w.SequenceNumber,
	)
	if err != nil {
		return writeErr(err, "workout", w.ID)
	}
	return nil
}

func (r *Repo) UpdateWorkout(ctx context.Context, w models.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	span.SetAttributes(attribute.Int64("id", w.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout
		SET user_id = $2, start_time = $3, end_time = $4, date = $5,
			total_duration = $6, sequence_number = $7
		WHERE id = $1
	`,
		w.ID, w.UserID,
		timeOfDayParam(w.StartTime), timeOfDayParam(w.EndTime),
		dateParam(w.Date), timeOfDayParam(w.TotalDuration),
		w.SequenceNumber,
	)
	if err != nil {
		return writeErr(err, "workout", w.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("workout", w.ID)
	}
	return nil
}

func (r *Repo) DeleteWorkout(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1`, id)
	if err != nil {
		return writeErr(err, "workout", id)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("workout", id)
	}
	return nil
}
