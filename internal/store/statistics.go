package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/attribute"
)

const weeklyStatisticsColumns = `exercise_id, id, week_start, workout_exercises_num, sets_num, users_have_done_num,
	total_effort, reps_num, rest_time_between_sets_sec, rest_time_after_exercise_sec, weight_lifted`

func scanWeeklyStatistics(row scanner) (models.WeeklyStatistics, error) {
	var (
		s         models.WeeklyStatistics
		weekStart pgtype.Date
	)
	err := row.Scan(
		&s.ExerciseID, &s.ID, &weekStart,
		&s.WorkoutExercisesNum, &s.SetsNum, &s.UsersHaveDoneNum,
		&s.TotalEffort, &s.RepsNum,
		&s.RestTimeBetweenSetsSec, &s.RestTimeAfterExerciseSec,
		&s.WeightLifted,
	)
	if err != nil {
		return models.WeeklyStatistics{}, err
	}
	s.WeekStart = models.DateOf(weekStart.Time)
	return s, nil
}

func (r *Repo) ListWeeklyStatistics(ctx context.Context) (_ []models.WeeklyStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+weeklyStatisticsColumns+`
		FROM users_week_statistics_total
		ORDER BY week_start DESC, exercise_id, id
	`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWeeklyStatistics)
}

// DeleteWeeklyStatistics removes the snapshots of an exercise for the given week
// and returns the ids they had.
func (r *Repo) DeleteWeeklyStatistics(ctx context.Context, exerciseID int, weekStart models.Date) (_ []int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.delete-week")
	span.SetAttributes(attribute.Int("exercise-id", exerciseID), attribute.String("week-start", weekStart.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		DELETE FROM users_week_statistics_total
		WHERE exercise_id = $1 AND week_start = $2
		RETURNING id
	`, exerciseID, dateParam(&weekStart))
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
}

func (r *Repo) DeleteAllWeeklyStatistics(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.delete-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM users_week_statistics_total`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MaxWeeklyStatisticsID returns the highest snapshot id over all exercises, 0 when
// there are none.
func (r *Repo) MaxWeeklyStatisticsID(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.max-id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var maxID int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM users_week_statistics_total`).Scan(&maxID); err != nil {
		return 0, err
	}
	return maxID, nil
}

func (r *Repo) AddWeeklyStatistics(ctx context.Context, s models.WeeklyStatistics) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.add")
	span.SetAttributes(attribute.Int64("id", s.ID), attribute.Int("exercise-id", s.ExerciseID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO users_week_statistics_total (`+weeklyStatisticsColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		s.ExerciseID, s.ID, dateParam(&s.WeekStart),
		s.WorkoutExercisesNum, s.SetsNum, s.UsersHaveDoneNum,
		s.TotalEffort, s.RepsNum,
		s.RestTimeBetweenSetsSec, s.RestTimeAfterExerciseSec,
		s.WeightLifted,
	)
	if err != nil {
		return writeErr(err, "weekly statistics", s.ID)
	}
	return nil
}
