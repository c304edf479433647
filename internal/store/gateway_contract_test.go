package store

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/trainingtracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fakeUser(id int64) models.User {
	return models.User{
		ID:           id,
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Login:        gofakeit.Username(),
		PasswordHash: "$2a$04$notarealhash",
		Height:       ptr(gofakeit.Number(150, 200)),
		Age:          ptr(gofakeit.Number(18, 80)),
		StartDate:    &models.Date{Year: 2024, Month: time.February, Day: 29},
	}
}

// runGatewayContract checks behaviour every Gateway implementation must share.
// newGateway must return an empty gateway.
func runGatewayContract(t *testing.T, newGateway func(t *testing.T) Gateway) {
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		g := newGateway(t)

		_, err := g.GetUser(ctx, 1)
		assert.ErrorIs(t, err, models.ErrNotFound)

		u := fakeUser(1)
		require.NoError(t, g.AddUser(ctx, u))
		assert.ErrorIs(t, g.AddUser(ctx, u), models.ErrAlreadyExists)

		got, err := g.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, u, *got)

		u.Name = "renamed"
		u.Age = nil
		require.NoError(t, g.UpdateUser(ctx, u))
		got, err = g.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
		assert.Nil(t, got.Age)

		assert.ErrorIs(t, g.UpdateUser(ctx, fakeUser(2)), models.ErrNotFound)

		users, err := g.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		require.NoError(t, g.DeleteUser(ctx, 1))
		assert.ErrorIs(t, g.DeleteUser(ctx, 1), models.ErrNotFound)
	})

	t.Run("foreign keys", func(t *testing.T) {
		g := newGateway(t)

		w := models.Workout{ID: 10, UserID: 1}
		assert.ErrorIs(t, g.AddWorkout(ctx, w), models.ErrValidation)

		require.NoError(t, g.AddUser(ctx, fakeUser(1)))
		require.NoError(t, g.AddExercise(ctx, models.Exercise{ID: 3, Name: "Deadlift"}))
		require.NoError(t, g.AddWorkout(ctx, w))

		we := models.WorkoutExercise{ID: 100, ExerciseID: 3, WorkoutID: 10}
		require.NoError(t, g.AddWorkoutExercise(ctx, we))
		assert.ErrorIs(t, g.AddWorkoutExercise(ctx, we), models.ErrAlreadyExists)

		set := models.Set{ID: 1000, ExerciseID: 3, WorkoutExerciseID: 100, RepsDone: ptr(5)}
		require.NoError(t, g.AddSet(ctx, set))
		assert.ErrorIs(t, g.AddSet(ctx, models.Set{ID: 1001, ExerciseID: 4, WorkoutExerciseID: 100}), models.ErrValidation)

		// equipment is allowed to point at a set that does not exist
		require.NoError(t, g.AddEquipment(ctx, models.Equipment{ID: 1, SetID: 999, Name: "Barbell"}))

		// parents cannot go while children reference them
		assert.ErrorIs(t, g.DeleteUser(ctx, 1), models.ErrValidation)
		assert.ErrorIs(t, g.DeleteWorkout(ctx, 10), models.ErrValidation)
		assert.ErrorIs(t, g.DeleteWorkoutExercise(ctx, we.Key()), models.ErrValidation)

		require.NoError(t, g.DeleteSet(ctx, 1000))
		require.NoError(t, g.DeleteWorkoutExercise(ctx, we.Key()))
		require.NoError(t, g.DeleteWorkout(ctx, 10))
		require.NoError(t, g.DeleteUser(ctx, 1))
	})

	t.Run("workouts and time values", func(t *testing.T) {
		g := newGateway(t)
		require.NoError(t, g.AddUser(ctx, fakeUser(1)))
		require.NoError(t, g.AddUser(ctx, fakeUser(2)))

		start := models.NewTimeOfDay(7, 15, 0)
		end := models.NewTimeOfDay(8, 0, 30)
		w := models.Workout{
			ID:             1,
			UserID:         1,
			StartTime:      &start,
			EndTime:        &end,
			Date:           &models.Date{Year: 2024, Month: time.May, Day: 1},
			TotalDuration:  models.WorkoutDuration(&start, &end),
			SequenceNumber: ptr(1),
		}
		require.NoError(t, g.AddWorkout(ctx, w))
		require.NoError(t, g.AddWorkout(ctx, models.Workout{ID: 2, UserID: 2}))
		require.NoError(t, g.AddWorkout(ctx, models.Workout{ID: 3, UserID: 1, TotalDuration: ptr(models.MaxTimeOfDay)}))

		got, err := g.GetWorkout(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, w, *got)

		got, err = g.GetWorkout(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, models.MaxTimeOfDay, *got.TotalDuration)
		assert.Nil(t, got.StartTime)
		assert.Nil(t, got.Date)

		byUser, err := g.ListWorkoutsByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, byUser, 2)
		assert.Equal(t, int64(1), byUser[0].ID)
		assert.Equal(t, int64(3), byUser[1].ID)

		byIDs, err := g.ListWorkoutsByIDs(ctx, []int64{2, 3, 42})
		require.NoError(t, err)
		assert.Len(t, byIDs, 2)

		w.UserID = 2
		w.EndTime = nil
		w.TotalDuration = nil
		require.NoError(t, g.UpdateWorkout(ctx, w))
		got, err = g.GetWorkout(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.UserID)
		assert.Nil(t, got.EndTime)

		assert.ErrorIs(t, g.UpdateWorkout(ctx, models.Workout{ID: 77, UserID: 1}), models.ErrNotFound)
	})

	t.Run("sets by workout exercise key", func(t *testing.T) {
		g := newGateway(t)
		require.NoError(t, g.AddUser(ctx, fakeUser(1)))
		require.NoError(t, g.AddExercise(ctx, models.Exercise{ID: 1, Name: "Squat"}))
		require.NoError(t, g.AddExercise(ctx, models.Exercise{ID: 2, Name: "Pull Up"}))
		require.NoError(t, g.AddWorkout(ctx, models.Workout{ID: 1, UserID: 1}))
		require.NoError(t, g.AddWorkoutExercise(ctx, models.WorkoutExercise{ID: 5, ExerciseID: 1, WorkoutID: 1}))
		require.NoError(t, g.AddWorkoutExercise(ctx, models.WorkoutExercise{ID: 5, ExerciseID: 2, WorkoutID: 1}))
		require.NoError(t, g.AddSet(ctx, models.Set{ID: 1, ExerciseID: 1, WorkoutExerciseID: 5}))
		require.NoError(t, g.AddSet(ctx, models.Set{ID: 2, ExerciseID: 2, WorkoutExerciseID: 5}))

		sets, err := g.ListSetsByWorkoutExercises(ctx, []models.WorkoutExerciseKey{{ExerciseID: 1, ID: 5}})
		require.NoError(t, err)
		require.Len(t, sets, 1)
		assert.Equal(t, int64(1), sets[0].ID)

		sets, err = g.ListSetsByWorkoutExerciseID(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, sets, 2)

		we, err := g.GetWorkoutExercise(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, we.ExerciseID)
	})

	t.Run("weekly statistics", func(t *testing.T) {
		g := newGateway(t)
		require.NoError(t, g.AddExercise(ctx, models.Exercise{ID: 1, Name: "Squat"}))
		require.NoError(t, g.AddExercise(ctx, models.Exercise{ID: 2, Name: "Plank"}))

		maxID, err := g.MaxWeeklyStatisticsID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), maxID)

		week := models.Date{Year: 2024, Month: time.June, Day: 3}
		require.NoError(t, g.AddWeeklyStatistics(ctx, models.WeeklyStatistics{ID: 4, ExerciseID: 1, WeekStart: week, WeightLifted: 12.5}))
		require.NoError(t, g.AddWeeklyStatistics(ctx, models.WeeklyStatistics{ID: 7, ExerciseID: 2, WeekStart: week}))
		assert.ErrorIs(t, g.AddWeeklyStatistics(ctx, models.WeeklyStatistics{ID: 1, ExerciseID: 9, WeekStart: week}), models.ErrValidation)

		maxID, err = g.MaxWeeklyStatisticsID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), maxID)

		deleted, err := g.DeleteWeeklyStatistics(ctx, 1, week)
		require.NoError(t, err)
		assert.Equal(t, []int64{4}, deleted)

		deleted, err = g.DeleteWeeklyStatistics(ctx, 1, week)
		require.NoError(t, err)
		assert.Empty(t, deleted)

		all, err := g.ListWeeklyStatistics(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, week, all[0].WeekStart)

		n, err := g.DeleteAllWeeklyStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
