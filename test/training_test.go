//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/trainingtracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) call(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) mustCall(ctx context.Context, method, path string, body any, expectedStatus int) []byte {
	status, respBytes := s.call(ctx, method, path, body)
	s.Require().Equal(expectedStatus, status, "%s %s: %s", method, path, respBytes)
	return respBytes
}

func (s *IntegrationTestSuite) addUser(ctx context.Context, id int64) {
	s.mustCall(ctx, "POST", "/api/Users/AddUser", map[string]any{
		"id":       id,
		"name":     gofakeit.Name(),
		"email":    gofakeit.Email(),
		"login":    gofakeit.Username(),
		"password": gofakeit.Password(true, true, true, false, false, 12),
	}, http.StatusCreated)
}

func (s *IntegrationTestSuite) countRows(table string) int {
	var n int
	s.Require().NoError(s.DB.QueryRow(fmt.Sprintf("SELECT count(*) FROM %s", table)).Scan(&n))
	return n
}

func (s *IntegrationTestSuite) TestExerciseCatalogSeeded() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var exercises []models.Exercise
	s.Require().NoError(json.Unmarshal(
		s.mustCall(ctx, "GET", "/api/Exercises/GetAllExercises", nil, http.StatusOK),
		&exercises,
	))
	s.Len(exercises, 9)
	s.Equal(0, exercises[0].ID)

	status, _ := s.call(ctx, "GET", "/api/Exercises/GetExerciseById/99", nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestTrainingLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.addUser(ctx, 1)
	s.addUser(ctx, 2)

	// wraps past midnight: duration is clamped
	var workout models.Workout
	s.Require().NoError(json.Unmarshal(s.mustCall(ctx, "POST", "/api/Workouts/CreateWorkout", map[string]any{
		"id": 11, "userId": 1, "startTime": "23:30:00", "endTime": "00:30:00", "date": "2024-03-14",
	}, http.StatusCreated), &workout))
	s.Require().NotNil(workout.TotalDuration)
	s.Equal(models.MaxTimeOfDay, *workout.TotalDuration)

	s.mustCall(ctx, "POST", "/api/Workouts/CreateWorkout", map[string]any{
		"id": 12, "userId": 2, "startTime": "08:00:00", "endTime": "09:00:00",
	}, http.StatusCreated)
	status, _ := s.call(ctx, "POST", "/api/Workouts/CreateWorkout", map[string]any{"id": 12, "userId": 2})
	s.Equal(http.StatusConflict, status)

	s.mustCall(ctx, "POST", "/api/WorkoutExercises/CreateWorkoutExercise", map[string]any{
		"id": 21, "exerciseId": 3, "workoutId": 11, "restTimeAfterExercise": "00:02:00",
	}, http.StatusCreated)
	s.mustCall(ctx, "POST", "/api/WorkoutExercises/CreateWorkoutExercise", map[string]any{
		"id": 22, "exerciseId": 3, "workoutId": 12,
	}, http.StatusCreated)
	s.mustCall(ctx, "POST", "/api/WorkoutExercises/CreateSet", map[string]any{
		"id": 31, "exerciseId": 3, "workoutExerciseId": 21, "effort": 7, "repsDone": 12, "restTimeAfterSet": "00:01:00",
	}, http.StatusCreated)
	s.mustCall(ctx, "POST", "/api/WorkoutExercises/CreateSet", map[string]any{
		"id": 32, "exerciseId": 3, "workoutExerciseId": 22, "effort": 5, "repsDone": 5,
	}, http.StatusCreated)

	// no workout exercise 21 of exercise 4
	status, _ = s.call(ctx, "POST", "/api/WorkoutExercises/CreateSet", map[string]any{
		"id": 33, "exerciseId": 4, "workoutExerciseId": 21,
	})
	s.Equal(http.StatusBadRequest, status)

	s.mustCall(ctx, "POST", "/api/WorkoutExercises/CreateEquipment", map[string]any{
		"id": 41, "setId": 31, "name": "Dumbbell", "weight": 22.5,
	}, http.StatusCreated)
	// equipment for a set that does not exist is still stored
	s.mustCall(ctx, "POST", "/api/WorkoutExercises/CreateEquipment", map[string]any{
		"id": 42, "setId": 999, "name": "Band",
	}, http.StatusCreated)

	var stats models.WeeklyStatistics
	s.Require().NoError(json.Unmarshal(
		s.mustCall(ctx, "GET", "/api/Statistics/GetAggregatedStatistics/3", nil, http.StatusOK),
		&stats,
	))
	s.Equal(2, stats.WorkoutExercisesNum)
	s.Equal(2, stats.SetsNum)
	s.Equal(int64(12), stats.TotalEffort)
	s.Equal(int64(17), stats.RepsNum)
	s.Equal(int64(60), stats.RestTimeBetweenSetsSec)
	s.Equal(int64(120), stats.RestTimeAfterExerciseSec)
	s.Equal(22.5, stats.WeightLifted)

	// recomputing keeps a single snapshot with the same id
	var again models.WeeklyStatistics
	s.Require().NoError(json.Unmarshal(
		s.mustCall(ctx, "GET", "/api/Statistics/GetAggregatedStatistics/3", nil, http.StatusOK),
		&again,
	))
	s.Equal(stats.ID, again.ID)
	s.Equal(1, s.countRows("users_week_statistics_total"))

	s.mustCall(ctx, "DELETE", "/api/Workouts/DeleteWorkout/11", nil, http.StatusNoContent)
	s.Equal(1, s.countRows("workout"))
	s.Equal(1, s.countRows("workout_exercise"))
	s.Equal(1, s.countRows("exercise_set"))
	// only the orphan equipment is left
	s.Equal(1, s.countRows("equipment"))

	status, _ = s.call(ctx, "GET", "/api/Workouts/GetWorkoutById/11", nil)
	s.Equal(http.StatusNotFound, status)

	s.mustCall(ctx, "DELETE", "/api/Users/DeleteUser/2", nil, http.StatusNoContent)
	s.Equal(0, s.countRows("workout"))
	s.Equal(0, s.countRows("exercise_set"))
	s.Equal(1, s.countRows("app_user"))

	s.mustCall(ctx, "DELETE", "/api/Statistics/DeleteAllUsersWeekStatistics", nil, http.StatusNoContent)
	s.Equal(0, s.countRows("users_week_statistics_total"))
}

func (s *IntegrationTestSuite) TestValidationErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := s.call(ctx, "POST", "/api/Workouts/CreateWorkout", map[string]any{"id": 51, "userId": 77})
	s.Equal(http.StatusBadRequest, status)
	s.Contains(string(body), "user 77 does not exist")

	status, _ = s.call(ctx, "GET", "/api/Users/GetUserById/abc", nil)
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.call(ctx, "DELETE", "/api/Users/DeleteUser/123", nil)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.call(ctx, "GET", "/api/WorkoutExercises/GetSetsByWorkoutExerciseId/5", nil)
	s.Equal(http.StatusNotFound, status)
}
