package statistics

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// WindowDays is how far back from today a weekly snapshot looks.
const WindowDays = 7

type Store interface {
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
	ListWorkoutExercisesByExercise(ctx context.Context, exerciseID int) ([]models.WorkoutExercise, error)
	ListWorkoutsByIDs(ctx context.Context, ids []int64) ([]models.Workout, error)
	ListSetsByWorkoutExercises(ctx context.Context, keys []models.WorkoutExerciseKey) ([]models.Set, error)
	ListEquipmentBySets(ctx context.Context, setIDs []int64) ([]models.Equipment, error)

	ListWeeklyStatistics(ctx context.Context) ([]models.WeeklyStatistics, error)
	DeleteWeeklyStatistics(ctx context.Context, exerciseID int, weekStart models.Date) ([]int64, error)
	DeleteAllWeeklyStatistics(ctx context.Context) (int64, error)
	MaxWeeklyStatisticsID(ctx context.Context) (int64, error)
	AddWeeklyStatistics(ctx context.Context, s models.WeeklyStatistics) error
}

type Service struct {
	store Store
	now   func() time.Time

	// optional
	computed prometheus.Counter
}

func NewService(store Store, now func() time.Time, computed prometheus.Counter) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:    store,
		now:      now,
		computed: computed,
	}
}

// ComputeWeeklyAggregate replaces the exercise's snapshot for the week ending
// today with a freshly computed one and returns it.
//
// Only the distinct user count is limited to workouts dated within the week.
// The workout exercise, set, effort, reps, rest and weight figures cover every
// workout exercise of the exercise, whatever its date.
func (s *Service) ComputeWeeklyAggregate(ctx context.Context, exerciseID int) (_ *models.WeeklyStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.statistics.compute")
	span.SetAttributes(attribute.Int("exercise-id", exerciseID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.store.GetExercise(ctx, exerciseID); err != nil {
		return nil, err
	}

	today := models.DateOf(s.now().UTC())
	weekStart := today.AddDays(-WindowDays)

	id, err := s.snapshotID(ctx, exerciseID, weekStart)
	if err != nil {
		return nil, err
	}

	stats := models.WeeklyStatistics{
		ID:         id,
		ExerciseID: exerciseID,
		WeekStart:  weekStart,
	}

	workoutExercises, err := s.store.ListWorkoutExercisesByExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises of exercise %d: %w", exerciseID, err)
	}
	stats.WorkoutExercisesNum = len(workoutExercises)

	workoutIDs := make([]int64, 0, len(workoutExercises))
	keys := make([]models.WorkoutExerciseKey, 0, len(workoutExercises))
	seenWorkouts := make(map[int64]struct{})
	for _, we := range workoutExercises {
		if we.RestTimeAfterExercise != nil {
			stats.RestTimeAfterExerciseSec += we.RestTimeAfterExercise.TotalSeconds()
		}
		keys = append(keys, we.Key())
		if _, ok := seenWorkouts[we.WorkoutID]; !ok {
			seenWorkouts[we.WorkoutID] = struct{}{}
			workoutIDs = append(workoutIDs, we.WorkoutID)
		}
	}

	workouts, err := s.store.ListWorkoutsByIDs(ctx, workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("list workouts of exercise %d: %w", exerciseID, err)
	}
	users := make(map[int64]struct{})
	for _, w := range workouts {
		if w.Date == nil || !w.Date.Within(weekStart, today) {
			continue
		}
		users[w.UserID] = struct{}{}
	}
	stats.UsersHaveDoneNum = len(users)

	sets, err := s.store.ListSetsByWorkoutExercises(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("list sets of exercise %d: %w", exerciseID, err)
	}
	stats.SetsNum = len(sets)
	setIDs := make([]int64, 0, len(sets))
	for _, set := range sets {
		if set.Effort != nil {
			stats.TotalEffort += int64(*set.Effort)
		}
		if set.RepsDone != nil {
			stats.RepsNum += int64(*set.RepsDone)
		}
		if set.RestTimeAfterSet != nil {
			stats.RestTimeBetweenSetsSec += set.RestTimeAfterSet.TotalSeconds()
		}
		setIDs = append(setIDs, set.ID)
	}

	equipment, err := s.store.ListEquipmentBySets(ctx, setIDs)
	if err != nil {
		return nil, fmt.Errorf("list equipment of exercise %d: %w", exerciseID, err)
	}
	for _, e := range equipment {
		if e.Weight != nil {
			stats.WeightLifted += *e.Weight
		}
	}

	if err := s.store.AddWeeklyStatistics(ctx, stats); err != nil {
		return nil, fmt.Errorf("store weekly statistics %d of exercise %d: %w", id, exerciseID, err)
	}
	if s.computed != nil {
		s.computed.Inc()
	}

	log.Debugf("weekly statistics %d of exercise %d computed for week starting %s", id, exerciseID, weekStart)
	return &stats, nil
}

// snapshotID drops the snapshots already stored for the exercise and week. The
// new one takes the smallest id among them, or the next free id when there
// were none.
func (s *Service) snapshotID(ctx context.Context, exerciseID int, weekStart models.Date) (int64, error) {
	deleted, err := s.store.DeleteWeeklyStatistics(ctx, exerciseID, weekStart)
	if err != nil {
		return 0, fmt.Errorf("delete weekly statistics of exercise %d, week %s: %w", exerciseID, weekStart, err)
	}
	if len(deleted) > 0 {
		return max(slices.Min(deleted), 1), nil
	}

	maxID, err := s.store.MaxWeeklyStatisticsID(ctx)
	if err != nil {
		return 0, fmt.Errorf("max weekly statistics id: %w", err)
	}
	return maxID + 1, nil
}

func (s *Service) ListWeeklyStatistics(ctx context.Context) (_ []models.WeeklyStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.statistics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stats, err := s.store.ListWeeklyStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list weekly statistics: %w", err)
	}
	return stats, nil
}

func (s *Service) DeleteAllWeeklyStatistics(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.statistics.delete-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.store.DeleteAllWeeklyStatistics(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all weekly statistics: %w", err)
	}
	log.Infof("%d weekly statistics snapshots deleted", deleted)
	return deleted, nil
}
