package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/cache"
	"github.com/2beens/trainingtracker/internal/cascade"
	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	CacheTTL = 10 * time.Minute

	allWorkoutsKey = "workouts::all"
)

func workoutKey(id int64) string {
	return fmt.Sprintf("workout::%d", id)
}

type Store interface {
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	AddWorkout(ctx context.Context, w models.Workout) error
	UpdateWorkout(ctx context.Context, w models.Workout) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListWorkoutExercisesByWorkout(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
}

type Deleter interface {
	ResolveWorkout(ctx context.Context, id int64) (*cascade.Node, error)
	Delete(ctx context.Context, root *cascade.Node) (cascade.Report, error)
}

type Service struct {
	store   Store
	deleter Deleter
	cache   cache.Cache
	ttl     time.Duration

	// optional, counts lookups by key and result
	cacheLookups *prometheus.CounterVec
}

func NewService(store Store, deleter Deleter, c cache.Cache, cacheLookups *prometheus.CounterVec) *Service {
	return &Service{
		store:        store,
		deleter:      deleter,
		cache:        c,
		ttl:          CacheTTL,
		cacheLookups: cacheLookups,
	}
}

func (s *Service) GetWorkoutByID(ctx context.Context, id int64) (_ *models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var cached models.Workout
	if s.cacheGet(workoutKey(id), "item", &cached) {
		span.SetAttributes(attribute.Bool("cached", true))
		return &cached, nil
	}

	w, err := s.store.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(workoutKey(id), w)
	return w, nil
}

func (s *Service) ListWorkouts(ctx context.Context) (_ []models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var cached []models.Workout
	if s.cacheGet(allWorkoutsKey, "list", &cached) {
		span.SetAttributes(attribute.Bool("cached", true))
		return cached, nil
	}

	workouts, err := s.store.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	s.cacheSet(allWorkoutsKey, workouts)
	return workouts, nil
}

// CreateWorkout stores a new workout for an existing user, with the total
// duration derived from its start and end times.
func (s *Service) CreateWorkout(ctx context.Context, w models.Workout) (_ *models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	span.SetAttributes(attribute.Int64("id", w.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if w.UserID <= 0 {
		return nil, models.ValidationError("workout %d: invalid user id %d", w.ID, w.UserID)
	}

	if _, err := s.store.GetWorkout(ctx, w.ID); err == nil {
		return nil, models.AlreadyExistsError("workout", w.ID)
	} else if !models.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, w.UserID); err != nil {
		if models.IsNotFound(err) {
			return nil, models.ValidationError("workout %d: user %d does not exist", w.ID, w.UserID)
		}
		return nil, err
	}

	w.TotalDuration = models.WorkoutDuration(w.StartTime, w.EndTime)
	if err := s.store.AddWorkout(ctx, w); err != nil {
		return nil, err
	}

	s.cacheSet(workoutKey(w.ID), w)
	s.patchCachedList(w)

	log.Debugf("workout %d of user %d created", w.ID, w.UserID)
	return &w, nil
}

// UpdateWorkout replaces the times, date and sequence number of a workout. The
// owner cannot be changed and the id in the path wins over the one in the body.
func (s *Service) UpdateWorkout(ctx context.Context, id int64, w models.Workout) (_ *models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	existing, err := s.store.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.StartTime = w.StartTime
	existing.EndTime = w.EndTime
	existing.Date = w.Date
	existing.SequenceNumber = w.SequenceNumber
	existing.TotalDuration = models.WorkoutDuration(w.StartTime, w.EndTime)

	if err := s.store.UpdateWorkout(ctx, *existing); err != nil {
		return nil, err
	}

	s.cacheSet(workoutKey(id), existing)
	s.patchCachedList(*existing)

	return existing, nil
}

// DeleteWorkout removes the workout together with its workout exercises, their
// sets and the sets' equipment.
func (s *Service) DeleteWorkout(ctx context.Context, id int64) (_ cascade.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	root, err := s.deleter.ResolveWorkout(ctx, id)
	if err != nil {
		return cascade.Report{}, err
	}

	report, err := s.deleter.Delete(ctx, root)
	s.Evict(id)
	if err != nil {
		log.Errorf("delete workout %d stopped after removing %d rows: %s", id, len(report.Removed), err)
		return report, err
	}

	log.Debugf("workout %d deleted, %d rows removed", id, len(report.Removed))
	return report, nil
}

func (s *Service) GetWorkoutExercisesByWorkoutID(ctx context.Context, workoutID int64) (_ []models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.workout-exercises")
	span.SetAttributes(attribute.Int64("workout-id", workoutID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.ListWorkoutExercisesByWorkout(ctx, workoutID)
}

// Evict drops the cached workout and the cached list.
func (s *Service) Evict(id int64) {
	s.cache.Remove(workoutKey(id))
	s.cache.Remove(allWorkoutsKey)
}

// EvictRemoved is a cascade listener keeping the cache in line with workouts
// removed by other components, e.g. when their user is deleted.
func (s *Service) EvictRemoved(_ context.Context, ref cascade.Ref) {
	if ref.Kind == cascade.KindWorkout {
		s.Evict(ref.ID)
	}
}

// patchCachedList replaces the workout in the cached list, or appends it. A
// missing list entry is left alone.
func (s *Service) patchCachedList(w models.Workout) {
	raw, ok := s.cache.Get(allWorkoutsKey)
	if !ok {
		return
	}

	var workouts []models.Workout
	if err := json.Unmarshal(raw, &workouts); err != nil {
		log.Warnf("workout cache: drop unreadable list: %s", err)
		s.cache.Remove(allWorkoutsKey)
		return
	}

	replaced := false
	for i := range workouts {
		if workouts[i].ID == w.ID {
			workouts[i] = w
			replaced = true
			break
		}
	}
	if !replaced {
		workouts = append(workouts, w)
	}
	s.cacheSet(allWorkoutsKey, workouts)
}

func (s *Service) cacheGet(key, kind string, dst any) bool {
	raw, ok := s.cache.Get(key)
	if ok {
		if err := json.Unmarshal(raw, dst); err != nil {
			log.Warnf("workout cache: unmarshal %s: %s", key, err)
			ok = false
		}
	}
	if s.cacheLookups != nil {
		result := "miss"
		if ok {
			result = "hit"
		}
		s.cacheLookups.WithLabelValues(kind, result).Inc()
	}
	return ok
}

func (s *Service) cacheSet(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("workout cache: marshal %s: %s", key, err)
		return
	}
	if !s.cache.Set(key, raw, s.ttl) {
		log.Warnf("workout cache: %s not stored", key)
	}
}
