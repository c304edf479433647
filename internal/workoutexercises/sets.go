package workoutexercises

import (
	"context"

	"github.com/2beens/trainingtracker/internal/cascade"
	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

func (s *Service) GetSetsByWorkoutExerciseID(ctx context.Context, workoutExerciseID int64) (_ []models.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sets.by-workout-exercise")
	span.SetAttributes(attribute.Int64("workout-exercise-id", workoutExerciseID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.ListSetsByWorkoutExerciseID(ctx, workoutExerciseID)
}

// CreateSet adds a set to the workout exercise matching both its exercise id
// and workout exercise id.
func (s *Service) CreateSet(ctx context.Context, set models.Set) (_ *models.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sets.create")
	span.SetAttributes(attribute.Int64("id", set.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.store.GetSet(ctx, set.ID); err == nil {
		return nil, models.AlreadyExistsError("set", set.ID)
	} else if !models.IsNotFound(err) {
		return nil, err
	}

	if err := s.checkWorkoutExercise(ctx, set); err != nil {
		return nil, err
	}

	if err := s.store.AddSet(ctx, set); err != nil {
		return nil, err
	}

	log.Debugf("set %d added to workout exercise %d", set.ID, set.WorkoutExerciseID)
	return &set, nil
}

func (s *Service) UpdateSet(ctx context.Context, id int64, set models.Set) (_ *models.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sets.update")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkRouteID("set", id, set.ID); err != nil {
		return nil, err
	}
	set.ID = id

	if _, err := s.store.GetSet(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkWorkoutExercise(ctx, set); err != nil {
		return nil, err
	}
	if err := s.checkExercise(ctx, "set", id, set.ExerciseID); err != nil {
		return nil, err
	}

	if err := s.store.UpdateSet(ctx, set); err != nil {
		return nil, err
	}
	return &set, nil
}

// DeleteSet removes the set and the equipment recorded for it.
func (s *Service) DeleteSet(ctx context.Context, id int64) (_ cascade.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sets.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	root, err := s.deleter.ResolveSet(ctx, id)
	if err != nil {
		return cascade.Report{}, err
	}
	return s.delete(ctx, root)
}

func (s *Service) checkWorkoutExercise(ctx context.Context, set models.Set) error {
	key := set.WorkoutExerciseKey()
	workoutExercises, err := s.store.ListWorkoutExercisesByExercise(ctx, key.ExerciseID)
	if err != nil {
		return err
	}
	for _, we := range workoutExercises {
		if we.Key() == key {
			return nil
		}
	}
	return models.ValidationError("set %d: workout exercise %d of exercise %d does not exist", set.ID, key.ID, key.ExerciseID)
}
