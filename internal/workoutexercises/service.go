package workoutexercises

import (
	"context"
	"fmt"

	"github.com/2beens/trainingtracker/internal/cascade"
	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Store interface {
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)

	ListWorkoutExercises(ctx context.Context) ([]models.WorkoutExercise, error)
	ListWorkoutExercisesByWorkout(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
	ListWorkoutExercisesByExercise(ctx context.Context, exerciseID int) ([]models.WorkoutExercise, error)
	GetWorkoutExercise(ctx context.Context, id int64) (*models.WorkoutExercise, error)
	AddWorkoutExercise(ctx context.Context, we models.WorkoutExercise) error
	UpdateWorkoutExercise(ctx context.Context, we models.WorkoutExercise) error

	GetSet(ctx context.Context, id int64) (*models.Set, error)
	ListSetsByWorkoutExerciseID(ctx context.Context, workoutExerciseID int64) ([]models.Set, error)
	AddSet(ctx context.Context, s models.Set) error
	UpdateSet(ctx context.Context, s models.Set) error

	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*models.Equipment, error)
	ListEquipmentBySet(ctx context.Context, setID int64) ([]models.Equipment, error)
	AddEquipment(ctx context.Context, e models.Equipment) error
	UpdateEquipment(ctx context.Context, e models.Equipment) error
}

type Deleter interface {
	ResolveWorkoutExercise(ctx context.Context, id int64) (*cascade.Node, error)
	ResolveSet(ctx context.Context, id int64) (*cascade.Node, error)
	ResolveEquipment(ctx context.Context, id int64) (*cascade.Node, error)
	Delete(ctx context.Context, root *cascade.Node) (cascade.Report, error)
}

// Service manages the exercises done in a workout, their sets and the
// equipment used for each set.
type Service struct {
	store   Store
	deleter Deleter
}

func NewService(store Store, deleter Deleter) *Service {
	return &Service{
		store:   store,
		deleter: deleter,
	}
}

func (s *Service) GetWorkoutExerciseByID(ctx context.Context, id int64) (_ *models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout-exercises.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.GetWorkoutExercise(ctx, id)
}

func (s *Service) ListWorkoutExercises(ctx context.Context) (_ []models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout-exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutExercises, err := s.store.ListWorkoutExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	return workoutExercises, nil
}

func (s *Service) GetWorkoutExercisesByWorkoutID(ctx context.Context, workoutID int64) (_ []models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout-exercises.by-workout")
	span.SetAttributes(attribute.Int64("workout-id", workoutID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.ListWorkoutExercisesByWorkout(ctx, workoutID)
}

func (s *Service) CreateWorkoutExercise(ctx context.Context, we models.WorkoutExercise) (_ *models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout-exercises.create")
	span.SetAttributes(attribute.Int64("id", we.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.checkWorkout(ctx, "workout exercise", we.ID, we.WorkoutID); err != nil {
		return nil, err
	}

	if _, err := s.store.GetWorkoutExercise(ctx, we.ID); err == nil {
		return nil, models.AlreadyExistsError("workout exercise", we.ID)
	} else if !models.IsNotFound(err) {
		return nil, err
	}

	if err := s.checkExercise(ctx, "workout exercise", we.ID, we.ExerciseID); err != nil {
		return nil, err
	}

	if err := s.store.AddWorkoutExercise(ctx, we); err != nil {
		return nil, err
	}

	log.Debugf("workout exercise %d (exercise %d) added to workout %d", we.ID, we.ExerciseID, we.WorkoutID)
	return &we, nil
}

// UpdateWorkoutExercise may move the workout exercise to another workout or
// exercise, both have to exist.
func (s *Service) UpdateWorkoutExercise(ctx context.Context, id int64, we models.WorkoutExercise) (_ *models.WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout-exercises.update")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkRouteID("workout exercise", id, we.ID); err != nil {
		return nil, err
	}
	we.ID = id

	if _, err := s.store.GetWorkoutExercise(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkWorkout(ctx, "workout exercise", id, we.WorkoutID); err != nil {
		return nil, err
	}
	if err := s.checkExercise(ctx, "workout exercise", id, we.ExerciseID); err != nil {
		return nil, err
	}

	if err := s.store.UpdateWorkoutExercise(ctx, we); err != nil {
		return nil, err
	}
	return &we, nil
}

// DeleteWorkoutExercise removes the workout exercise with its sets and their
// equipment.
func (s *Service) DeleteWorkoutExercise(ctx context.Context, id int64) (_ cascade.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout-exercises.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	root, err := s.deleter.ResolveWorkoutExercise(ctx, id)
	if err != nil {
		return cascade.Report{}, err
	}
	return s.delete(ctx, root)
}

func (s *Service) delete(ctx context.Context, root *cascade.Node) (cascade.Report, error) {
	report, err := s.deleter.Delete(ctx, root)
	if err != nil {
		log.Errorf("delete %s stopped after removing %d rows: %s", root.Ref, len(report.Removed), err)
		return report, err
	}
	log.Debugf("%s deleted, %d rows removed", root.Ref, len(report.Removed))
	return report, nil
}

func (s *Service) checkWorkout(ctx context.Context, entity string, id, workoutID int64) error {
	if _, err := s.store.GetWorkout(ctx, workoutID); err != nil {
		if models.IsNotFound(err) {
			return models.ValidationError("%s %d: workout %d does not exist", entity, id, workoutID)
		}
		return err
	}
	return nil
}

func (s *Service) checkExercise(ctx context.Context, entity string, id int64, exerciseID int) error {
	if _, err := s.store.GetExercise(ctx, exerciseID); err != nil {
		if models.IsNotFound(err) {
			return models.ValidationError("%s %d: exercise %d does not exist", entity, id, exerciseID)
		}
		return err
	}
	return nil
}

// checkRouteID rejects a body whose id differs from the route id. A missing
// body id counts as a mismatch.
func checkRouteID(entity string, routeID, bodyID int64) error {
	if bodyID != routeID {
		return models.ValidationError("route id %d does not match %s id %d", routeID, entity, bodyID)
	}
	return nil
}
