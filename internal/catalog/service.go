package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultExercises is what an empty catalog gets seeded with.
var DefaultExercises = []models.Exercise{
	{ID: 0, Name: "Push Up", Description: "Chest exercise", EquipmentRequired: false, DifficultyLevel: "Easy"},
	{ID: 1, Name: "Squat", Description: "Leg exercise", EquipmentRequired: false, DifficultyLevel: "Medium"},
	{ID: 2, Name: "Pull Up", Description: "Back exercise", EquipmentRequired: false, DifficultyLevel: "Hard"},
	{ID: 3, Name: "Deadlift", Description: "Full body exercise", EquipmentRequired: true, DifficultyLevel: "Hard"},
	{ID: 4, Name: "Lunge", Description: "Leg exercise", EquipmentRequired: false, DifficultyLevel: "Medium"},
	{ID: 5, Name: "Bench Press", Description: "Chest exercise", EquipmentRequired: true, DifficultyLevel: "Hard"},
	{ID: 6, Name: "Plank", Description: "Core exercise", EquipmentRequired: false, DifficultyLevel: "Easy"},
	{ID: 7, Name: "Bicep Curl", Description: "Arm exercise", EquipmentRequired: true, DifficultyLevel: "Medium"},
	{ID: 8, Name: "Tricep Dip", Description: "Arm exercise", EquipmentRequired: false, DifficultyLevel: "Medium"},
}

type Store interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
	CountExercises(ctx context.Context) (int, error)
	AddExercise(ctx context.Context, e models.Exercise) error
}

// Service exposes the exercise catalog. The catalog is read only over the API.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Seed fills the catalog with exercises when it is empty and returns how many
// were added. A catalog with any rows is left untouched.
func (s *Service) Seed(ctx context.Context, exercises []models.Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.store.CountExercises(ctx)
	if err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		log.Debugf("exercise catalog has %d entries, not seeding", count)
		return 0, nil
	}

	for _, e := range exercises {
		if err := s.store.AddExercise(ctx, e); err != nil {
			return 0, fmt.Errorf("seed exercise %d [%s]: %w", e.ID, e.Name, err)
		}
	}

	span.SetAttributes(attribute.Int("seeded", len(exercises)))
	log.Infof("exercise catalog seeded with %d exercises", len(exercises))
	return len(exercises), nil
}

func (s *Service) ListExercises(ctx context.Context) (_ []models.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := s.store.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *Service) GetExerciseByID(ctx context.Context, id int) (_ *models.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.get")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.GetExercise(ctx, id)
}
