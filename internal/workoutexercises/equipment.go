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

func (s *Service) ListEquipment(ctx context.Context) (_ []models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	equipment, err := s.store.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return equipment, nil
}

func (s *Service) GetEquipmentBySetID(ctx context.Context, setID int64) (_ []models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.by-set")
	span.SetAttributes(attribute.Int64("set-id", setID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.ListEquipmentBySet(ctx, setID)
}

// CreateEquipment stores the equipment even when its set does not exist (yet),
// that case is only logged.
func (s *Service) CreateEquipment(ctx context.Context, e models.Equipment) (_ *models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.create")
	span.SetAttributes(attribute.Int64("id", e.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.store.GetEquipment(ctx, e.ID); err == nil {
		return nil, models.AlreadyExistsError("equipment", e.ID)
	} else if !models.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.store.GetSet(ctx, e.SetID); err != nil {
		if !models.IsNotFound(err) {
			return nil, err
		}
		log.Warnf("equipment %d: set %d does not exist, storing it anyway", e.ID, e.SetID)
		span.SetAttributes(attribute.Bool("orphan", true))
	}

	if err := s.store.AddEquipment(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, e models.Equipment) (_ *models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.update")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkRouteID("equipment", id, e.ID); err != nil {
		return nil, err
	}
	e.ID = id

	if _, err := s.store.GetEquipment(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.store.GetSet(ctx, e.SetID); err != nil {
		if models.IsNotFound(err) {
			return nil, models.ValidationError("equipment %d: set %d does not exist", id, e.SetID)
		}
		return nil, err
	}

	if err := s.store.UpdateEquipment(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) (_ cascade.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	root, err := s.deleter.ResolveEquipment(ctx, id)
	if err != nil {
		return cascade.Report{}, err
	}
	return s.delete(ctx, root)
}
