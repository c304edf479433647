package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const equipmentColumns = `id, set_id, name, description, weight`

func scanEquipment(row scanner) (models.Equipment, error) {
	var e models.Equipment
	err := row.Scan(&e.ID, &e.SetID, &e.Name, &e.Description, &e.Weight)
	return e, err
}

func (r *Repo) ListEquipment(ctx context.Context) (_ []models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEquipment)
}

func (r *Repo) GetEquipment(ctx context.Context, id int64) (_ *models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := scanEquipment(r.db.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "equipment", id)
	}
	return &e, nil
}

func (r *Repo) ListEquipmentBySet(ctx context.Context, setID int64) (_ []models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.list-by-set")
	span.SetAttributes(attribute.Int64("set-id", setID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE set_id = $1 ORDER BY id`, setID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEquipment)
}

func (r *Repo) ListEquipmentBySets(ctx context.Context, setIDs []int64) (_ []models.Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.list-by-sets")
	span.SetAttributes(attribute.Int("set-ids", len(setIDs)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE set_id = ANY($1) ORDER BY id`, setIDs)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEquipment)
}

func (r *Repo) AddEquipment(ctx context.Context, e models.Equipment) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.add")
	span.SetAttributes(attribute.Int64("id", e.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO equipment (`+equipmentColumns+`)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.SetID, e.Name, e.Description, e.Weight)
	if err != nil {
		return writeErr(err, "equipment", e.ID)
	}
	return nil
}

func (r *Repo) UpdateEquipment(ctx context.Context, e models.Equipment) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.update")
	span.SetAttributes(attribute.Int64("id", e.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE equipment
		SET set_id = $2, name = $3, description = $4, weight = $5
		WHERE id = $1
	`, e.ID, e.SetID, e.Name, e.Description, e.Weight)
	if err != nil {
		return writeErr(err, "equipment", e.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("equipment", e.ID)
	}
	return nil
}

func (r *Repo) DeleteEquipment(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.equipment.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return writeErr(err, "equipment", id)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("equipment", id)
	}
	return nil
}
