package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `id, name, email, login, password_hash, height, start_weight, current_weight, age, start_date`

func scanUser(row scanner) (models.User, error) {
	var (
		u         models.User
		startDate pgtype.Date
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Login, &u.PasswordHash,
		&u.Height, &u.StartWeight, &u.CurrentWeight, &u.Age, &startDate,
	)
	if err != nil {
		return models.User{}, err
	}
	u.StartDate = dateValue(startDate)
	return u, nil
}

func (r *Repo) ListUsers(ctx context.Context) (_ []models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM app_user ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

func (r *Repo) GetUser(ctx context.Context, id int64) (_ *models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "user", id)
	}
	return &u, nil
}

func (r *Repo) AddUser(ctx context.Context, u models.User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	span.SetAttributes(attribute.Int64("id", u.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO app_user (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		u.ID, u.Name, u.Email, u.Login, u.PasswordHash,
		u.Height, u.StartWeight, u.CurrentWeight, u.Age, dateParam(u.StartDate),
	)
	if err != nil {
		return writeErr(err, "user", u.ID)
	}
	return nil
}

func (r *Repo) UpdateUser(ctx context.Context, u models.User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	span.SetAttributes(attribute.Int64("id", u.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE app_user
		SET name = $2, email = $3, login = $4, password_hash = $5,
			height = $6, start_weight = $7, current_weight = $8, age = $9, start_date = $10
		WHERE id = $1
	`,
		u.ID, u.Name, u.Email, u.Login, u.PasswordHash,
		u.Height, u.StartWeight, u.CurrentWeight, u.Age, dateParam(u.StartDate),
	)
	if err != nil {
		return writeErr(err, "user", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("user", u.ID)
	}
	return nil
}

func (r *Repo) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		return writeErr(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFoundError("user", id)
	}
	return nil
}
