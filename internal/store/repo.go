package store

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema holds the DDL of all tables used by Repo.
//
//go:embed schema.sql
var Schema string

// Repo is the postgres implementation of the persistence gateway. Every method
// runs as a single statement, committed on its own.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

// writeErr translates constraint violations into model errors.
func writeErr(err error, entity string, id any) error {
	switch {
	case pkg.IsUniqueViolationError(err):
		return models.AlreadyExistsError(entity, id)
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%s %v references a missing or still referenced row: %w", entity, id, models.ErrValidation)
	}
	return err
}

func readErr(err error, entity string, id any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.NotFoundError(entity, id)
	}
	return err
}

func timeOfDayParam(t *models.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

func timeOfDayValue(t pgtype.Time) *models.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := models.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
	return &tod
}

func dateParam(d *models.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func dateValue(d pgtype.Date) *models.Date {
	if !d.Valid {
		return nil
	}
	date := models.DateOf(d.Time)
	return &date
}
