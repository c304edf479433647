package users

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
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	AddUser(ctx context.Context, u models.User) error
	UpdateUser(ctx context.Context, u models.User) error
	ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error)
}

type Deleter interface {
	ResolveUser(ctx context.Context, id int64) (*cascade.Node, error)
	Delete(ctx context.Context, root *cascade.Node) (cascade.Report, error)
}

// HashFunc turns a plain text password into the hash that gets stored.
type HashFunc func(password string) (string, error)

type Service struct {
	store   Store
	deleter Deleter
	hash    HashFunc
}

func NewService(store Store, deleter Deleter, hash HashFunc) *Service {
	return &Service{
		store:   store,
		deleter: deleter,
		hash:    hash,
	}
}

func (s *Service) ListUsers(ctx context.Context) (_ []models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (_ *models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}

func (s *Service) AddUser(ctx context.Context, u models.User) (_ *models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.add")
	span.SetAttributes(attribute.Int64("id", u.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if u.Password == "" {
		return nil, models.ValidationError("password is required")
	}
	if u.PasswordHash, err = s.hash(u.Password); err != nil {
		return nil, fmt.Errorf("hash password of user %d: %w", u.ID, err)
	}

	if err := s.store.AddUser(ctx, u); err != nil {
		return nil, err
	}

	log.Debugf("user %d added", u.ID)
	added := u.Sanitized()
	return &added, nil
}

// UpdateUser replaces the user's fields. The stored password hash is kept unless
// a new password is supplied.
func (s *Service) UpdateUser(ctx context.Context, id int64, u models.User) (_ *models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.update")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if id != u.ID {
		return nil, models.ValidationError("route id %d does not match user id %d", id, u.ID)
	}

	existing, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.Password == "" {
		u.PasswordHash = existing.PasswordHash
	} else if u.PasswordHash, err = s.hash(u.Password); err != nil {
		return nil, fmt.Errorf("hash password of user %d: %w", u.ID, err)
	}

	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	updated := u.Sanitized()
	return &updated, nil
}

// DeleteUser removes the user with all of its workouts and their contents.
func (s *Service) DeleteUser(ctx context.Context, id int64) (_ cascade.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.delete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	root, err := s.deleter.ResolveUser(ctx, id)
	if err != nil {
		return cascade.Report{}, err
	}

	report, err := s.deleter.Delete(ctx, root)
	if err != nil {
		log.Errorf("delete user %d stopped after removing %d rows: %s", id, len(report.Removed), err)
		return report, err
	}

	log.Debugf("user %d deleted, %d rows removed", id, len(report.Removed))
	return report, nil
}

func (s *Service) GetWorkoutsByUserID(ctx context.Context, userID int64) (_ []models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.workouts")
	span.SetAttributes(attribute.Int64("user-id", userID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListWorkoutsByUser(ctx, userID)
}
