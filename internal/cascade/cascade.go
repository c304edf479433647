package cascade

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/trainingtracker/internal/models"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Kind string

const (
	KindUser            Kind = "user"
	KindWorkout         Kind = "workout"
	KindWorkoutExercise Kind = "workout_exercise"
	KindSet             Kind = "set"
	KindEquipment       Kind = "equipment"
)

// Ref identifies a row. ExerciseID is only set for workout exercises.
type Ref struct {
	Kind       Kind  `json:"kind"`
	ID         int64 `json:"id"`
	ExerciseID int   `json:"exerciseId,omitempty"`
}

func (r Ref) String() string {
	if r.Kind == KindWorkoutExercise {
		return fmt.Sprintf("%s %d (exercise %d)", r.Kind, r.ID, r.ExerciseID)
	}
	return fmt.Sprintf("%s %d", r.Kind, r.ID)
}

// Node is a row together with the rows that depend on it.
type Node struct {
	Ref      Ref
	Children []*Node
}

// Size is the number of rows in the subtree, the node included.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

type Report struct {
	Removed []Ref
	Skipped []Ref
}

func (r Report) Count(kind Kind) int {
	n := 0
	for _, ref := range r.Removed {
		if ref.Kind == kind {
			n++
		}
	}
	return n
}

type Store interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	GetWorkoutExercise(ctx context.Context, id int64) (*models.WorkoutExercise, error)
	GetSet(ctx context.Context, id int64) (*models.Set, error)
	GetEquipment(ctx context.Context, id int64) (*models.Equipment, error)

	ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error)
	ListWorkoutExercisesByWorkout(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
	ListSetsByWorkoutExerciseID(ctx context.Context, workoutExerciseID int64) ([]models.Set, error)
	ListEquipmentBySet(ctx context.Context, setID int64) ([]models.Equipment, error)

	DeleteUser(ctx context.Context, id int64) error
	DeleteWorkout(ctx context.Context, id int64) error
	DeleteWorkoutExercise(ctx context.Context, key models.WorkoutExerciseKey) error
	DeleteSet(ctx context.Context, id int64) error
	DeleteEquipment(ctx context.Context, id int64) error
}

// Listener is called once for every row a Delete removed.
type Listener func(ctx context.Context, ref Ref)

// Deleter removes a row together with everything that depends on it, children
// first. There is no transaction around it: a failure part way leaves the rows
// removed so far removed.
type Deleter struct {
	store     Store
	listeners []Listener
}

func NewDeleter(store Store) *Deleter {
	return &Deleter{
		store: store,
	}
}

// OnRemoved registers a listener. Not safe to call concurrently with Delete.
func (d *Deleter) OnRemoved(listener Listener) {
	d.listeners = append(d.listeners, listener)
}

func (d *Deleter) ResolveUser(ctx context.Context, id int64) (_ *Node, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cascade.resolve.user")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := d.store.GetUser(ctx, id); err != nil {
		return nil, err
	}
	workouts, err := d.store.ListWorkoutsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list workouts of user %d: %w", id, err)
	}

	node := &Node{Ref: Ref{Kind: KindUser, ID: id}}
	for _, w := range workouts {
		child, err := d.resolveWorkout(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (d *Deleter) ResolveWorkout(ctx context.Context, id int64) (_ *Node, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cascade.resolve.workout")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := d.store.GetWorkout(ctx, id); err != nil {
		return nil, err
	}
	return d.resolveWorkout(ctx, id)
}

func (d *Deleter) resolveWorkout(ctx context.Context, id int64) (*Node, error) {
	workoutExercises, err := d.store.ListWorkoutExercisesByWorkout(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises of workout %d: %w", id, err)
	}

	node := &Node{Ref: Ref{Kind: KindWorkout, ID: id}}
	for _, we := range workoutExercises {
		child, err := d.resolveWorkoutExercise(ctx, we.Key())
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (d *Deleter) ResolveWorkoutExercise(ctx context.Context, id int64) (_ *Node, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cascade.resolve.workout-exercise")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	we, err := d.store.GetWorkoutExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.resolveWorkoutExercise(ctx, we.Key())
}

func (d *Deleter) resolveWorkoutExercise(ctx context.Context, key models.WorkoutExerciseKey) (*Node, error) {
	sets, err := d.store.ListSetsByWorkoutExerciseID(ctx, key.ID)
	if err != nil {
		return nil, fmt.Errorf("list sets of workout exercise %d: %w", key.ID, err)
	}

	node := &Node{Ref: Ref{Kind: KindWorkoutExercise, ID: key.ID, ExerciseID: key.ExerciseID}}
	for _, s := range sets {
		if s.WorkoutExerciseKey() != key {
			continue
		}
		child, err := d.resolveSet(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (d *Deleter) ResolveSet(ctx context.Context, id int64) (_ *Node, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cascade.resolve.set")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := d.store.GetSet(ctx, id); err != nil {
		return nil, err
	}
	return d.resolveSet(ctx, id)
}

func (d *Deleter) resolveSet(ctx context.Context, id int64) (*Node, error) {
	equipment, err := d.store.ListEquipmentBySet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list equipment of set %d: %w", id, err)
	}

	node := &Node{Ref: Ref{Kind: KindSet, ID: id}}
	for _, e := range equipment {
		node.Children = append(node.Children, &Node{Ref: Ref{Kind: KindEquipment, ID: e.ID}})
	}
	return node, nil
}

func (d *Deleter) ResolveEquipment(ctx context.Context, id int64) (*Node, error) {
	if _, err := d.store.GetEquipment(ctx, id); err != nil {
		return nil, err
	}
	return &Node{Ref: Ref{Kind: KindEquipment, ID: id}}, nil
}

// Delete removes the tree rooted at root, leaves first. Rows already gone are
// reported as skipped. Any other failure stops the walk, the returned report
// then holds what was removed before it.
func (d *Deleter) Delete(ctx context.Context, root *Node) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cascade.delete")
	span.SetAttributes(
		attribute.String("root", root.Ref.String()),
		attribute.Int("size", root.Size()),
	)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	report := Report{}
	err = d.delete(ctx, root, &report)
	span.SetAttributes(
		attribute.Int("removed", len(report.Removed)),
		attribute.Int("skipped", len(report.Skipped)),
	)
	return report, err
}

func (d *Deleter) delete(ctx context.Context, node *Node, report *Report) error {
	for _, child := range node.Children {
		if err := d.delete(ctx, child, report); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete %s: %w", node.Ref, err)
	}

	err := d.deleteRow(ctx, node.Ref)
	if errors.Is(err, models.ErrNotFound) {
		log.Debugf("cascade: %s already gone, skipping", node.Ref)
		report.Skipped = append(report.Skipped, node.Ref)
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", node.Ref, err)
	}

	report.Removed = append(report.Removed, node.Ref)
	for _, listener := range d.listeners {
		listener(ctx, node.Ref)
	}
	return nil
}

func (d *Deleter) deleteRow(ctx context.Context, ref Ref) error {
	switch ref.Kind {
	case KindUser:
		return d.store.DeleteUser(ctx, ref.ID)
	case KindWorkout:
		return d.store.DeleteWorkout(ctx, ref.ID)
	case KindWorkoutExercise:
		return d.store.DeleteWorkoutExercise(ctx, models.WorkoutExerciseKey{ExerciseID: ref.ExerciseID, ID: ref.ID})
	case KindSet:
		return d.store.DeleteSet(ctx, ref.ID)
	case KindEquipment:
		return d.store.DeleteEquipment(ctx, ref.ID)
	default:
		return fmt.Errorf("unknown row kind %q", ref.Kind)
	}
}
