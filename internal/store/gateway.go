package store

import (
	"context"

	"github.com/2beens/trainingtracker/internal/models"
)

var (
	_ Gateway = (*Repo)(nil)
	_ Gateway = (*MemRepo)(nil)
)

// Gateway is the full set of persistence operations. Consumers usually depend on
// a narrower interface of their own.
type Gateway interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	AddUser(ctx context.Context, u models.User) error
	UpdateUser(ctx context.Context, u models.User) error
	DeleteUser(ctx context.Context, id int64) error

	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error)
	ListWorkoutsByIDs(ctx context.Context, ids []int64) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	AddWorkout(ctx context.Context, w models.Workout) error
	UpdateWorkout(ctx context.Context, w models.Workout) error
	DeleteWorkout(ctx context.Context, id int64) error

	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
	CountExercises(ctx context.Context) (int, error)
	AddExercise(ctx context.Context, e models.Exercise) error

	ListWorkoutExercises(ctx context.Context) ([]models.WorkoutExercise, error)
	ListWorkoutExercisesByWorkout(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
	ListWorkoutExercisesByExercise(ctx context.Context, exerciseID int) ([]models.WorkoutExercise, error)
	GetWorkoutExercise(ctx context.Context, id int64) (*models.WorkoutExercise, error)
	AddWorkoutExercise(ctx context.Context, we models.WorkoutExercise) error
	UpdateWorkoutExercise(ctx context.Context, we models.WorkoutExercise) error
	DeleteWorkoutExercise(ctx context.Context, key models.WorkoutExerciseKey) error

	GetSet(ctx context.Context, id int64) (*models.Set, error)
	ListSetsByWorkoutExerciseID(ctx context.Context, workoutExerciseID int64) ([]models.Set, error)
	ListSetsByWorkoutExercises(ctx context.Context, keys []models.WorkoutExerciseKey) ([]models.Set, error)
	AddSet(ctx context.Context, s models.Set) error
	UpdateSet(ctx context.Context, s models.Set) error
	DeleteSet(ctx context.Context, id int64) error

	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*models.Equipment, error)
	ListEquipmentBySet(ctx context.Context, setID int64) ([]models.Equipment, error)
	ListEquipmentBySets(ctx context.Context, setIDs []int64) ([]models.Equipment, error)
	AddEquipment(ctx context.Context, e models.Equipment) error
	UpdateEquipment(ctx context.Context, e models.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error

	ListWeeklyStatistics(ctx context.Context) ([]models.WeeklyStatistics, error)
	DeleteWeeklyStatistics(ctx context.Context, exerciseID int, weekStart models.Date) ([]int64, error)
	DeleteAllWeeklyStatistics(ctx context.Context) (int64, error)
	MaxWeeklyStatisticsID(ctx context.Context) (int64, error)
	AddWeeklyStatistics(ctx context.Context, s models.WeeklyStatistics) error
}
