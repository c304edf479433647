package store

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/2beens/trainingtracker/internal/models"
)

type statsKey struct {
	exerciseID int
	id         int64
}

// MemRepo is an in-memory gateway used in tests. It enforces the same keys and
// foreign keys as the postgres schema, counts reads per method and can be told
// to fail chosen methods.
type MemRepo struct {
	mutex sync.Mutex

	users            map[int64]models.User
	workouts         map[int64]models.Workout
	exercises        map[int]models.Exercise
	workoutExercises map[models.WorkoutExerciseKey]models.WorkoutExercise
	sets             map[int64]models.Set
	equipment        map[int64]models.Equipment
	statistics       map[statsKey]models.WeeklyStatistics

	reads     map[string]int
	failures  map[string]error
	deleteLog []string
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		users:            make(map[int64]models.User),
		workouts:         make(map[int64]models.Workout),
		exercises:        make(map[int]models.Exercise),
		workoutExercises: make(map[models.WorkoutExerciseKey]models.WorkoutExercise),
		sets:             make(map[int64]models.Set),
		equipment:        make(map[int64]models.Equipment),
		statistics:       make(map[statsKey]models.WeeklyStatistics),
		reads:            make(map[string]int),
		failures:         make(map[string]error),
	}
}

// FailOn makes every following call of method return err. A nil err clears it.
func (m *MemRepo) FailOn(method string, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err == nil {
		delete(m.failures, method)
		return
	}
	m.failures[method] = err
}

func (m *MemRepo) Reads(method string) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.reads[method]
}

func (m *MemRepo) TotalReads() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	total := 0
	for _, n := range m.reads {
		total += n
	}
	return total
}

func (m *MemRepo) ResetReads() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.reads = make(map[string]int)
}

// DeleteLog lists removed rows in removal order, as "kind:id".
func (m *MemRepo) DeleteLog() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return slices.Clone(m.deleteLog)
}

func (m *MemRepo) read(method string) error {
	m.reads[method]++
	return m.failures[method]
}

func (m *MemRepo) write(method string) error {
	return m.failures[method]
}

func (m *MemRepo) logDelete(kind string, id any) {
	m.deleteLog = append(m.deleteLog, fmt.Sprintf("%s:%v", kind, id))
}

func sortedValues[K comparable, V any](src map[K]V, keep func(V) bool, compare func(a, b V) int) []V {
	out := make([]V, 0, len(src))
	for v := range maps.Values(src) {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, compare)
	return out
}

func referenced(kind string, id any) error {
	return fmt.Errorf("%s %v is still referenced: %w", kind, id, models.ErrValidation)
}

func missingParent(kind string, id any) error {
	return fmt.Errorf("%s %v references a missing row: %w", kind, id, models.ErrValidation)
}

// users

func (m *MemRepo) ListUsers(_ context.Context) ([]models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListUsers"); err != nil {
		return nil, err
	}
	return sortedValues(m.users, nil, func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) }), nil
}

func (m *MemRepo) GetUser(_ context.Context, id int64) (*models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("GetUser"); err != nil {
		return nil, err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, models.NotFoundError("user", id)
	}
	return &u, nil
}

func (m *MemRepo) AddUser(_ context.Context, u models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddUser"); err != nil {
		return err
	}
	if _, ok := m.users[u.ID]; ok {
		return models.AlreadyExistsError("user", u.ID)
	}
	m.users[u.ID] = u
	return nil
}

func (m *MemRepo) UpdateUser(_ context.Context, u models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("UpdateUser"); err != nil {
		return err
	}
	if _, ok := m.users[u.ID]; !ok {
		return models.NotFoundError("user", u.ID)
	}
	m.users[u.ID] = u
	return nil
}

func (m *MemRepo) DeleteUser(_ context.Context, id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteUser"); err != nil {
		return err
	}
	if _, ok := m.users[id]; !ok {
		return models.NotFoundError("user", id)
	}
	for _, w := range m.workouts {
		if w.UserID == id {
			return referenced("user", id)
		}
	}
	delete(m.users, id)
	m.logDelete("user", id)
	return nil
}

// workouts

func compareWorkouts(a, b models.Workout) int { return cmp.Compare(a.ID, b.ID) }

func (m *MemRepo) ListWorkouts(_ context.Context) ([]models.Workout, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWorkouts"); err != nil {
		return nil, err
	}
	return sortedValues(m.workouts, nil, compareWorkouts), nil
}

func (m *MemRepo) ListWorkoutsByUser(_ context.Context, userID int64) ([]models.Workout, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWorkoutsByUser"); err != nil {
		return nil, err
	}
	return sortedValues(m.workouts, func(w models.Workout) bool { return w.UserID == userID }, compareWorkouts), nil
}

func (m *MemRepo) ListWorkoutsByIDs(_ context.Context, ids []int64) ([]models.Workout, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWorkoutsByIDs"); err != nil {
		return nil, err
	}
	return sortedValues(m.workouts, func(w models.Workout) bool { return slices.Contains(ids, w.ID) }, compareWorkouts), nil
}

func (m *MemRepo) GetWorkout(_ context.Context, id int64) (*models.Workout, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("GetWorkout"); err != nil {
		return nil, err
	}
	w, ok := m.workouts[id]
	if !ok {
		return nil, models.NotFoundError("workout", id)
	}
	return &w, nil
}

func (m *MemRepo) AddWorkout(_ context.Context, w models.Workout) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddWorkout"); err != nil {
		return err
	}
	if _, ok := m.workouts[w.ID]; ok {
		return models.AlreadyExistsError("workout", w.ID)
	}
	if _, ok := m.users[w.UserID]; !ok {
		return missingParent("workout", w.ID)
	}
	m.workouts[w.ID] = w
	return nil
}

func (m *MemRepo) UpdateWorkout(_ context.Context, w models.Workout) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("UpdateWorkout"); err != nil {
		return err
	}
	if _, ok := m.workouts[w.ID]; !ok {
		return models.NotFoundError("workout", w.ID)
	}
	if _, ok := m.users[w.UserID]; !ok {
		return missingParent("workout", w.ID)
	}
	m.workouts[w.ID] = w
	return nil
}

func (m *MemRepo) DeleteWorkout(_ context.Context, id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteWorkout"); err != nil {
		return err
	}
	if _, ok := m.workouts[id]; !ok {
		return models.NotFoundError("workout", id)
	}
	for _, we := range m.workoutExercises {
		if we.WorkoutID == id {
			return referenced("workout", id)
		}
	}
	delete(m.workouts, id)
	m.logDelete("workout", id)
	return nil
}

// exercise catalog

func (m *MemRepo) ListExercises(_ context.Context) ([]models.Exercise, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListExercises"); err != nil {
		return nil, err
	}
	return sortedValues(m.exercises, nil, func(a, b models.Exercise) int { return cmp.Compare(a.ID, b.ID) }), nil
}

func (m *MemRepo) GetExercise(_ context.Context, id int) (*models.Exercise, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("GetExercise"); err != nil {
		return nil, err
	}
	e, ok := m.exercises[id]
	if !ok {
		return nil, models.NotFoundError("exercise", id)
	}
	return &e, nil
}

func (m *MemRepo) CountExercises(_ context.Context) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("CountExercises"); err != nil {
		return -1, err
	}
	return len(m.exercises), nil
}

func (m *MemRepo) AddExercise(_ context.Context, e models.Exercise) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddExercise"); err != nil {
		return err
	}
	if _, ok := m.exercises[e.ID]; ok {
		return models.AlreadyExistsError("exercise", e.ID)
	}
	m.exercises[e.ID] = e
	return nil
}

// workout exercises

func compareWorkoutExercises(a, b models.WorkoutExercise) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.ExerciseID, b.ExerciseID)
}

func (m *MemRepo) ListWorkoutExercises(_ context.Context) ([]models.WorkoutExercise, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWorkoutExercises"); err != nil {
		return nil, err
	}
	return sortedValues(m.workoutExercises, nil, compareWorkoutExercises), nil
}

func (m *MemRepo) ListWorkoutExercisesByWorkout(_ context.Context, workoutID int64) ([]models.WorkoutExercise, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWorkoutExercisesByWorkout"); err != nil {
		return nil, err
	}
	return sortedValues(m.workoutExercises, func(we models.WorkoutExercise) bool {
		return we.WorkoutID == workoutID
	}, compareWorkoutExercises), nil
}

func (m *MemRepo) ListWorkoutExercisesByExercise(_ context.Context, exerciseID int) ([]models.WorkoutExercise, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWorkoutExercisesByExercise"); err != nil {
		return nil, err
	}
	return sortedValues(m.workoutExercises, func(we models.WorkoutExercise) bool {
		return we.ExerciseID == exerciseID
	}, compareWorkoutExercises), nil
}

func (m *MemRepo) GetWorkoutExercise(_ context.Context, id int64) (*models.WorkoutExercise, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("GetWorkoutExercise"); err != nil {
		return nil, err
	}
	matching := sortedValues(m.workoutExercises, func(we models.WorkoutExercise) bool {
		return we.ID == id
	}, compareWorkoutExercises)
	if len(matching) == 0 {
		return nil, models.NotFoundError("workout exercise", id)
	}
	return &matching[0], nil
}

func (m *MemRepo) AddWorkoutExercise(_ context.Context, we models.WorkoutExercise) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddWorkoutExercise"); err != nil {
		return err
	}
	if _, ok := m.workoutExercises[we.Key()]; ok {
		return models.AlreadyExistsError("workout exercise", we.ID)
	}
	if err := m.checkWorkoutExerciseParents(we); err != nil {
		return err
	}
	m.workoutExercises[we.Key()] = we
	return nil
}

func (m *MemRepo) checkWorkoutExerciseParents(we models.WorkoutExercise) error {
	if _, ok := m.workouts[we.WorkoutID]; !ok {
		return missingParent("workout exercise", we.ID)
	}
	if _, ok := m.exercises[we.ExerciseID]; !ok {
		return missingParent("workout exercise", we.ID)
	}
	return nil
}

func (m *MemRepo) UpdateWorkoutExercise(_ context.Context, we models.WorkoutExercise) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("UpdateWorkoutExercise"); err != nil {
		return err
	}

	var existing []models.WorkoutExerciseKey
	for key := range m.workoutExercises {
		if key.ID == we.ID {
			existing = append(existing, key)
		}
	}
	if len(existing) == 0 {
		return models.NotFoundError("workout exercise", we.ID)
	}
	if err := m.checkWorkoutExerciseParents(we); err != nil {
		return err
	}
	for _, key := range existing {
		if key.ExerciseID == we.ExerciseID {
			continue
		}
		// moving to another exercise changes the key sets point at
		for _, s := range m.sets {
			if s.WorkoutExerciseKey() == key {
				return referenced("workout exercise", we.ID)
			}
		}
	}
	for _, key := range existing {
		delete(m.workoutExercises, key)
	}
	m.workoutExercises[we.Key()] = we
	return nil
}

func (m *MemRepo) DeleteWorkoutExercise(_ context.Context, key models.WorkoutExerciseKey) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteWorkoutExercise"); err != nil {
		return err
	}
	if _, ok := m.workoutExercises[key]; !ok {
		return models.NotFoundError("workout exercise", key.ID)
	}
	for _, s := range m.sets {
		if s.WorkoutExerciseKey() == key {
			return referenced("workout exercise", key.ID)
		}
	}
	delete(m.workoutExercises, key)
	m.logDelete("workout_exercise", key.ID)
	return nil
}

// sets

func compareSets(a, b models.Set) int { return cmp.Compare(a.ID, b.ID) }

func (m *MemRepo) GetSet(_ context.Context, id int64) (*models.Set, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("GetSet"); err != nil {
		return nil, err
	}
	s, ok := m.sets[id]
	if !ok {
		return nil, models.NotFoundError("set", id)
	}
	return &s, nil
}

func (m *MemRepo) ListSetsByWorkoutExerciseID(_ context.Context, workoutExerciseID int64) ([]models.Set, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListSetsByWorkoutExerciseID"); err != nil {
		return nil, err
	}
	return sortedValues(m.sets, func(s models.Set) bool {
		return s.WorkoutExerciseID == workoutExerciseID
	}, compareSets), nil
}

func (m *MemRepo) ListSetsByWorkoutExercises(_ context.Context, keys []models.WorkoutExerciseKey) ([]models.Set, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListSetsByWorkoutExercises"); err != nil {
		return nil, err
	}
	return sortedValues(m.sets, func(s models.Set) bool {
		return slices.Contains(keys, s.WorkoutExerciseKey())
	}, compareSets), nil
}

func (m *MemRepo) AddSet(_ context.Context, s models.Set) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddSet"); err != nil {
		return err
	}
	if _, ok := m.sets[s.ID]; ok {
		return models.AlreadyExistsError("set", s.ID)
	}
	if _, ok := m.workoutExercises[s.WorkoutExerciseKey()]; !ok {
		return missingParent("set", s.ID)
	}
	m.sets[s.ID] = s
	return nil
}

func (m *MemRepo) UpdateSet(_ context.Context, s models.Set) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("UpdateSet"); err != nil {
		return err
	}
	if _, ok := m.sets[s.ID]; !ok {
		return models.NotFoundError("set", s.ID)
	}
	if _, ok := m.workoutExercises[s.WorkoutExerciseKey()]; !ok {
		return missingParent("set", s.ID)
	}
	m.sets[s.ID] = s
	return nil
}

// DeleteSet leaves equipment rows alone, equipment.set_id carries no constraint.
func (m *MemRepo) DeleteSet(_ context.Context, id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteSet"); err != nil {
		return err
	}
	if _, ok := m.sets[id]; !ok {
		return models.NotFoundError("set", id)
	}
	delete(m.sets, id)
	m.logDelete("set", id)
	return nil
}

// equipment

func compareEquipment(a, b models.Equipment) int { return cmp.Compare(a.ID, b.ID) }

func (m *MemRepo) ListEquipment(_ context.Context) ([]models.Equipment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListEquipment"); err != nil {
		return nil, err
	}
	return sortedValues(m.equipment, nil, compareEquipment), nil
}

func (m *MemRepo) GetEquipment(_ context.Context, id int64) (*models.Equipment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("GetEquipment"); err != nil {
		return nil, err
	}
	e, ok := m.equipment[id]
	if !ok {
		return nil, models.NotFoundError("equipment", id)
	}
	return &e, nil
}

func (m *MemRepo) ListEquipmentBySet(_ context.Context, setID int64) ([]models.Equipment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListEquipmentBySet"); err != nil {
		return nil, err
	}
	return sortedValues(m.equipment, func(e models.Equipment) bool { return e.SetID == setID }, compareEquipment), nil
}

func (m *MemRepo) ListEquipmentBySets(_ context.Context, setIDs []int64) ([]models.Equipment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListEquipmentBySets"); err != nil {
		return nil, err
	}
	return sortedValues(m.equipment, func(e models.Equipment) bool {
		return slices.Contains(setIDs, e.SetID)
	}, compareEquipment), nil
}

func (m *MemRepo) AddEquipment(_ context.Context, e models.Equipment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddEquipment"); err != nil {
		return err
	}
	if _, ok := m.equipment[e.ID]; ok {
		return models.AlreadyExistsError("equipment", e.ID)
	}
	m.equipment[e.ID] = e
	return nil
}

func (m *MemRepo) UpdateEquipment(_ context.Context, e models.Equipment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("UpdateEquipment"); err != nil {
		return err
	}
	if _, ok := m.equipment[e.ID]; !ok {
		return models.NotFoundError("equipment", e.ID)
	}
	m.equipment[e.ID] = e
	return nil
}

func (m *MemRepo) DeleteEquipment(_ context.Context, id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteEquipment"); err != nil {
		return err
	}
	if _, ok := m.equipment[id]; !ok {
		return models.NotFoundError("equipment", id)
	}
	delete(m.equipment, id)
	m.logDelete("equipment", id)
	return nil
}

// weekly statistics

func (m *MemRepo) ListWeeklyStatistics(_ context.Context) ([]models.WeeklyStatistics, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("ListWeeklyStatistics"); err != nil {
		return nil, err
	}
	return sortedValues(m.statistics, nil, func(a, b models.WeeklyStatistics) int {
		if c := b.WeekStart.Time().Compare(a.WeekStart.Time()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ExerciseID, b.ExerciseID); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}), nil
}

func (m *MemRepo) DeleteWeeklyStatistics(_ context.Context, exerciseID int, weekStart models.Date) ([]int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteWeeklyStatistics"); err != nil {
		return nil, err
	}
	ids := make([]int64, 0)
	for key, s := range m.statistics {
		if s.ExerciseID == exerciseID && s.WeekStart == weekStart {
			ids = append(ids, s.ID)
			delete(m.statistics, key)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *MemRepo) DeleteAllWeeklyStatistics(_ context.Context) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("DeleteAllWeeklyStatistics"); err != nil {
		return 0, err
	}
	n := int64(len(m.statistics))
	clear(m.statistics)
	return n, nil
}

func (m *MemRepo) MaxWeeklyStatisticsID(_ context.Context) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.read("MaxWeeklyStatisticsID"); err != nil {
		return 0, err
	}
	var maxID int64
	for key := range m.statistics {
		maxID = max(maxID, key.id)
	}
	return maxID, nil
}

func (m *MemRepo) AddWeeklyStatistics(_ context.Context, s models.WeeklyStatistics) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.write("AddWeeklyStatistics"); err != nil {
		return err
	}
	key := statsKey{exerciseID: s.ExerciseID, id: s.ID}
	if _, ok := m.statistics[key]; ok {
		return models.AlreadyExistsError("weekly statistics", s.ID)
	}
	if _, ok := m.exercises[s.ExerciseID]; !ok {
		return missingParent("weekly statistics", s.ID)
	}
	m.statistics[key] = s
	return nil
}
