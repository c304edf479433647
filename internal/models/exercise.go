package models

// Exercise is an entry of the read-only exercise catalog.
type Exercise struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	EquipmentRequired bool   `json:"equipmentRequired"`
	DifficultyLevel   string `json:"difficultyLevel"`
}

// WorkoutExercise is an exercise performed within a workout, keyed by (ExerciseID, ID).
type WorkoutExercise struct {
	ID                    int64      `json:"id"`
	ExerciseID            int        `json:"exerciseId"`
	WorkoutID             int64      `json:"workoutId"`
	RestTimeAfterExercise *TimeOfDay `json:"restTimeAfterExercise"`
	SequenceNumber        *int       `json:"sequenceNumber"`
}

type WorkoutExerciseKey struct {
	ExerciseID int
	ID         int64
}

func (we WorkoutExercise) Key() WorkoutExerciseKey {
	return WorkoutExerciseKey{ExerciseID: we.ExerciseID, ID: we.ID}
}

type Set struct {
	ID                int64      `json:"id"`
	ExerciseID        int        `json:"exerciseId"`
	WorkoutExerciseID int64      `json:"workoutExerciseId"`
	SequenceNumber    *int       `json:"sequenceNumber"`
	Effort            *int       `json:"effort"`
	RestTimeAfterSet  *TimeOfDay `json:"restTimeAfterSet"`
	Comments          string     `json:"comments"`
	RepsDone          *int       `json:"repsDone"`
}

func (s Set) WorkoutExerciseKey() WorkoutExerciseKey {
	return WorkoutExerciseKey{ExerciseID: s.ExerciseID, ID: s.WorkoutExerciseID}
}

type Equipment struct {
	ID          int64    `json:"id"`
	SetID       int64    `json:"setId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Weight      *float64 `json:"weight"`
}
