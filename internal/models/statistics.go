package models

// WeeklyStatistics is a snapshot of what all users did with one exercise
// over the seven days ending at the computation date.
type WeeklyStatistics struct {
	ID                       int64   `json:"id"`
	ExerciseID               int     `json:"exerciseId"`
	WeekStart                Date    `json:"weekStart"`
	WorkoutExercisesNum      int     `json:"workoutExercisesNum"`
	SetsNum                  int     `json:"setsNum"`
	UsersHaveDoneNum         int     `json:"usersHaveDoneNum"`
	TotalEffort              int64   `json:"totalEffort"`
	RepsNum                  int64   `json:"repsNum"`
	RestTimeBetweenSetsSec   int64   `json:"restTimeBetweenSetsSec"`
	RestTimeAfterExerciseSec int64   `json:"restTimeAfterExerciseSec"`
	WeightLifted             float64 `json:"weightLifted"`
}
