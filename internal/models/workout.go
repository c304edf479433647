package models

type Workout struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	StartTime      *TimeOfDay `json:"startTime"`
	EndTime        *TimeOfDay `json:"endTime"`
	Date           *Date      `json:"date"`
	TotalDuration  *TimeOfDay `json:"totalDuration"`
	SequenceNumber *int       `json:"sequenceNumber"`
}

// WorkoutDuration returns the time spent between start and end. A workout ending
// before it started is clamped to MaxTimeOfDay, and nil is returned when either
// endpoint is missing.
func WorkoutDuration(start, end *TimeOfDay) *TimeOfDay {
	if start == nil || end == nil {
		return nil
	}
	d, ok := TimeOfDayFromDuration(end.Duration() - start.Duration())
	if !ok {
		d = MaxTimeOfDay
	}
	return &d
}
