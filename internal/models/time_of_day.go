package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const day = 24 * time.Hour

// TimeOfDay is a wall clock time without a date, kept as the offset from midnight
// with microsecond precision (the precision of a postgres TIME column).
type TimeOfDay time.Duration

// MaxTimeOfDay is the largest representable time of day, 23:59:59.999999.
const MaxTimeOfDay = TimeOfDay(day - time.Microsecond)

var timeOfDayLayouts = []string{
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
}

func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second)
}

// TimeOfDayFromDuration returns the time of day d after midnight. ok is false when
// d is negative or does not fit in a single day.
func TimeOfDayFromDuration(d time.Duration) (_ TimeOfDay, ok bool) {
	if d < 0 || d >= day {
		return 0, false
	}
	return TimeOfDay(d.Truncate(time.Microsecond)), true
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond())
		return TimeOfDay(d.Truncate(time.Microsecond)), nil
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) Hour() int {
	return int(t.Duration() / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int(t.Duration() % time.Hour / time.Minute)
}

// Second returns the seconds component (0-59), not the total.
func (t TimeOfDay) Second() int {
	return int(t.Duration() % time.Minute / time.Second)
}

func (t TimeOfDay) TotalSeconds() int64 {
	return int64(t.Duration() / time.Second)
}

func (t TimeOfDay) Microseconds() int64 {
	return t.Duration().Microseconds()
}

func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if micros := t.Microseconds() % 1e6; micros != 0 {
		s += fmt.Sprintf(".%06d", micros)
	}
	return s
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time of day must be a string: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
