// Package converter shifts a wall-clock time of day between fixed-offset zones
package converter

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeOfDay is returned when a component is out of range
var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is an hour, minute and second with no associated date
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

// NewTimeOfDay builds a TimeOfDay, rejecting hours outside 0-23 and minutes or seconds outside 0-59
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d", ErrInvalidTimeOfDay, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d", ErrInvalidTimeOfDay, minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: second %d", ErrInvalidTimeOfDay, second)
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }
func (t TimeOfDay) Second() int { return t.second }

// String renders the time as HH:MM:SS
func (t TimeOfDay) String() string {
	return Format(t)
}
