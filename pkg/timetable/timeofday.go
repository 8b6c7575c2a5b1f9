package timetable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time as seconds since midnight of the service
// day it belongs to.
type TimeOfDay int

// clockEpoch anchors day offsets onto one absolute timeline for duration
// arithmetic. The actual date is arbitrary.
var clockEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return int(t) / 60 % 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) onDay(day int) time.Time {
	return clockEpoch.AddDate(0, 0, day).Add(time.Duration(t) * time.Second)
}

// ParseClock resolves a feed "HH:MM:SS" string into a day offset and a wall
// clock time. Feed hours legitimately exceed 23 for trains running past
// midnight relative to their service day, so 24:30:00 becomes day 1,
// 00:30:00.
func ParseClock(raw string) (int, TimeOfDay, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("malformed clock value %q", raw)
	}

	var fields [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, fmt.Errorf("malformed clock value %q: %w", raw, err)
		}
		fields[i] = value
	}

	day := fields[0] / 24
	return day, NewTimeOfDay(fields[0]%24, fields[1], fields[2]), nil
}

// TripDuration is the elapsed time between leaving one stop and arriving at
// another, projected onto the absolute timeline so post-midnight arrivals
// still yield a positive duration.
func TripDuration(from Stop, to Stop) time.Duration {
	departure := from.Departure.onDay(from.DepartureDay)
	arrival := to.Arrival.onDay(to.ArrivalDay)
	return arrival.Sub(departure)
}
