package timetable

import (
	"fmt"
	"time"
)

// Trip is a computed query result: one train's journey between the two
// queried stations.
type Trip struct {
	Departure TimeOfDay
	Arrival   TimeOfDay
	Duration  time.Duration
	Train     *Train
}

func (t Trip) String() string {
	return fmt.Sprintf("[%s %s] Departs: %s, Arrives: %s (%s)",
		t.Train.Kind, t.Train.Name, t.Departure, t.Arrival, t.Duration)
}
