package timetable

// Stop is a single train's visit to one station. Day offsets count midnight
// crossings relative to the train's nominal service day.
type Stop struct {
	Arrival      TimeOfDay
	ArrivalDay   int
	Departure    TimeOfDay
	DepartureDay int

	// Sequence strictly increases along the train's physical path and is
	// the authoritative ordering for direction checks. Wall-clock
	// comparisons are ambiguous across midnight.
	Sequence int
}
