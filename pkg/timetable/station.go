package timetable

// Station is a physical stop on the line. Stations are owned by the Schedule
// and shared by pointer; two raw names that sanitize to the same key resolve
// to the same Station.
type Station struct {
	// Name is the title-cased display form.
	Name string
	// Zone is the fare-computation grouping the station belongs to.
	Zone int
}

func (s *Station) String() string {
	return s.Name
}
