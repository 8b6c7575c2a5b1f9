package timetable

import "time"

// ServiceWindow is one calendar service's validity: a date range and the
// weekdays the service runs on. Shared by every Train referencing the same
// service id.
type ServiceWindow struct {
	Start time.Time
	End   time.Time
	// Days is Monday-first, matching the feed's column order.
	Days [7]bool
}

// Active reports whether the window covers the given instant's date and
// weekday.
func (w *ServiceWindow) Active(at time.Time) bool {
	date := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(w.Start) || date.After(w.End) {
		return false
	}
	return w.Days[mondayIndex(at.Weekday())]
}

// mondayIndex converts time.Weekday (Sunday = 0) to the feed's Monday-first
// indexing.
func mondayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}
