package timetable

import "fmt"

// MissingFareError is a load failure: a fare rule references a fare id the
// attributes table never declared. The feed is assumed internally
// consistent, so this marks a corrupt or incompatible feed.
type MissingFareError struct {
	FareID string
}

func (e *MissingFareError) Error() string {
	return fmt.Sprintf("fare rule references unknown fare id %q", e.FareID)
}

// UnknownServiceError is a load failure: a trip references a service id
// absent from the calendar table.
type UnknownServiceError struct {
	TripID    string
	ServiceID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("trip %q references unknown service id %q", e.TripID, e.ServiceID)
}

// UnknownStationError is a query failure carrying the original unresolved
// input for diagnostics. It is the only error expected in normal
// interactive use.
type UnknownStationError struct {
	Name string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown station %q", e.Name)
}

// FareNotFoundError is a query-time "no fare data" outcome: the feed does
// not guarantee every zone pair has a declared fare.
type FareNotFoundError struct {
	Origin      int
	Destination int
}

func (e *FareNotFoundError) Error() string {
	return fmt.Sprintf("no fare declared between zones %d and %d", e.Origin, e.Destination)
}
