package timetable

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// NextTrips lists every trip from a to b departing at or after the given
// instant, soonest first. The instant is taken to fall on day offset 0 of
// the relevant service day, so departure comparisons use time-of-day only.
// An empty result is a legitimate outcome, not an error.
func (s *Schedule) NextTrips(a StationRef, b StationRef, after time.Time) ([]Trip, error) {
	origin, err := s.resolve(a)
	if err != nil {
		return nil, err
	}
	destination, err := s.resolve(b)
	if err != nil {
		return nil, err
	}

	cutoff := NewTimeOfDay(after.Hour(), after.Minute(), after.Second())

	var trips []Trip
	for _, train := range s.trains {
		if !train.Window.Active(after) {
			continue
		}

		stopAtOrigin, serves := train.Stops[origin]
		if !serves {
			continue
		}
		stopAtDestination, serves := train.Stops[destination]
		if !serves {
			continue
		}

		// Sequence order is authoritative for direction. Clock comparisons
		// break across midnight.
		if stopAtOrigin.Sequence > stopAtDestination.Sequence {
			continue
		}

		// Already departed.
		if stopAtOrigin.Departure.Before(cutoff) {
			continue
		}

		trips = append(trips, Trip{
			Departure: stopAtOrigin.Departure,
			Arrival:   stopAtDestination.Arrival,
			Duration:  TripDuration(stopAtOrigin, stopAtDestination),
			Train:     train,
		})
	}

	slices.SortFunc(trips, func(a, b Trip) int {
		if a.Departure != b.Departure {
			return int(a.Departure) - int(b.Departure)
		}
		return strings.Compare(a.Train.ID, b.Train.ID)
	})

	return trips, nil
}
