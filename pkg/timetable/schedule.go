// Package timetable builds and queries the in-memory schedule for a single
// commuter rail line. A Schedule is immutable once loaded and safe for
// unsynchronised concurrent reads.
package timetable

import (
	"fmt"
	"strings"

	"github.com/travigo/caltrain/pkg/names"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// StationRef is anything that resolves to a station: a raw user-typed name
// (string) or an already-resolved *Station.
type StationRef interface{}

// Schedule is the loaded, queryable model. Construct one with Load or
// LoadFile; there is no update path.
type Schedule struct {
	// Version is the feed's root directory name, when the archive carried
	// one.
	Version string

	trains      map[string]*Train
	stations    map[string]*Station
	unambiguous map[string]*Station
	fares       FareTable
	names       *names.Table
}

// Station resolves a free-text station name: sanitize, resolve aliases,
// then look up the unambiguous index. The returned error carries the exact
// input string.
func (s *Schedule) Station(raw string) (*Station, error) {
	key := s.names.Resolve(names.Sanitize(raw))

	station, exists := s.unambiguous[key]
	if !exists {
		return nil, &UnknownStationError{Name: raw}
	}
	return station, nil
}

func (s *Schedule) resolve(ref StationRef) (*Station, error) {
	switch value := ref.(type) {
	case *Station:
		return value, nil
	case string:
		return s.Station(value)
	default:
		return nil, fmt.Errorf("cannot resolve station from %T", ref)
	}
}

// Fare returns the price of travelling between two stations. Fare depends
// only on the zone pair, never on the train type. Zone pairs the feed does
// not declare yield a FareNotFoundError.
func (s *Schedule) Fare(a StationRef, b StationRef) (Fare, error) {
	origin, err := s.resolve(a)
	if err != nil {
		return Fare{}, err
	}
	destination, err := s.resolve(b)
	if err != nil {
		return Fare{}, err
	}

	fare, exists := s.fares[ZonePair{Origin: origin.Zone, Destination: destination.Zone}]
	if !exists {
		return Fare{}, &FareNotFoundError{Origin: origin.Zone, Destination: destination.Zone}
	}
	return fare, nil
}

// Trains returns every scheduled run, ordered by trip id.
func (s *Schedule) Trains() []*Train {
	trains := maps.Values(s.trains)
	slices.SortFunc(trains, func(a, b *Train) int {
		return strings.Compare(a.ID, b.ID)
	})
	return trains
}

// Stations returns the display-keyed station map (words joined by
// underscores). The returned map is a copy; the index itself never changes.
func (s *Schedule) Stations() map[string]*Station {
	return maps.Clone(s.stations)
}
