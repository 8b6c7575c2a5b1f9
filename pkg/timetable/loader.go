package timetable

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/caltrain/pkg/gtfs"
	"github.com/travigo/caltrain/pkg/names"
)

// Option configures a load. The defaults are the built-in Caltrain name
// table and a dialect detected from the archive itself.
type Option func(*loader)

func WithDialect(dialect gtfs.Dialect) Option {
	return func(l *loader) {
		l.dialect = dialect
		l.dialectSet = true
	}
}

func WithNames(table *names.Table) Option {
	return func(l *loader) {
		l.names = table
	}
}

type loader struct {
	dialect    gtfs.Dialect
	dialectSet bool
	names      *names.Table
}

// LoadFile reads a GTFS zip archive from disk and builds the schedule.
func LoadFile(path string, opts ...Option) (*Schedule, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(body, opts...)
}

// Load parses a GTFS zip archive held in memory and joins its tables into
// an immutable Schedule. All collections are built fresh on every call; a
// failed load exposes no partial index. Reloading swaps a whole new
// Schedule in place of the old one, never patches it.
func Load(body []byte, opts ...Option) (*Schedule, error) {
	feed, err := gtfs.Parse(body)
	if err != nil {
		return nil, err
	}

	l := loader{names: names.Default()}
	for _, opt := range opts {
		opt(&l)
	}
	if !l.dialectSet {
		l.dialect = gtfs.DetectDialect(feed)
	}

	log.Debug().
		Str("version", feed.Version).
		Str("dialect", l.dialect.Name).
		Msg("Building schedule")

	return l.build(feed)
}

func (l *loader) build(feed *gtfs.Feed) (*Schedule, error) {
	stationPattern, err := regexp.Compile(l.dialect.StationName)
	if err != nil {
		return nil, fmt.Errorf("dialect %s: invalid station pattern: %w", l.dialect.Name, err)
	}

	// 1. Fare prices by fare id.
	fareByID := map[string]Fare{}
	for _, attribute := range feed.FareAttributes {
		fare, err := parseFare(attribute.Price)
		if err != nil {
			return nil, fmt.Errorf("fare %s: %w", attribute.FareID, err)
		}
		fareByID[attribute.FareID] = fare
	}

	// 2. Zone pairs joined onto prices.
	fares := FareTable{}
	for _, rule := range feed.FareRules {
		fare, exists := fareByID[rule.FareID]
		if !exists {
			return nil, &MissingFareError{FareID: rule.FareID}
		}

		origin, err := strconv.Atoi(strings.TrimSpace(rule.OriginID))
		if err != nil {
			return nil, fmt.Errorf("fare %s: malformed origin zone %q: %w", rule.FareID, rule.OriginID, err)
		}
		destination, err := strconv.Atoi(strings.TrimSpace(rule.DestinationID))
		if err != nil {
			return nil, fmt.Errorf("fare %s: malformed destination zone %q: %w", rule.FareID, rule.DestinationID, err)
		}

		fares[ZonePair{
			Origin:      origin - l.dialect.ZoneOffset,
			Destination: destination - l.dialect.ZoneOffset,
		}] = fare
	}

	// 3. Service windows.
	windows := map[string]*ServiceWindow{}
	for _, calendar := range feed.Calendars {
		start, err := time.Parse("20060102", calendar.Start)
		if err != nil {
			return nil, fmt.Errorf("service %s: malformed start date %q: %w", calendar.ServiceID, calendar.Start, err)
		}
		end, err := time.Parse("20060102", calendar.End)
		if err != nil {
			return nil, fmt.Errorf("service %s: malformed end date %q: %w", calendar.ServiceID, calendar.End, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("service %s: window ends %s before it starts %s", calendar.ServiceID, calendar.End, calendar.Start)
		}

		windows[calendar.ServiceID] = &ServiceWindow{
			Start: start,
			End:   end,
			Days:  calendar.DayFlags(),
		}
	}

	// 4. Provisional stations. Feed vendors contribute noise rows, so
	// non-physical entries are skipped rather than failed on. A station's
	// identity is its canonical sanitized name, and feeds list one stop id
	// per platform, so every id sharing a name interns to one Station.
	stationsByID := map[string]*Station{}
	stationsByKey := map[string]*Station{}
	for _, stop := range feed.Stops {
		if !isNumeric(stop.ID) {
			log.Debug().Str("stop", stop.ID).Msg("Skipping non-numeric stop id")
			continue
		}

		match := stationPattern.FindStringSubmatch(stop.Name)
		if match == nil {
			log.Debug().Str("stop", stop.ID).Str("name", stop.Name).Msg("Skipping unrecognised stop name")
			continue
		}

		zone, err := strconv.Atoi(strings.TrimSpace(stop.ZoneID))
		if err != nil {
			return nil, fmt.Errorf("stop %s: malformed zone id %q: %w", stop.ID, stop.ZoneID, err)
		}

		name := titleCase(l.names.Rename(strings.ToUpper(strings.TrimSpace(match[1]))))
		key := names.Sanitize(name)

		station, exists := stationsByKey[key]
		if !exists {
			station = &Station{
				Name: name,
				Zone: zone - l.dialect.ZoneOffset,
			}
			stationsByKey[key] = station
		}
		stationsByID[stop.ID] = station
	}

	// 5. Trains, joined onto their service windows.
	trains := map[string]*Train{}
	for _, trip := range feed.Trips {
		window, exists := windows[trip.ServiceID]
		if !exists {
			return nil, &UnknownServiceError{TripID: trip.ID, ServiceID: trip.ServiceID}
		}

		trains[trip.ID] = &Train{
			ID:        trip.ID,
			Name:      trip.Name,
			Kind:      transitTypeFromRoute(trip.RouteID),
			Direction: directionFromFlag(trip.DirectionID),
			Stops:     map[*Station]Stop{},
			Window:    window,
		}
	}

	// 6. Stop times joined onto trains and stations. Rows for stations
	// filtered out above are skipped.
	lastSequence := map[string]int{}
	for _, stopTime := range feed.StopTimes {
		train, exists := trains[stopTime.TripID]
		if !exists {
			log.Debug().Str("trip", stopTime.TripID).Msg("Skipping stop time for unknown trip")
			continue
		}
		station, exists := stationsByID[stopTime.StopID]
		if !exists {
			continue
		}

		arrivalDay, arrival, err := ParseClock(stopTime.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("trip %s: %w", stopTime.TripID, err)
		}
		departureDay, departure, err := ParseClock(stopTime.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("trip %s: %w", stopTime.TripID, err)
		}

		if previous, seen := lastSequence[stopTime.TripID]; seen && stopTime.StopSequence <= previous {
			log.Warn().
				Str("trip", stopTime.TripID).
				Int("sequence", stopTime.StopSequence).
				Int("previous", previous).
				Msg("Non-monotonic stop sequence; direction checks may be unreliable for this train")
		}
		lastSequence[stopTime.TripID] = stopTime.StopSequence

		train.Stops[station] = Stop{
			Arrival:      arrival,
			ArrivalDay:   arrivalDay,
			Departure:    departure,
			DepartureDay: departureDay,
			Sequence:     stopTime.StopSequence,
		}
	}

	// 7. Station lookup indices: a display key and an unambiguous key used
	// for all name-based queries.
	stations := map[string]*Station{}
	unambiguous := map[string]*Station{}
	for _, station := range stationsByKey {
		key := displayKey(station.Name)
		stations[key] = station
		unambiguous[strings.ReplaceAll(key, "_", "")] = station
	}

	log.Debug().
		Int("stations", len(stations)).
		Int("trains", len(trains)).
		Int("fares", len(fares)).
		Msg("Schedule built")

	return &Schedule{
		Version:     feed.Version,
		trains:      trains,
		stations:    stations,
		unambiguous: unambiguous,
		fares:       fares,
		names:       l.names,
	}, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// displayKey joins a station name's words with underscores, lower-cased:
// "San Francisco" becomes "san_francisco".
func displayKey(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	return strings.ToLower(strings.Join(words, "_"))
}

// titleCase capitalises the first letter of each space-separated word.
func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
