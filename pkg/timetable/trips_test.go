package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2019-08-19 is a Monday inside the reference feed's weekday window.
var mondayEvening = time.Date(2019, time.August, 19, 20, 0, 0, 0, time.UTC)

func TestNextTripsReference(t *testing.T) {
	schedule := loadReference(t)

	trips, err := schedule.NextTrips("sf", "sunnyvale", mondayEvening)
	require.NoError(t, err)
	require.Len(t, trips, 3)

	first := trips[0]
	assert.Equal(t, NewTimeOfDay(20, 30, 0), first.Departure)
	assert.Equal(t, NewTimeOfDay(21, 49, 0), first.Arrival)
	assert.Equal(t, 1*time.Hour+19*time.Minute, first.Duration)
	assert.Equal(t, TransitTypeLocal, first.Train.Kind)
	assert.Equal(t, "192", first.Train.Name)

	// Soonest first: 192, then the limited, then the owl run.
	assert.Equal(t, "194", trips[1].Train.Name)
	assert.Equal(t, "804", trips[2].Train.Name)
}

func TestNextTripsNeverDeparted(t *testing.T) {
	schedule := loadReference(t)

	trips, err := schedule.NextTrips("sf", "sunnyvale", mondayEvening)
	require.NoError(t, err)
	require.NotEmpty(t, trips)

	cutoff := NewTimeOfDay(mondayEvening.Hour(), mondayEvening.Minute(), mondayEvening.Second())
	for i, trip := range trips {
		assert.False(t, trip.Departure.Before(cutoff))
		if i > 0 {
			assert.False(t, trip.Departure.Before(trips[i-1].Departure))
		}
	}
}

func TestNextTripsDirection(t *testing.T) {
	schedule := loadReference(t)

	morning := time.Date(2019, time.August, 19, 7, 0, 0, 0, time.UTC)

	// Northbound: only train 197 runs Sunnyvale -> SF.
	north, err := schedule.NextTrips("sunnyvale", "sf", morning)
	require.NoError(t, err)
	require.Len(t, north, 1)
	assert.Equal(t, "197", north[0].Train.Name)
	assert.Equal(t, DirectionNorthbound, north[0].Train.Direction)

	// The same pair reversed must not pick up the northbound run.
	south, err := schedule.NextTrips("sf", "sunnyvale", morning)
	require.NoError(t, err)
	for _, trip := range south {
		assert.NotEqual(t, "197", trip.Train.Name)
	}
}

func TestNextTripsServiceWindow(t *testing.T) {
	schedule := loadReference(t)

	// 2019-08-24 is a Saturday: only the weekend run qualifies.
	saturday := time.Date(2019, time.August, 24, 9, 0, 0, 0, time.UTC)
	trips, err := schedule.NextTrips("sf", "sunnyvale", saturday)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "802", trips[0].Train.Name)

	// Outside the calendar date range nothing runs at all.
	nextYear := time.Date(2020, time.August, 17, 9, 0, 0, 0, time.UTC)
	trips, err = schedule.NextTrips("sf", "sunnyvale", nextYear)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestNextTripsAcrossMidnight(t *testing.T) {
	schedule := loadReference(t)

	lateNight := time.Date(2019, time.August, 19, 23, 30, 0, 0, time.UTC)
	trips, err := schedule.NextTrips("sf", "sunnyvale", lateNight)
	require.NoError(t, err)
	require.Len(t, trips, 1)

	owl := trips[0]
	assert.Equal(t, "804", owl.Train.Name)
	assert.Equal(t, NewTimeOfDay(23, 50, 0), owl.Departure)
	assert.Equal(t, NewTimeOfDay(0, 10, 0), owl.Arrival)
	assert.Equal(t, 20*time.Minute, owl.Duration)
}

func TestNextTripsAfterLastDeparture(t *testing.T) {
	schedule := loadReference(t)

	endOfDay := time.Date(2019, time.August, 19, 23, 55, 0, 0, time.UTC)
	trips, err := schedule.NextTrips("sf", "sunnyvale", endOfDay)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestNextTripsDisjointStations(t *testing.T) {
	schedule := loadReference(t)

	// No train serves both SF and Gilroy in the reference feed. An empty
	// result, not an error.
	trips, err := schedule.NextTrips("sf", "gilroy", mondayEvening)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestNextTripsUnknownStation(t *testing.T) {
	schedule := loadReference(t)

	_, err := schedule.NextTrips("sf", "nonexistent place", mondayEvening)

	var unknownErr *UnknownStationError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "nonexistent place", unknownErr.Name)
}

func TestFareBetween(t *testing.T) {
	schedule := loadReference(t)

	fare, err := schedule.Fare("sunnyvale", "sunnyvale")
	require.NoError(t, err)
	assert.Equal(t, Fare{Dollars: 3, Cents: 75}, fare)

	fare, err = schedule.Fare("sunnyvale", "gilroy")
	require.NoError(t, err)
	assert.Equal(t, Fare{Dollars: 10, Cents: 50}, fare)
	assert.Equal(t, "$10.50", fare.String())
}

func TestFareAcceptsStationValues(t *testing.T) {
	schedule := loadReference(t)

	sf, err := schedule.Station("sf")
	require.NoError(t, err)

	fare, err := schedule.Fare(sf, "sunnyvale")
	require.NoError(t, err)
	assert.Equal(t, Fare{Dollars: 5, Cents: 25}, fare)
}

func TestFareNotDeclared(t *testing.T) {
	schedule := loadReference(t)

	// The reference feed declares 4->6 but not the reverse; symmetry is
	// never assumed.
	_, err := schedule.Fare("gilroy", "sunnyvale")

	var fareErr *FareNotFoundError
	require.ErrorAs(t, err, &fareErr)
	assert.Equal(t, 6, fareErr.Origin)
	assert.Equal(t, 4, fareErr.Destination)
}
