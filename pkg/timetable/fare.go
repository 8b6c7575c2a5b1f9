package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// Fare is a price in whole dollars and cents, kept apart to mirror the
// feed's "dollars.cents" encoding without floating point.
type Fare struct {
	Dollars int
	Cents   int
}

func (f Fare) String() string {
	return fmt.Sprintf("$%d.%02d", f.Dollars, f.Cents)
}

// ZonePair keys the fare table. Fares are not assumed symmetric; only pairs
// the feed declares are answerable.
type ZonePair struct {
	Origin      int
	Destination int
}

type FareTable map[ZonePair]Fare

func parseFare(price string) (Fare, error) {
	parts := strings.Split(strings.TrimSpace(price), ".")
	if len(parts) != 2 {
		return Fare{}, fmt.Errorf("malformed fare price %q", price)
	}

	dollars, err := strconv.Atoi(parts[0])
	if err != nil {
		return Fare{}, fmt.Errorf("malformed fare price %q: %w", price, err)
	}
	cents, err := strconv.Atoi(parts[1])
	if err != nil {
		return Fare{}, fmt.Errorf("malformed fare price %q: %w", price, err)
	}

	return Fare{Dollars: dollars, Cents: cents}, nil
}
