package timetable

import "strings"

type Direction string

const (
	DirectionNorthbound Direction = "Northbound"
	DirectionSouthbound Direction = "Southbound"
)

// directionFromFlag maps the feed's 0/1 direction flag.
func directionFromFlag(flag int) Direction {
	if flag == 0 {
		return DirectionNorthbound
	}
	return DirectionSouthbound
}

// TransitType is an open, string-keyed route classification taken from the
// feed's own identifiers. Feed vintages introduce new classes (game trains,
// special services) so unknown values pass through rather than failing.
type TransitType string

const (
	TransitTypeBabyBullet    TransitType = "bu"
	TransitTypeLimited       TransitType = "li"
	TransitTypeLocal         TransitType = "lo"
	TransitTypeTamienSanJose TransitType = "tasj"
)

var transitTypeNames = map[TransitType]string{
	TransitTypeBabyBullet:    "Baby Bullet",
	TransitTypeLimited:       "Limited",
	TransitTypeLocal:         "Local",
	TransitTypeTamienSanJose: "Tamien San Jose",
}

// transitTypeFromRoute normalises a raw route id: lower-cased, keeping the
// portion before the separator when the feed encodes extra qualifiers
// (e.g. "Lo-19SEP" is a local).
func transitTypeFromRoute(routeID string) TransitType {
	kind := strings.ToLower(routeID)
	if index := strings.Index(kind, "-"); index >= 0 {
		kind = kind[:index]
	}
	return TransitType(strings.TrimSpace(kind))
}

func (t TransitType) String() string {
	if name, known := transitTypeNames[t]; known {
		return name
	}
	return titleCase(string(t))
}

// Train is one scheduled run, keyed by its feed trip id. Stops is populated
// during load and treated as immutable afterwards.
type Train struct {
	ID string
	// Name is the rider-facing train number, e.g. "192".
	Name      string
	Kind      TransitType
	Direction Direction
	Stops     map[*Station]Stop
	Window    *ServiceWindow
}
