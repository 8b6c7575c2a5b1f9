package gtfs

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Dialect captures the drift between feed vintages: how station names are
// written, and whether zone ids carry an artificial offset. It is resolved
// once per load and never branched on ad hoc.
type Dialect struct {
	Name string `yaml:"name" validate:"required"`

	// ZoneOffset is subtracted from every zone id in stops and fare rules.
	ZoneOffset int `yaml:"zoneOffset" validate:"gte=0"`

	// StationName extracts the plain station name from the feed's display
	// form. First capture group is the name.
	StationName string `yaml:"stationName" validate:"required"`
}

var (
	// DialectCurrent matches feeds naming stops "<name> Caltrain [Station]"
	// with direct zone ids.
	DialectCurrent = Dialect{
		Name:        "current",
		StationName: `^(.+) Caltrain( Station)?$`,
	}

	// DialectLegacy matches the older vintage: "CALTRAIN - <name> STATION"
	// stop names, zone ids offset by 3328 and space-padded csv headers.
	DialectLegacy = Dialect{
		Name:        "legacy",
		ZoneOffset:  3328,
		StationName: `CALTRAIN - (.+) STATION`,
	}
)

// DetectDialect inspects a parsed feed and picks the vintage it was written
// in. Space-padded headers only ever appeared in the legacy exports.
func DetectDialect(feed *Feed) Dialect {
	if feed.PaddedHeaders {
		return DialectLegacy
	}
	return DialectCurrent
}

// LoadDialect reads a dialect from yaml so future feed vintages are a
// configuration change rather than a parser fork.
func LoadDialect(data []byte) (Dialect, error) {
	var dialect Dialect
	if err := yaml.Unmarshal(data, &dialect); err != nil {
		return Dialect{}, err
	}

	if err := validator.New().Struct(dialect); err != nil {
		return Dialect{}, err
	}

	if _, err := regexp.Compile(dialect.StationName); err != nil {
		return Dialect{}, fmt.Errorf("dialect %s: invalid station pattern: %w", dialect.Name, err)
	}

	return dialect, nil
}
