package gtfs

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArchive(t *testing.T, files map[string][]string) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := zip.NewWriter(buf)
	for name, lines := range files {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(strings.Join(lines, "\n")))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf.Bytes()
}

func TestParseFlat(t *testing.T) {
	body := buildArchive(t, map[string][]string{
		"stops.txt": {
			"stop_id,stop_name,zone_id",
			"70011,San Francisco Caltrain Station,1",
		},
		"trips.txt": {
			"route_id,service_id,trip_id,trip_short_name,direction_id",
			"Lo-19SEP,CT-Weekday,t192,192,1",
		},
	})

	feed, err := Parse(body)
	require.NoError(t, err)

	assert.Equal(t, "", feed.Version)
	assert.False(t, feed.PaddedHeaders)

	require.Len(t, feed.Stops, 1)
	assert.Equal(t, "70011", feed.Stops[0].ID)
	assert.Equal(t, "San Francisco Caltrain Station", feed.Stops[0].Name)

	require.Len(t, feed.Trips, 1)
	assert.Equal(t, "t192", feed.Trips[0].ID)
	assert.Equal(t, 1, feed.Trips[0].DirectionID)
}

func TestParseNestedRoot(t *testing.T) {
	body := buildArchive(t, map[string][]string{
		"caltrain-gtfs-2019-08/stops.txt": {
			"stop_id,stop_name,zone_id",
			"70011,San Francisco Caltrain Station,1",
		},
		"caltrain-gtfs-2019-08/calendar.txt": {
			"service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date",
			"CT-Weekday,1,1,1,1,1,0,0,20190701,20191231",
		},
	})

	feed, err := Parse(body)
	require.NoError(t, err)

	assert.Equal(t, "caltrain-gtfs-2019-08", feed.Version)
	assert.Len(t, feed.Stops, 1)
	require.Len(t, feed.Calendars, 1)
	assert.Equal(t, [7]bool{true, true, true, true, true, false, false}, feed.Calendars[0].DayFlags())
}

func TestParseAmbiguousRoots(t *testing.T) {
	body := buildArchive(t, map[string][]string{
		"2019-08/stops.txt": {"stop_id,stop_name,zone_id"},
		"2019-09/stops.txt": {"stop_id,stop_name,zone_id"},
	})

	_, err := Parse(body)

	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, []string{"2019-08", "2019-09"}, layoutErr.Roots)
}

func TestParseUnknownFilesSkipped(t *testing.T) {
	body := buildArchive(t, map[string][]string{
		"stops.txt":  {"stop_id,stop_name,zone_id"},
		"shapes.txt": {"shape_id,shape_pt_lat,shape_pt_lon"},
	})

	_, err := Parse(body)
	assert.NoError(t, err)
}

func TestParsePaddedHeaders(t *testing.T) {
	body := buildArchive(t, map[string][]string{
		"fare_rules.txt": {
			"fare_id, origin_id, destination_id",
			"f1,3329,3332",
		},
	})

	feed, err := Parse(body)
	require.NoError(t, err)

	assert.True(t, feed.PaddedHeaders)
	require.Len(t, feed.FareRules, 1)
	assert.Equal(t, "3329", strings.TrimSpace(feed.FareRules[0].OriginID))
}

func TestDetectDialect(t *testing.T) {
	assert.Equal(t, DialectLegacy, DetectDialect(&Feed{PaddedHeaders: true}))
	assert.Equal(t, DialectCurrent, DetectDialect(&Feed{}))
}

func TestLoadDialect(t *testing.T) {
	dialect, err := LoadDialect([]byte(`
name: test
zoneOffset: 100
stationName: '^(.+) Railway$'
`))
	require.NoError(t, err)
	assert.Equal(t, 100, dialect.ZoneOffset)

	_, err = LoadDialect([]byte(`
name: broken
stationName: '^(.+'
`))
	assert.Error(t, err)

	_, err = LoadDialect([]byte(`zoneOffset: 5`))
	assert.Error(t, err)
}
