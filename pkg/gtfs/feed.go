package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Feed holds the raw tables of a single GTFS zip archive. Records are kept
// exactly as the feed declares them; joining them into a queryable model is
// the timetable package's job.
type Feed struct {
	// Version is the single root directory the archive entries sit under,
	// without trailing slash. Empty for flat archives.
	Version string

	// PaddedHeaders is set when any table header row carries space-padded
	// column names, a marker of the older feed vintage.
	PaddedHeaders bool

	Stops          []Stop
	Trips          []Trip
	StopTimes      []StopTime
	Calendars      []Calendar
	FareAttributes []FareAttribute
	FareRules      []FareRule
}

// LayoutError reports an archive whose entries span more than one root
// directory, which makes the feed version ambiguous.
type LayoutError struct {
	Roots []string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("ambiguous feed layout: entries span multiple roots %v", e.Roots)
}

// Parse reads a GTFS zip archive held in memory. Tables may sit at the top
// level or nested one directory deep; anything else fails with a LayoutError.
func Parse(body []byte) (*Feed, error) {
	// Allow us to ignore those naughty records that have missing columns,
	// and tolerate the space-padded headers of older feed vintages.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
	gocsv.SetHeaderNormalizer(strings.TrimSpace)

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, err
	}

	feed := &Feed{}

	fileMap := map[string]interface{}{
		"stops.txt":           &feed.Stops,
		"trips.txt":           &feed.Trips,
		"stop_times.txt":      &feed.StopTimes,
		"calendar.txt":        &feed.Calendars,
		"fare_attributes.txt": &feed.FareAttributes,
		"fare_rules.txt":      &feed.FareRules,
	}

	root, err := resolveRoot(archive)
	if err != nil {
		return nil, err
	}
	feed.Version = root

	for _, zipFile := range archive.File {
		if strings.HasSuffix(zipFile.Name, "/") {
			continue
		}

		fileName := zipFile.Name
		if root != "" {
			fileName = strings.TrimPrefix(fileName, root+"/")
		}

		destination, exists := fileMap[fileName]
		if !exists {
			log.Debug().Str("file", zipFile.Name).Msg("Skipping unknown gtfs file")
			continue
		}

		fileReader, err := zipFile.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", zipFile.Name, err)
		}

		data, err := io.ReadAll(fileReader)
		fileReader.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", zipFile.Name, err)
		}

		if headerPadded(data) {
			feed.PaddedHeaders = true
		}

		if err := gocsv.UnmarshalBytes(data, destination); err != nil {
			return nil, fmt.Errorf("parse %s: %w", zipFile.Name, err)
		}
	}

	return feed, nil
}

// resolveRoot finds the single directory prefix shared by every archive
// entry, or "" when the archive is flat.
func resolveRoot(archive *zip.Reader) (string, error) {
	roots := map[string]bool{}

	for _, zipFile := range archive.File {
		name := strings.TrimSuffix(zipFile.Name, "/")
		if name == "" {
			continue
		}
		if index := strings.Index(name, "/"); index >= 0 {
			roots[name[:index]] = true
		} else if !zipFile.FileInfo().IsDir() {
			roots[""] = true
		}
	}

	if len(roots) > 1 {
		var names []string
		for root := range roots {
			names = append(names, root)
		}
		sort.Strings(names)
		return "", &LayoutError{Roots: names}
	}

	for root := range roots {
		return root, nil
	}
	return "", nil
}

func headerPadded(data []byte) bool {
	header := data
	if index := bytes.IndexByte(data, '\n'); index >= 0 {
		header = data[:index]
	}

	for _, column := range strings.Split(string(header), ",") {
		if column != strings.TrimSpace(column) {
			return true
		}
	}
	return false
}
