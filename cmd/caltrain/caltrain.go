package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/travigo/caltrain/pkg/timetable"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("CALTRAIN_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("CALTRAIN_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "caltrain",
		Description: "Query the Caltrain GTFS schedule - stations, fares and upcoming trips",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "feed",
				Value: "data/caltrain_gtfs_latest.zip",
				Usage: "path to the GTFS zip archive",
			},
		},

		Commands: []*cli.Command{
			{
				Name:      "station",
				Usage:     "Resolve a station name",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					schedule, err := loadSchedule(c)
					if err != nil {
						return err
					}

					station, err := schedule.Station(c.Args().First())
					if err != nil {
						return err
					}

					fmt.Printf("%s (zone %d)\n", station.Name, station.Zone)
					return nil
				},
			},
			{
				Name:      "fare",
				Usage:     "Fare between two stations",
				ArgsUsage: "<from> <to>",
				Action: func(c *cli.Context) error {
					schedule, err := loadSchedule(c)
					if err != nil {
						return err
					}

					fare, err := schedule.Fare(c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}

					fmt.Println(fare)
					return nil
				},
			},
			{
				Name:      "next",
				Usage:     "Upcoming trips between two stations",
				ArgsUsage: "<from> <to>",
				Flags: []cli.Flag{
					&cli.TimestampFlag{
						Name:   "after",
						Layout: "2006-01-02T15:04:05",
						Usage:  "instant to search from (default now)",
					},
				},
				Action: func(c *cli.Context) error {
					schedule, err := loadSchedule(c)
					if err != nil {
						return err
					}

					after := time.Now()
					if value := c.Timestamp("after"); value != nil {
						after = *value
					}

					trips, err := schedule.NextTrips(c.Args().Get(0), c.Args().Get(1), after)
					if err != nil {
						return err
					}

					if len(trips) == 0 {
						fmt.Println("No more trips today")
						return nil
					}
					for _, trip := range trips {
						fmt.Println(trip)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func loadSchedule(c *cli.Context) (*timetable.Schedule, error) {
	schedule, err := timetable.LoadFile(c.String("feed"))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("feed", c.String("feed")).Str("version", schedule.Version).Msg("Loaded schedule")
	return schedule, nil
}
