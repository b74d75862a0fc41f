package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dialectmap/okresy/cliparse"
)

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	sourceFlags := []cli.Flag{
		&cli.StringFlag{Name: "votes", Usage: "precomputed votes.json", EnvVars: []string{"VOTES_PATH"}},
		&cli.StringFlag{Name: "records", Usage: "raw survey answers (.csv or .xlsx)", EnvVars: []string{"RECORDS_PATH"}},
		&cli.StringFlag{Name: "word-column", Usage: "header of the answer column", EnvVars: []string{"WORD_COLUMN"}},
		&cli.StringFlag{Name: "region-column", Usage: "header of the district column", EnvVars: []string{"REGION_COLUMN"}},
	}

	return &cli.App{
		Name:  "dialectctl",
		Usage: "prepare and inspect district survey data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "vocab", Usage: "vocabulary YAML file", EnvVars: []string{"VOCABULARY_PATH"}},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "debug, info, warn or error", EnvVars: []string{"LOG_LEVEL"}},
		},
		Before: func(c *cli.Context) error {
			level := c.String("log-level")
			if _, err := cliparse.ParseLevel(level); err != nil {
				return err
			}
			slog.SetDefault(cliparse.NewLogger(c.App.ErrWriter, level))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "aggregate",
				Usage:  "aggregate raw answers into votes.json",
				Action: AggregateAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "votes.json", Usage: "output file"},
				}, sourceFlags[1:]...),
			},
			{
				Name:   "import",
				Usage:  "store raw answers in the database",
				Action: ImportAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "db-type", Aliases: []string{"t"}, Value: "sqlite", EnvVars: []string{"DATABASE_TYPE"}},
					&cli.StringFlag{Name: "db-url", Aliases: []string{"d"}, Value: "okresy.db", EnvVars: []string{"DATABASE_URL"}},
				}, sourceFlags[1:]...),
			},
			{
				Name:      "stats",
				Usage:     "print the summary of one district, or all districts",
				ArgsUsage: "[district]",
				Action:    StatsAction,
				Flags:     sourceFlags,
			},
			{
				Name:      "chart",
				Usage:     "write a district chart (.png or .html)",
				ArgsUsage: "<district>",
				Action:    ChartAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output file, .png or .html"},
				}, sourceFlags...),
			},
			{
				Name:   "explore",
				Usage:  "hover, select and reset districts from stdin",
				Action: ExploreAction,
				Flags:  sourceFlags,
			},
			{
				Name:   "admin-key",
				Usage:  "print the admin key for a salt",
				Action: AdminKeyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "salt", Required: true, EnvVars: []string{"ADMIN_KEY_SALT"}},
				},
			},
		},
	}
}
