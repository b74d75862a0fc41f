package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/auth"
	"github.com/dialectmap/okresy/chart"
	"github.com/dialectmap/okresy/db"
	"github.com/dialectmap/okresy/ingest"
	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/report"
	"github.com/dialectmap/okresy/view"
)

func vocabulary(c *cli.Context) (models.Vocabulary, error) {
	vocab, err := ingest.LoadVocabulary(c.String("vocab"))
	if err != nil {
		return models.Vocabulary{}, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return vocab, nil
}

func readRecords(c *cli.Context, vocab models.Vocabulary) ([]models.SurveyRecord, error) {
	path := c.String("records")
	if path == "" {
		return nil, fmt.Errorf("--records is required")
	}
	records, rep, err := ingest.OpenRecords(path, ingest.Options{
		Vocabulary:   vocab,
		WordColumn:   c.String("word-column"),
		RegionColumn: c.String("region-column"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	slog.Info("records read",
		"path", path,
		"rows", rep.Rows,
		"accepted", rep.Accepted,
		"malformed", rep.Malformed,
		"unclassified", rep.Unclassified,
	)
	return records, nil
}

// loadStats reads --votes when given, otherwise aggregates --records.
func loadStats(c *cli.Context, vocab models.Vocabulary) (map[string]models.RegionStats, error) {
	if path := c.String("votes"); path != "" {
		stats, err := ingest.OpenPrecomputed(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read votes: %w", err)
		}
		return stats, nil
	}
	records, err := readRecords(c, vocab)
	if err != nil {
		return nil, err
	}
	return aggregate.New(aggregate.NormalizeKey).ComputeAll(records), nil
}

func lookupIn(stats map[string]models.RegionStats) view.Lookup {
	return func(region string) (string, models.RegionStats) {
		if s, ok := stats[aggregate.NormalizeKey(region)]; ok {
			return s.Name, s
		}
		name := strings.TrimSpace(region)
		return name, aggregate.ComputeStats(nil, name)
	}
}

func AggregateAction(c *cli.Context) error {
	vocab, err := vocabulary(c)
	if err != nil {
		return err
	}
	records, err := readRecords(c, vocab)
	if err != nil {
		return err
	}
	stats := aggregate.New(aggregate.NormalizeKey).ComputeAll(records)

	var buf bytes.Buffer
	if err := report.WriteVotesJSON(&buf, stats); err != nil {
		return fmt.Errorf("failed to encode votes: %w", err)
	}
	out := c.String("out")
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s (%s): %s answers in %d districts\n",
		out,
		humanize.Bytes(uint64(buf.Len())),
		humanize.Comma(int64(len(records))),
		len(stats),
	)
	return nil
}

func ImportAction(c *cli.Context) error {
	vocab, err := vocabulary(c)
	if err != nil {
		return err
	}
	records, err := readRecords(c, vocab)
	if err != nil {
		return err
	}

	conn, err := db.Open(c.String("db-type"), c.String("db-url"))
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.CreateSchema(conn); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	batchID, err := db.InsertRecords(c.Context, conn, records, filepath.Base(c.String("records")))
	if err != nil {
		return err
	}
	total, err := db.CountRecords(c.Context, conn)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Imported %s answers as batch %s (%s stored)\n",
		humanize.Comma(int64(len(records))), batchID, humanize.Comma(int64(total)))
	return nil
}

func StatsAction(c *cli.Context) error {
	vocab, err := vocabulary(c)
	if err != nil {
		return err
	}
	stats, err := loadStats(c, vocab)
	if err != nil {
		return err
	}
	presenter := view.NewPresenter(aggregate.NewPalette(vocab))

	if region := c.Args().First(); region != "" {
		name, s := lookupIn(stats)(region)
		printPanel(c.App.Writer, presenter.Panel(name, s))
		return nil
	}

	if len(stats) == 0 {
		fmt.Fprintln(c.App.Writer, "No districts found")
		return nil
	}

	all := make([]models.RegionStats, 0, len(stats))
	for _, s := range stats {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	fmt.Fprintf(c.App.Writer, "%-24s %-8s %-12s %-8s\n", "Okres", "Celkem", "Převládá", "Podíl")
	fmt.Fprintln(c.App.Writer, strings.Repeat("-", 56))
	for _, s := range all {
		dominant := s.DominantWord()
		if s.IsTie {
			dominant = "remíza"
		}
		share := "-"
		if v, ok := aggregate.Share(s); ok {
			share = view.FormatPercent(v)
		}
		fmt.Fprintf(c.App.Writer, "%-24s %-8s %-12s %-8s\n",
			s.Name, presenter.FormatCount(s.Total), dominant, share)
	}
	fmt.Fprintf(c.App.Writer, "\nTotal: %d districts\n", len(all))
	return nil
}

func ChartAction(c *cli.Context) error {
	region := c.Args().First()
	if region == "" {
		return fmt.Errorf("district name is required")
	}
	vocab, err := vocabulary(c)
	if err != nil {
		return err
	}
	stats, err := loadStats(c, vocab)
	if err != nil {
		return err
	}
	palette := aggregate.NewPalette(vocab)
	name, s := lookupIn(stats)(region)
	lines := aggregate.Summary(s)

	var buf bytes.Buffer
	out := c.String("out")
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		err = chart.BarPNG(&buf, name, lines, palette)
	case ".html", ".htm":
		err = chart.Donut(&buf, name, lines, palette)
	default:
		return fmt.Errorf("unsupported chart format %q, use .png or .html", filepath.Ext(out))
	}
	if err != nil {
		return fmt.Errorf("failed to render chart for %s: %w", name, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s (%s)\n", out, humanize.Bytes(uint64(buf.Len())))
	return nil
}

func ExploreAction(c *cli.Context) error {
	vocab, err := vocabulary(c)
	if err != nil {
		return err
	}
	stats, err := loadStats(c, vocab)
	if err != nil {
		return err
	}
	presenter := view.NewPresenter(aggregate.NewPalette(vocab))
	explorer := view.NewExplorer(presenter, lookupIn(stats), &textRenderer{w: c.App.Writer})
	return explore(c.App.Reader, c.App.Writer, explorer)
}

func AdminKeyAction(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, auth.GenerateAdminKey(auth.ScopeAdmin, c.String("salt")))
	return nil
}
