// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

const SheetName = "Okresy"

// WriteVotesJSON writes stats in the precomputed votes.json format, keyed
// by district display name.
func WriteVotesJSON(w io.Writer, stats map[string]models.RegionStats) error {
	out := make(map[string]models.PrecomputedStats, len(stats))
	for _, s := range stats {
		out[s.Name] = aggregate.ToPrecomputed(s)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteXLSX writes one row per region. Word columns follow the vocabulary;
// an open vocabulary uses every word seen, sorted.
func WriteXLSX(w io.Writer, stats map[string]models.RegionStats, vocab models.Vocabulary) error {
	words := columnsFor(stats, vocab)
	rows := sorted(stats)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Okres", "Celkem"}
	for _, word := range words {
		header = append(header, word)
	}
	for _, word := range words {
		header = append(header, word+" %")
	}
	header = append(header, "Převládá", "Remíza")

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(SheetName, "A", last, 14); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	for i, s := range rows {
		row := []interface{}{s.Name, s.Total}
		for _, word := range words {
			row = append(row, s.Counts[word])
		}
		for _, word := range words {
			row = append(row, aggregate.Round2(s.Percentages[word]))
		}
		tie := "ne"
		if s.IsTie {
			tie = "ano"
		}
		row = append(row, s.DominantWord(), tie)

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", s.Name, err)
		}
	}

	return f.Write(w)
}

func columnsFor(stats map[string]models.RegionStats, vocab models.Vocabulary) []string {
	if len(vocab.Words) > 0 {
		words := make([]string, 0, len(vocab.Words))
		for _, w := range aggregate.WithDefaults(vocab).Words {
			words = append(words, w.Word)
		}
		return words
	}

	seen := make(map[string]bool)
	var words []string
	for _, s := range stats {
		for w := range s.Counts {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}
	sort.Strings(words)
	return words
}

func sorted(stats map[string]models.RegionStats) []models.RegionStats {
	out := make([]models.RegionStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
