package aggregate

import (
	"sort"

	"github.com/dialectmap/okresy/models"
)

// Summary lists the words of a region by descending count. Equal counts
// keep first-seen order.
func Summary(s models.RegionStats) []models.SummaryLine {
	words := s.Words
	if len(words) != len(s.Counts) {
		words = make([]string, 0, len(s.Counts))
		for w := range s.Counts {
			words = append(words, w)
		}
		sort.Strings(words)
	}

	lines := make([]models.SummaryLine, 0, len(words))
	for _, w := range words {
		lines = append(lines, models.SummaryLine{
			Word:       w,
			Count:      s.Counts[w],
			Percentage: s.Percentages[w],
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Count > lines[j].Count
	})
	return lines
}

// Share returns the dominant word's percentage, or false without data.
func Share(s models.RegionStats) (float64, bool) {
	if s.Total == 0 || s.Dominant == nil {
		return 0, false
	}
	return s.Percentages[*s.Dominant], true
}
