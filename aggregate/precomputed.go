package aggregate

import (
	"math"
	"sort"

	"github.com/dialectmap/okresy/models"
)

// FromPrecomputed turns one votes.json entry into RegionStats. Counts are
// authoritative: total and percentages are always derived from them, so a
// stale total in the file is ignored. A dominant word from
// the file is kept when it is among the maximum counts; the tie flag is
// always derived.
func FromPrecomputed(name string, p models.PrecomputedStats) models.RegionStats {
	display := CleanText(name)

	words := make([]string, 0, len(p.Counts))
	for w, c := range p.Counts {
		if c > 0 && w != "" {
			words = append(words, w)
		}
	}
	sort.Strings(words)
	if _, ok := p.Counts[p.Dominant]; ok && p.Counts[p.Dominant] > 0 {
		// dominant first, the rest alphabetically
		ordered := []string{p.Dominant}
		for _, w := range words {
			if w != p.Dominant {
				ordered = append(ordered, w)
			}
		}
		words = ordered
	}

	return build(NormalizeKey(display), display, p.Counts, words, p.Dominant)
}

// ToPrecomputed converts stats to the votes.json shape, rounding
// percentages and the dominant share to two decimals.
func ToPrecomputed(s models.RegionStats) models.PrecomputedStats {
	p := models.PrecomputedStats{
		Total:       s.Total,
		Counts:      models.WordCount{},
		Percentages: map[string]float64{},
		Dominant:    s.DominantWord(),
	}
	for w, c := range s.Counts {
		p.Counts[w] = c
	}
	for w, v := range s.Percentages {
		p.Percentages[w] = Round2(v)
	}
	if s.Total > 0 && s.Dominant != nil {
		p.DominantShare = Round2(float64(s.Counts[*s.Dominant]) / float64(s.Total) * 100)
	}
	return p
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
