package aggregate

import (
	"strings"

	"github.com/dialectmap/okresy/models"
)

// Aggregator turns survey records into per-region statistics. The zero
// value matches regions with NormalizeKey.
type Aggregator struct {
	Key KeyFunc
}

func New(key KeyFunc) Aggregator {
	return Aggregator{Key: key}
}

func (a Aggregator) key(s string) string {
	if a.Key == nil {
		return NormalizeKey(s)
	}
	return a.Key(s)
}

// ComputeStats tallies the records belonging to region. Records without a
// word or region are skipped. A region with no records yields empty stats
// with a nil Dominant.
func (a Aggregator) ComputeStats(records []models.SurveyRecord, region string) models.RegionStats {
	target := a.key(region)
	t := newTally(target, strings.TrimSpace(region))
	if target == "" {
		return t.stats()
	}

	for _, r := range records {
		if !valid(r) || a.key(r.Region) != target {
			continue
		}
		t.add(r)
	}
	return t.stats()
}

// ComputeAllStats computes stats for each requested region. The records are
// partitioned once, so every region is a single pass over its own records.
// The result is keyed by region key.
func (a Aggregator) ComputeAllStats(records []models.SurveyRecord, regions []string) map[string]models.RegionStats {
	parts := a.Partition(records)

	out := make(map[string]models.RegionStats, len(regions))
	for _, region := range regions {
		key := a.key(region)
		if key == "" {
			continue
		}
		t := newTally(key, strings.TrimSpace(region))
		for _, r := range parts[key] {
			t.add(r)
		}
		out[key] = t.stats()
	}
	return out
}

// ComputeAll computes stats for every region present in records. The display
// name of each region is the first label seen for it.
func (a Aggregator) ComputeAll(records []models.SurveyRecord) map[string]models.RegionStats {
	parts := a.Partition(records)

	out := make(map[string]models.RegionStats, len(parts))
	for key, rs := range parts {
		t := newTally(key, strings.TrimSpace(rs[0].Region))
		for _, r := range rs {
			t.add(r)
		}
		out[key] = t.stats()
	}
	return out
}

// Partition groups valid records by region key, keeping record order within
// each group.
func (a Aggregator) Partition(records []models.SurveyRecord) map[string][]models.SurveyRecord {
	parts := make(map[string][]models.SurveyRecord)
	for _, r := range records {
		if !valid(r) {
			continue
		}
		key := a.key(r.Region)
		if key == "" {
			continue
		}
		parts[key] = append(parts[key], r)
	}
	return parts
}

// ComputeStats uses the default aggregator.
func ComputeStats(records []models.SurveyRecord, region string) models.RegionStats {
	return Aggregator{}.ComputeStats(records, region)
}

// ComputeAllStats uses the default aggregator.
func ComputeAllStats(records []models.SurveyRecord, regions []string) map[string]models.RegionStats {
	return Aggregator{}.ComputeAllStats(records, regions)
}

func valid(r models.SurveyRecord) bool {
	return strings.TrimSpace(r.Word) != "" && strings.TrimSpace(r.Region) != ""
}

// tally accumulates counts for one region, remembering first-seen order so
// the dominant word is deterministic.
type tally struct {
	key    string
	name   string
	named  bool
	counts models.WordCount
	words  []string
}

func newTally(key, fallbackName string) *tally {
	return &tally{key: key, name: fallbackName, counts: models.WordCount{}}
}

func (t *tally) add(r models.SurveyRecord) {
	if !t.named {
		t.name = CleanText(r.Region)
		t.named = true
	}
	w := strings.TrimSpace(r.Word)
	if _, seen := t.counts[w]; !seen {
		t.words = append(t.words, w)
	}
	t.counts[w]++
}

func (t *tally) stats() models.RegionStats {
	return build(t.key, t.name, t.counts, t.words, "")
}

// build derives total, percentages, dominant and the tie flag from counts.
// preferred, when non-empty and among the maximum, wins the deterministic
// choice; otherwise the first word in order reaching the maximum does.
func build(key, name string, counts models.WordCount, words []string, preferred string) models.RegionStats {
	s := models.RegionStats{
		Region:      key,
		Name:        name,
		Counts:      models.WordCount{},
		Words:       []string{},
		Percentages: map[string]float64{},
	}

	for _, w := range words {
		s.Counts[w] = counts[w]
		s.Words = append(s.Words, w)
		s.Total += counts[w]
	}
	if s.Total == 0 {
		return s
	}

	maxCount := 0
	dominant := ""
	for _, w := range s.Words {
		c := s.Counts[w]
		s.Percentages[w] = float64(c) / float64(s.Total) * 100
		if c > maxCount {
			maxCount = c
			dominant = w
		}
	}

	atMax := 0
	for _, w := range s.Words {
		if s.Counts[w] == maxCount {
			atMax++
		}
	}
	s.IsTie = atMax > 1

	if preferred != "" && s.Counts[preferred] == maxCount {
		dominant = preferred
	}
	s.Dominant = &dominant
	return s
}
