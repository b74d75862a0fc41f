package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

// ReadPrecomputed decodes a votes.json mapping of district name to stats and
// returns RegionStats keyed by region key.
func ReadPrecomputed(r io.Reader) (map[string]models.RegionStats, error) {
	var raw map[string]models.PrecomputedStats
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse precomputed stats: %w", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]models.RegionStats, len(raw))
	for _, name := range names {
		p := raw[name]
		s := aggregate.FromPrecomputed(name, p)
		if s.Region == "" {
			slog.Warn("precomputed entry without name skipped")
			continue
		}
		if p.Total != s.Total {
			slog.Warn("precomputed total does not match counts",
				"region", name,
				"total", p.Total,
				"counted", s.Total,
			)
		}
		if _, dup := out[s.Region]; dup {
			slog.Warn("duplicate precomputed region skipped", "region", name, "key", s.Region)
			continue
		}
		out[s.Region] = s
	}
	return out, nil
}

func OpenPrecomputed(path string) (map[string]models.RegionStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPrecomputed(f)
}
