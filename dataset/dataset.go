package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/db"
	"github.com/dialectmap/okresy/geo"
	"github.com/dialectmap/okresy/ingest"
	"github.com/dialectmap/okresy/models"
)

var (
	ErrNoSources = errors.New("no survey data source configured")
	ErrNoGeo     = errors.New("no boundary file configured")
	ErrNotLoaded = errors.New("data not loaded")
)

// Sources names where survey data and boundaries come from. VotesPath
// (precomputed) wins over RecordsPath, which wins over DB.
type Sources struct {
	VotesPath    string
	RecordsPath  string
	DB           *sql.DB
	GeoPath      string
	Vocabulary   models.Vocabulary
	WordColumn   string
	RegionColumn string
}

// Dataset is one consistent load of survey data joined to boundaries. It
// is never mutated after Load returns.
type Dataset struct {
	Mode     string
	Records  []models.SurveyRecord
	Features *geojson.FeatureCollection
	Join     geo.JoinReport
	LoadedAt time.Time

	agg aggregate.Aggregator
	// raw mode
	parts map[string][]models.SurveyRecord
	// precomputed mode
	stats map[string]models.RegionStats
	// region key -> display name from the boundary file
	names map[string]string
}

// Load reads the survey source and the boundary file concurrently. The
// dataset is only built when both succeed.
func Load(ctx context.Context, src Sources) (*Dataset, error) {
	if src.GeoPath == "" {
		return nil, ErrNoGeo
	}
	if src.VotesPath == "" && src.RecordsPath == "" && src.DB == nil {
		return nil, ErrNoSources
	}

	d := &Dataset{}
	var (
		wg      sync.WaitGroup
		fc      *geojson.FeatureCollection
		dataErr error
		geoErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dataErr = d.loadSurvey(ctx, src)
	}()
	go func() {
		defer wg.Done()
		fc, geoErr = loadGeo(src.GeoPath)
	}()
	wg.Wait()

	if err := errors.Join(dataErr, geoErr, ctx.Err()); err != nil {
		return nil, err
	}

	d.Features = fc
	d.LoadedAt = time.Now()
	d.names = make(map[string]string)

	aliases := geo.Aliases(src.Vocabulary)
	for _, f := range fc.Features {
		if name, ok := geo.FeatureName(f, aliases); ok {
			d.names[aggregate.NormalizeKey(name)] = name
		}
	}
	d.Join = geo.Join(fc, d.All(), aliases)
	return d, nil
}

func (d *Dataset) loadSurvey(ctx context.Context, src Sources) error {
	switch {
	case src.VotesPath != "":
		stats, err := ingest.OpenPrecomputed(src.VotesPath)
		if err != nil {
			return fmt.Errorf("failed to load precomputed stats: %w", err)
		}
		d.Mode = models.ModePrecomputed
		d.stats = stats
		return nil

	case src.RecordsPath != "":
		records, _, err := ingest.OpenRecords(src.RecordsPath, ingest.Options{
			Vocabulary:   src.Vocabulary,
			WordColumn:   src.WordColumn,
			RegionColumn: src.RegionColumn,
		})
		if err != nil {
			return fmt.Errorf("failed to load survey records: %w", err)
		}
		d.setRecords(records)
		return nil

	default:
		records, err := db.LoadRecords(ctx, src.DB)
		if err != nil {
			return fmt.Errorf("failed to load survey records: %w", err)
		}
		d.setRecords(records)
		return nil
	}
}

func (d *Dataset) setRecords(records []models.SurveyRecord) {
	d.Mode = models.ModeRaw
	d.Records = records
	d.parts = d.agg.Partition(records)
}

func loadGeo(path string) (*geojson.FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load boundaries: %w", err)
	}
	defer f.Close()
	return geo.Load(f)
}

// Name returns the display name for a region label, preferring the
// boundary file's spelling.
func (d *Dataset) Name(region string) string {
	key := aggregate.NormalizeKey(region)
	if name, ok := d.names[key]; ok {
		return name
	}
	if s, ok := d.stats[key]; ok {
		return s.Name
	}
	if rs, ok := d.parts[key]; ok {
		return aggregate.CleanText(rs[0].Region)
	}
	return strings.TrimSpace(region)
}

// Stats computes (raw) or looks up (precomputed) the stats of one region.
// Unknown regions give empty stats.
// The display name is always Name(region), whatever the survey spelled.
func (d *Dataset) Stats(region string) models.RegionStats {
	key := aggregate.NormalizeKey(region)
	var s models.RegionStats
	if p, ok := d.stats[key]; ok && d.Mode == models.ModePrecomputed {
		s = p
	} else {
		s = d.agg.ComputeStats(d.parts[key], region)
	}
	s.Name = d.Name(region)
	return s
}

// All returns stats for every region with survey data.
func (d *Dataset) All() map[string]models.RegionStats {
	if d.Mode == models.ModePrecomputed {
		out := make(map[string]models.RegionStats, len(d.stats))
		for k := range d.stats {
			out[k] = d.Stats(k)
		}
		return out
	}
	out := make(map[string]models.RegionStats, len(d.parts))
	for key := range d.parts {
		out[key] = d.Stats(key)
	}
	return out
}

// Sorted returns All ordered by display name.
func (d *Dataset) Sorted() []models.RegionStats {
	all := d.All()
	out := make([]models.RegionStats, 0, len(all))
	for _, s := range all {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
