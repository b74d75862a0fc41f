package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

// Store holds the current dataset, or the error that prevented the first
// load, and caches per-region stats.
type Store struct {
	src Sources

	mu         sync.RWMutex
	current    *Dataset
	err        error
	generation int

	cache *cache.Cache
}

func NewStore(src Sources, ttl time.Duration) *Store {
	return &Store{
		src:   src,
		err:   ErrNotLoaded,
		cache: cache.New(ttl, 2*ttl),
	}
}

// NewStoreFrom wraps an already loaded dataset.
func NewStoreFrom(d *Dataset, ttl time.Duration) *Store {
	s := NewStore(Sources{}, ttl)
	s.current = d
	s.err = nil
	return s
}

// Reload loads the sources again and swaps the dataset in. On failure the
// previous dataset stays in place; without one the error is kept for
// Current to report.
func (s *Store) Reload(ctx context.Context) (*Dataset, error) {
	d, err := Load(ctx, s.src)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if s.current == nil {
			s.err = err
		}
		slog.Error("data load failed", "error", err)
		return nil, err
	}

	s.current = d
	s.err = nil
	s.generation++
	s.cache.Flush()

	slog.Info("data loaded",
		"mode", d.Mode,
		"records", len(d.Records),
		"features", len(d.Features.Features),
		"matched", len(d.Join.Matched),
		"features_without_stats", len(d.Join.FeaturesWithout),
		"stats_without_feature", len(d.Join.StatsWithout),
	)
	return d, nil
}

// Current returns the dataset or the load error.
func (s *Store) Current() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, s.err
	}
	return s.current, nil
}

// Stats returns one region's stats, computing them at most once per
// dataset generation and cache TTL.
func (s *Store) Stats(region string) (models.RegionStats, error) {
	s.mu.RLock()
	d, gen, err := s.current, s.generation, s.err
	s.mu.RUnlock()
	if d == nil {
		return models.RegionStats{}, err
	}

	key := cacheKey("stats", gen, aggregate.NormalizeKey(region))
	if v, ok := s.cache.Get(key); ok {
		return v.(models.RegionStats), nil
	}

	stats := d.Stats(region)
	s.cache.Set(key, stats, cache.DefaultExpiration)
	return stats, nil
}

func cacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
