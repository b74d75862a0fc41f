// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

// DefaultAliases are the feature properties tried, in order, for a
// district name.
var DefaultAliases = []string{"name", "NAZEV", "Nazev", "nazev", "okres"}

// Aliases returns the vocabulary's alias list or DefaultAliases.
func Aliases(v models.Vocabulary) []string {
	if len(v.NameAliases) > 0 {
		return v.NameAliases
	}
	return DefaultAliases
}

// Load decodes a GeoJSON FeatureCollection.
func Load(r io.Reader) (*geojson.FeatureCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundaries: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boundaries: %w", err)
	}
	keepTopLevelNames(fc, data)
	return fc, nil
}

// topLevelName holds a feature's foreign "name" member, which geojson.Feature
// does not decode.
const topLevelName = "_feature_name"

func keepTopLevelNames(fc *geojson.FeatureCollection, data []byte) {
	var raw struct {
		Features []struct {
			Name any `json:"name"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil || len(raw.Features) != len(fc.Features) {
		return
	}
	for i, rf := range raw.Features {
		name, ok := rf.Name.(string)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		f := fc.Features[i]
		if f.Properties == nil {
			f.Properties = geojson.Properties{}
		}
		f.Properties[topLevelName] = name
	}
}

// FeatureName returns the first non-empty string property named in aliases,
// falling back to the feature's top-level "name" member.
func FeatureName(f *geojson.Feature, aliases []string) (string, bool) {
	if f == nil {
		return "", false
	}
	for _, alias := range aliases {
		if s, ok := stringProp(f, alias); ok {
			return s, true
		}
	}
	return stringProp(f, topLevelName)
}

func stringProp(f *geojson.Feature, key string) (string, bool) {
	s, ok := f.Properties[key].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// JoinReport describes how boundary features line up with region stats.
type JoinReport struct {
	Matched         []string `json:"matched"`
	FeaturesWithout []string `json:"features_without_stats"`
	StatsWithout    []string `json:"stats_without_feature"`
	UnnamedFeatures int      `json:"unnamed_features"`
}

// Join matches feature names against stats keyed by region key.
func Join(fc *geojson.FeatureCollection, stats map[string]models.RegionStats, aliases []string) JoinReport {
	var report JoinReport
	seen := make(map[string]bool)

	for _, f := range fc.Features {
		name, ok := FeatureName(f, aliases)
		if !ok {
			report.UnnamedFeatures++
			continue
		}
		key := aggregate.NormalizeKey(name)
		if _, ok := stats[key]; ok {
			report.Matched = append(report.Matched, name)
			seen[key] = true
		} else {
			report.FeaturesWithout = append(report.FeaturesWithout, name)
		}
	}

	for key, s := range stats {
		if !seen[key] {
			report.StatsWithout = append(report.StatsWithout, s.Name)
		}
	}
	sort.Strings(report.StatsWithout)
	return report
}

// Decorate returns a copy of fc where every named feature carries the
// properties produced by props. Unnamed features are copied unchanged.
func Decorate(fc *geojson.FeatureCollection, aliases []string, props func(name string) map[string]any) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		nf := geojson.NewFeature(f.Geometry)
		nf.ID = f.ID
		nf.BBox = f.BBox
		nf.Properties = f.Properties.Clone()
		delete(nf.Properties, topLevelName)

		if name, ok := FeatureName(f, aliases); ok {
			for k, v := range props(name) {
				nf.Properties[k] = v
			}
		}
		out.Append(nf)
	}
	return out
}
