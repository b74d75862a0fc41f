// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/auth"
	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/testutil"
	"github.com/dialectmap/okresy/view"
)

func testSources(t *testing.T) dataset.Sources {
	t.Helper()
	return dataset.Sources{
		RecordsPath: testutil.WriteFile(t, "answers.csv", testutil.SampleCSV),
		GeoPath:     testutil.WriteFile(t, "okresy.geojson", testutil.SampleGeoJSON),
		Vocabulary:  aggregate.DefaultVocabulary(),
	}
}

// newTestStore returns a store loaded from the sample fixtures
func newTestStore(t *testing.T) *dataset.Store {
	t.Helper()
	return newStoreFrom(t, testSources(t))
}

func newStoreFrom(t *testing.T, src dataset.Sources) *dataset.Store {
	t.Helper()

	store := dataset.NewStore(src, time.Minute)
	if _, err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Failed to load test data: %v", err)
	}
	return store
}

// newFailedStore returns a store whose first load failed
func newFailedStore(t *testing.T) *dataset.Store {
	t.Helper()

	store := dataset.NewStore(dataset.Sources{}, time.Minute)
	store.Reload(context.Background())
	return store
}

func newTestPresenter() view.Presenter {
	return view.NewPresenter(aggregate.NewPalette(aggregate.DefaultVocabulary()))
}

func adminKey() string {
	return auth.GenerateAdminKey(auth.ScopeAdmin, testutil.TestAdminSalt)
}
