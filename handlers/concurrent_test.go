// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/testutil"
)

// TestConcurrentRegionReads verifies that parallel region lookups during
// reloads always see a complete dataset
func TestConcurrentRegionReads(t *testing.T) {
	store := newTestStore(t)
	regions := NewRegionsHandler(store, newTestPresenter())
	admin := NewAdminHandler(store, testutil.GetTestConfig(), nil)

	var okCount atomic.Int32
	var wg sync.WaitGroup

	numReaders := 20
	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			name := []string{"Praha", "Brno-město", "Kladno", "Beroun"}[i%4]
			req := httptest.NewRequest("GET", "/regions/"+name, nil)
			req.SetPathValue("name", name)
			w := httptest.NewRecorder()

			regions.GetRegion(w, req)

			if w.Code == http.StatusOK {
				okCount.Add(1)
			}
		}(i)
	}

	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("POST", "/admin/reload", nil)
			req.Header.Set("X-Admin-Key", adminKey())
			w := httptest.NewRecorder()

			admin.Reload(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected reload to succeed, got %d", w.Code)
			}
		}()
	}

	wg.Wait()

	if int(okCount.Load()) != numReaders {
		t.Errorf("Expected %d successful reads, got %d", numReaders, okCount.Load())
	}

	// After the reloads the data is unchanged
	req := httptest.NewRequest("GET", "/regions/Praha", nil)
	req.SetPathValue("name", "Praha")
	w := httptest.NewRecorder()
	regions.GetRegion(w, req)

	var resp models.RegionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Stats.Total != 3 {
		t.Errorf("Expected Praha total 3 after reloads, got %d", resp.Stats.Total)
	}
}
