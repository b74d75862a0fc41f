// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/middleware"
	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/view"
)

type RegionsHandler struct {
	store     *dataset.Store
	presenter view.Presenter
}

func NewRegionsHandler(store *dataset.Store, presenter view.Presenter) *RegionsHandler {
	return &RegionsHandler{store: store, presenter: presenter}
}

// current returns the loaded dataset, or answers 503 with the load error
func current(w http.ResponseWriter, store *dataset.Store) (*dataset.Dataset, bool) {
	d, err := store.Current()
	if err != nil {
		slog.Warn("data not available", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		return nil, false
	}
	return d, true
}

// regionStats resolves the {name} path value. Unknown districts give empty
// stats, not an error.
func regionStats(w http.ResponseWriter, r *http.Request, store *dataset.Store) (models.RegionStats, bool) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "region name is required")
		return models.RegionStats{}, false
	}

	stats, err := store.Stats(name)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		return models.RegionStats{}, false
	}
	return stats, true
}

// ListRegions handles GET /regions
// Returns stats for every district with answers, sorted by name
func (h *RegionsHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	d, ok := current(w, h.store)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RegionsResponse{
		Mode:     d.Mode,
		LoadedAt: d.LoadedAt,
		Regions:  d.Sorted(),
	})
}

// GetRegion handles GET /regions/{name}
// Returns stats, the ordered summary, the fill colour and the info panel
func (h *RegionsHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	stats, ok := regionStats(w, r, h.store)
	if !ok {
		return
	}

	palette := h.presenter.Palette()
	middleware.JSONResponse(w, http.StatusOK, models.RegionResponse{
		Stats:    stats,
		Summary:  aggregate.Summary(stats),
		ColorKey: palette.ColorKey(stats),
		Color:    palette.Color(stats),
		Panel:    h.presenter.Panel(stats.Name, stats),
	})
}

// GetTooltip handles GET /regions/{name}/tooltip
func (h *RegionsHandler) GetTooltip(w http.ResponseWriter, r *http.Request) {
	stats, ok := regionStats(w, r, h.store)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.presenter.Tooltip(stats.Name, stats))
}
