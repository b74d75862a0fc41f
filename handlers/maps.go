// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/chart"
	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/geo"
	"github.com/dialectmap/okresy/middleware"
	"github.com/dialectmap/okresy/view"
)

type MapHandler struct {
	store     *dataset.Store
	presenter view.Presenter
}

func NewMapHandler(store *dataset.Store, presenter view.Presenter) *MapHandler {
	return &MapHandler{store: store, presenter: presenter}
}

// GetMap handles GET /map
// Returns the boundary GeoJSON with colour, style and tooltip per district
func (h *MapHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	d, ok := current(w, h.store)
	if !ok {
		return
	}

	palette := h.presenter.Palette()
	aliases := geo.Aliases(palette.Vocabulary())

	fc := geo.Decorate(d.Features, aliases, func(name string) map[string]any {
		stats, err := h.store.Stats(name)
		if err != nil {
			stats = d.Stats(name)
		}
		return map[string]any{
			"region":    stats.Region,
			"total":     stats.Total,
			"dominant":  stats.Dominant,
			"is_tie":    stats.IsTie,
			"color_key": palette.ColorKey(stats),
			"style":     h.presenter.BaseStyle(stats),
			"tooltip":   h.presenter.Tooltip(name, stats),
		}
	})

	body, err := json.Marshal(fc)
	if err != nil {
		slog.Error("failed to encode map", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode map")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// GetLegend handles GET /legend
func (h *MapHandler) GetLegend(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.presenter.Legend())
}

type ChartHandler struct {
	store   *dataset.Store
	palette aggregate.Palette
}

func NewChartHandler(store *dataset.Store, palette aggregate.Palette) *ChartHandler {
	return &ChartHandler{store: store, palette: palette}
}

// GetDonut handles GET /regions/{name}/chart
// Returns an HTML page with the district's donut chart
func (h *ChartHandler) GetDonut(w http.ResponseWriter, r *http.Request) {
	stats, ok := regionStats(w, r, h.store)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.render(w, stats.Name, chart.Donut(w, stats.Name, aggregate.Summary(stats), h.palette))
}

// GetBarPNG handles GET /regions/{name}/chart.png
func (h *ChartHandler) GetBarPNG(w http.ResponseWriter, r *http.Request) {
	stats, ok := regionStats(w, r, h.store)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	h.render(w, stats.Name, chart.BarPNG(w, stats.Name, aggregate.Summary(stats), h.palette))
}

func (h *ChartHandler) render(w http.ResponseWriter, name string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, chart.ErrNoData):
		w.Header().Del("Content-Type")
		middleware.ErrorResponse(w, http.StatusNotFound, "No answers for "+name)
	default:
		slog.Error("failed to render chart", "region", name, "error", err)
	}
}
