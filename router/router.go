// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/cliparse"
	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/handlers"
	"github.com/dialectmap/okresy/middleware"
	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/view"
)

// NewRouter registers every route. db may be nil when no database is
// configured.
func NewRouter(store *dataset.Store, cfg cliparse.Config, vocab models.Vocabulary, db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	palette := aggregate.NewPalette(vocab)
	presenter := view.NewPresenter(palette)

	// Initialize handlers
	regionsHandler := handlers.NewRegionsHandler(store, presenter)
	mapHandler := handlers.NewMapHandler(store, presenter)
	chartHandler := handlers.NewChartHandler(store, palette)
	exportHandler := handlers.NewExportHandler(store, vocab)
	adminHandler := handlers.NewAdminHandler(store, cfg, db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// District stats (public)
	mux.HandleFunc("GET /regions", middleware.WithLogging(regionsHandler.ListRegions))
	mux.HandleFunc("GET /regions/{name}", middleware.WithLogging(regionsHandler.GetRegion))
	mux.HandleFunc("GET /regions/{name}/tooltip", middleware.WithLogging(regionsHandler.GetTooltip))
	mux.HandleFunc("GET /regions/{name}/chart", middleware.WithLogging(chartHandler.GetDonut))
	mux.HandleFunc("GET /regions/{name}/chart.png", middleware.WithLogging(chartHandler.GetBarPNG))

	// Map layer
	mux.HandleFunc("GET /map", middleware.WithLogging(mapHandler.GetMap))
	mux.HandleFunc("GET /legend", middleware.WithLogging(mapHandler.GetLegend))

	// Exports
	mux.HandleFunc("GET /export/votes.json", middleware.WithLogging(exportHandler.GetVotesJSON))
	mux.HandleFunc("GET /export/stats.xlsx", middleware.WithLogging(exportHandler.GetStatsXLSX))

	// Operator routes
	mux.HandleFunc("POST /admin/reload", middleware.WithLogging(adminHandler.Reload))
	mux.HandleFunc("POST /admin/snapshots", middleware.WithLogging(adminHandler.CreateSnapshot))
	mux.HandleFunc("GET /admin/snapshots/latest", middleware.WithLogging(adminHandler.GetLatestSnapshot))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("okresy API v1"))
	})

	return mux
}
