// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dialectmap/okresy/auth"
	"github.com/dialectmap/okresy/cliparse"
	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/db"
	"github.com/dialectmap/okresy/middleware"
	"github.com/dialectmap/okresy/models"
)

type AdminHandler struct {
	store *dataset.Store
	cfg   cliparse.Config
	db    *sql.DB
}

// NewAdminHandler takes a nil db when no database is configured; snapshot
// routes then answer 503.
func NewAdminHandler(store *dataset.Store, cfg cliparse.Config, db *sql.DB) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg, db: db}
}

type snapshotRequest struct {
	CreatedBy string `json:"created_by"`
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	adminKey := auth.KeyFromRequest(r)
	err := auth.ValidateAdminKey(auth.ScopeAdmin, adminKey, h.cfg.AdminKeySalt)
	switch {
	case err == nil:
		return true
	case errors.Is(err, auth.ErrAdminDisabled):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Admin routes are disabled")
	default:
		slog.Warn("rejected admin request",
			"path", r.URL.Path,
			"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
		)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
	}
	return false
}

// Reload handles POST /admin/reload
// Loads all sources again; a failure keeps serving the previous data
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	d, err := h.store.Reload(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Reload failed: "+err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{
		Mode:     d.Mode,
		Regions:  len(d.All()),
		Records:  len(d.Records),
		Features: len(d.Features.Features),
		LoadedAt: d.LoadedAt,
	})
}

// CreateSnapshot handles POST /admin/snapshots
// Stores the current stats of every district. The body is optional.
func (h *AdminHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	var req snapshotRequest
	if r.ContentLength > 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}
	if req.CreatedBy == "" {
		req.CreatedBy = "ip:" + auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)
	}

	d, ok := current(w, h.store)
	if !ok {
		return
	}

	snapshot, err := db.SaveSnapshot(r.Context(), h.db, d.All(), req.CreatedBy)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("snapshot saved", "id", snapshot.ID, "regions", len(snapshot.Regions))
	middleware.JSONResponse(w, http.StatusCreated, snapshot)
}

// GetLatestSnapshot handles GET /admin/snapshots/latest
func (h *AdminHandler) GetLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	snapshot, err := db.LatestSnapshot(r.Context(), h.db)
	if errors.Is(err, db.ErrNoSnapshot) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No snapshot stored")
		return
	}
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}
