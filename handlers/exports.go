// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/middleware"
	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	store *dataset.Store
	vocab models.Vocabulary
}

func NewExportHandler(store *dataset.Store, vocab models.Vocabulary) *ExportHandler {
	return &ExportHandler{store: store, vocab: vocab}
}

// GetVotesJSON handles GET /export/votes.json
// Returns stats in the precomputed input format
func (h *ExportHandler) GetVotesJSON(w http.ResponseWriter, r *http.Request) {
	d, ok := current(w, h.store)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteVotesJSON(&buf, d.All()); err != nil {
		slog.Error("failed to export votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="votes.json"`)
	w.Write(buf.Bytes())
}

// GetStatsXLSX handles GET /export/stats.xlsx
func (h *ExportHandler) GetStatsXLSX(w http.ResponseWriter, r *http.Request) {
	d, ok := current(w, h.store)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, d.All(), h.vocab); err != nil {
		slog.Error("failed to export workbook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="okresy.xlsx"`)
	w.Write(buf.Bytes())
}
