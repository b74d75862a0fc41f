// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the district map API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg, vocab, db)

db may be nil; the snapshot routes then answer 503.

# Endpoints

Health:

	GET /health

Districts (public):

	GET /regions                    - Stats of every district with answers
	GET /regions/{name}             - Stats, summary, colour and info panel
	GET /regions/{name}/tooltip     - Tooltip lines
	GET /regions/{name}/chart       - Donut chart (HTML)
	GET /regions/{name}/chart.png   - Bar chart (PNG)

Map layer:

	GET /map    - Boundaries with colour, style and tooltip per district
	GET /legend - Legend entries and survey link

Exports:

	GET /export/votes.json - Precomputed stats
	GET /export/stats.xlsx - Workbook, one row per district

Operator (requires X-Admin-Key or Authorization: Bearer):

	POST /admin/reload            - Reload all sources
	POST /admin/snapshots         - Store the current stats
	GET  /admin/snapshots/latest  - Most recent stored stats

Districts are matched ignoring case and diacritics. A district without
answers returns empty stats; every data route answers 503 until the first
load succeeds.
*/
package router
