// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers of the district map API.

# Handlers

  - RegionsHandler: district stats, info panel and tooltip
  - MapHandler: decorated boundary GeoJSON and legend
  - ChartHandler: donut (HTML) and bar (PNG) charts of one district
  - ExportHandler: votes.json and XLSX exports
  - AdminHandler: reload and snapshots, guarded by the operator key

All handlers read from a dataset.Store:

	regions := handlers.NewRegionsHandler(store, presenter)

# Errors

While no dataset has loaded every data handler answers 503 with the load
error. A district that is not in the data is not an error: it gets empty
stats and the "no data" panel. Charts of such a district answer 404.

# Admin Authentication

Admin routes expect the key derived from ADMIN_KEY_SALT:

	key := auth.GenerateAdminKey(auth.ScopeAdmin, salt)

The key goes in X-Admin-Key or as "Authorization: Bearer <key>". Without a salt the admin routes answer 503.
*/
package handlers
