// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /regions", middleware.WithLogging(handler))

Logs method, path, client IP, status and duration_ms once the handler returns.

# Panics and CORS

Wrap the whole mux:

	handler := middleware.Recover(middleware.CORS(mux, cfg.AllowedOrigins))

Recover answers a panicking request with a 500 JSON error. CORS allows GET
and POST with the X-Admin-Key or Authorization header; with no configured origins any origin
may read.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusServiceUnavailable, "data not loaded")

JSON output keeps Czech text and angle brackets unescaped.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr. The admin handlers
store only a salted hash of it.
*/
package middleware
