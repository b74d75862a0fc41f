// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the okresy API server.

okresy serves a choropleth of Czech districts coloured by the word survey
respondents use (dýl or později). Every district gets its answer counts,
percentages and dominant word; ties and districts without answers are drawn
in the neutral colour.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	GEO_PATH=data/okresy.geojson VOTES_PATH=data/votes.json go run .

Or with flags:

	go run . -p 3318 -geo data/okresy.geojson -records data/answers.csv

A .env file in the working directory is read first.

# Configuration

Required settings:

  - GEO_PATH (-geo): District boundaries (GeoJSON)
  - one of VOTES_PATH (-votes), RECORDS_PATH (-records) or DATABASE_URL (-d)

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - VOCABULARY_PATH (-vocab): Accepted words and colours
  - ADMIN_KEY_SALT (-admin-salt): Enables /admin routes
  - CACHE_TTL (-cache-ttl), ALLOWED_ORIGINS (-origins), LOG_LEVEL (-log-level)

# Architecture

  - aggregate: per-district stats, summary and colour selection
  - ingest, geo: survey tables, votes.json, vocabulary and GeoJSON input
  - dataset: concurrent load, join and per-district cache
  - view: tooltip, info panel, styles, legend and hover/select state
  - chart, report: charts and exports
  - handlers, router, middleware: HTTP surface
  - db, auth, cliparse: storage, admin keys, configuration

The dialectctl command (cmd/dialectctl) runs the same pipeline offline.
*/
package main
