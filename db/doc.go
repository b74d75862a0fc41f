// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores imported survey responses and statistics snapshots.

# Connecting

	conn, err := db.Open(db.TypeSQLite, "file:okresy.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is portable between SQLite (modernc.org/sqlite) and PostgreSQL
(lib/pq).

# Tables

  - survey_response: one row per answer, grouped in import batches
  - stats_snapshot: immutable JSON copy of all region stats

Responses are loaded back in import order (imported_at, batch_id, position)
so first-seen tie-breaking is stable across restarts.

# Operations

	batchID, err := db.InsertRecords(ctx, conn, records, "users_votes_clean.csv")
	records, err := db.LoadRecords(ctx, conn)
	snap, err := db.SaveSnapshot(ctx, conn, stats, createdBy)
	snap, err := db.LatestSnapshot(ctx, conn)
*/
package db
