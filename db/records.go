// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

var ErrNoSnapshot = errors.New("no snapshot stored")

// InsertRecords stores one import batch in a single transaction and returns
// the batch ID.
func InsertRecords(ctx context.Context, db *sql.DB, records []models.SurveyRecord, source string) (string, error) {
	batchID := uuid.NewString()
	importedAt := time.Now().UTC()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO survey_response (id, batch_id, position, word, region, region_key, source, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx,
			uuid.NewString(), batchID, i, r.Word, r.Region,
			aggregate.NormalizeKey(r.Region), source, importedAt,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}
	return batchID, nil
}

// LoadRecords returns every stored response in import order.
func LoadRecords(ctx context.Context, db *sql.DB) ([]models.SurveyRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT word, region
		FROM survey_response
		ORDER BY imported_at, batch_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []models.SurveyRecord{}
	for rows.Next() {
		var r models.SurveyRecord
		if err := rows.Scan(&r.Word, &r.Region); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords returns the number of stored responses.
func CountRecords(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM survey_response`).Scan(&n)
	return n, err
}

// SaveSnapshot stores an immutable copy of the computed stats.
func SaveSnapshot(ctx context.Context, db *sql.DB, stats map[string]models.RegionStats, createdBy string) (models.Snapshot, error) {
	snap := models.Snapshot{
		ID:         uuid.NewString(),
		ComputedAt: time.Now().UTC(),
		CreatedBy:  createdBy,
		Regions:    stats,
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO stats_snapshot (id, computed_at, created_by, region_count, payload)
		VALUES ($1, $2, $3, $4, $5)
	`, snap.ID, snap.ComputedAt, createdBy, len(stats), string(payload))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return snap, nil
}

// LatestSnapshot returns the most recent snapshot or ErrNoSnapshot.
func LatestSnapshot(ctx context.Context, db *sql.DB) (models.Snapshot, error) {
	var (
		snap      models.Snapshot
		createdBy sql.NullString
		payload   string
	)
	err := db.QueryRowContext(ctx, `
		SELECT id, computed_at, created_by, payload
		FROM stats_snapshot
		ORDER BY computed_at DESC
		LIMIT 1
	`).Scan(&snap.ID, &snap.ComputedAt, &createdBy, &payload)
	if err == sql.ErrNoRows {
		return models.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &snap.Regions); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse snapshot payload: %w", err)
	}
	snap.CreatedBy = createdBy.String
	return snap, nil
}
