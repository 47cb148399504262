// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository returns a SQLite-backed [SnapshotRepository].
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// Load returns the snapshot of deviceID or [ErrSnapshotNotFound].
func (r *snapshotRepository) Load(ctx context.Context, deviceID string) (models.StateSnapshot, error) {
	query, args, err := buildSelectSnapshotQuery(deviceID)
	if err != nil {
		return models.StateSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var snapshot models.StateSnapshot
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&snapshot.DeviceID, &snapshot.Payload, &snapshot.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StateSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.Load").
			Str("device_id", deviceID).
			Msg("failed to query state snapshot")
		return models.StateSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snapshot, nil
}

// Save inserts or replaces the snapshot of snapshot.DeviceID.
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.StateSnapshot) error {
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildUpsertSnapshotQuery(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.Save").
			Str("device_id", snapshot.DeviceID).
			Msg("failed to execute upsert for state snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrSnapshotNotSaved
	}

	return nil
}
