package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
)

// DeviceStorages groups the device-side repositories.
type DeviceStorages struct {
	// Snapshots is nil when no database DSN is configured.
	Snapshots SnapshotRepository

	db *DB
}

// NewDeviceStorages initialises the device storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to cfg.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [SnapshotRepository] to the connection.
//
// An empty DSN disables persistence and yields empty storages.
func NewDeviceStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DeviceStorages, error) {
	if cfg.DSN == "" {
		logger.Info().Msg("state snapshots disabled: no database configured")
		return &DeviceStorages{}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &DeviceStorages{
		Snapshots: NewSnapshotRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the database connection, if any.
func (s *DeviceStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
