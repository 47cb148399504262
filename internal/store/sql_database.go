package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/migrations"
)

// DB is the local snapshot database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	db.logger.Debug().Int("applied", applied).Msg("snapshot schema migrated")
	return nil
}
