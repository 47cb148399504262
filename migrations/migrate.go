package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to the SQLite database db and
// returns the number of migrations applied by this call.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
