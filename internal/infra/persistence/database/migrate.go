package database

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/database/migrations"

	"github.com/pressly/goose/v3"
)

// NewMigrator returns a goose provider over the embedded migrations of the given driver.
// The provider owns no connection of its own; do not call Close on it when db is shared.
func NewMigrator(db *sql.DB, driver string, logger *slog.Logger) (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		dir     string
	)

	switch driver {
	case config.DriverPostgres:
		dialect, dir = goose.DialectPostgres, "postgres"
	case config.DriverSQLite:
		dialect, dir = goose.DialectSQLite3, "sqlite"
	default:
		return nil, errors.Errorf("unsupported storage driver: %q", driver)
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	opts := []goose.ProviderOption{goose.WithDisableGlobalRegistry(true)}
	if logger != nil {
		opts = append(opts, goose.WithSlog(logger))
	}

	provider, err := goose.NewProvider(dialect, db, fsys, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create migration provider")
	}

	return provider, nil
}

// MigrateUp applies every pending migration.
func MigrateUp(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) ([]*goose.MigrationResult, error) {
	provider, err := NewMigrator(db, driver, logger)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, errors.Wrap(err, "apply migrations")
	}

	return results, nil
}
