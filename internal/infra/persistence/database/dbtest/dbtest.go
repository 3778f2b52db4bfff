// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"log/slog"
	"testing"

	"jobboard/config"
	"jobboard/internal/infra/persistence/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLite returns a migrated in-memory SQLite database with foreign keys enforced.
// Every call gets its own database; it is closed when the test ends.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.DSN = "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"

	logger := slog.New(slog.DiscardHandler)

	db, err := database.Open(cfg, logger)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = database.MigrateUp(context.Background(), sqlDB, config.DriverSQLite, logger)
	require.NoError(t, err)

	// One connection keeps shared-cache table locks out of the way.
	sqlDB.SetMaxOpenConns(1)

	return db
}
