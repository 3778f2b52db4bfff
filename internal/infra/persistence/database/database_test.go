package database

import (
	"context"
	"log/slog"
	"testing"

	"jobboard/config"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sqliteConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.DSN = "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"

	return cfg
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Storage.Driver = "oracle"

	_, err := Open(cfg, newDiscardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage driver")
}

func TestOpen_WithReplicas(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Storage.Replicas = []string{"file:" + uuid.NewString() + "?mode=memory&cache=shared"}
	cfg.Storage.MaxOpenConns = 4
	cfg.Storage.MaxIdleConns = 2

	db, err := Open(cfg, newDiscardLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.PingContext(context.Background()))
}

func TestMigrations_UpStatusDown(t *testing.T) {
	cfg := sqliteConfig()
	db, err := Open(cfg, newDiscardLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()

	results, err := MigrateUp(ctx, sqlDB, config.DriverSQLite, newDiscardLogger())
	require.NoError(t, err)
	assert.Len(t, results, 2)

	migrator, err := NewMigrator(sqlDB, config.DriverSQLite, newDiscardLogger())
	require.NoError(t, err)

	statuses, err := migrator.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Equal(t, goose.StateApplied, status.State)
	}

	assert.True(t, db.Migrator().HasTable("accounts"))
	assert.True(t, db.Migrator().HasTable("job_postings"))

	down, err := migrator.Down(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), down.Source.Version)
	assert.False(t, db.Migrator().HasTable("job_postings"))

	// Re-applying is idempotent for already applied versions.
	results, err = MigrateUp(ctx, sqlDB, config.DriverSQLite, newDiscardLogger())
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestNewMigrator_UnsupportedDriver(t *testing.T) {
	_, err := NewMigrator(nil, "mysql", nil)
	assert.Error(t, err)
}
