// Package database contains the concrete implementation of the persistence layer using GORM
// over PostgreSQL or SQLite.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its lifetime to the fx application:
// the connection is pinged (and migrated when storage.autoMigrate is set) on start and
// closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if params.Config.Storage.AutoMigrate {
				if _, err := MigrateUp(ctx, sqlDB, params.Config.Storage.Driver, params.Logger); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open builds a *gorm.DB for the configured driver, registers read replicas and applies the
// pool settings. It does not touch the network beyond what the driver does on open.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	storage := cfg.Storage

	primary, err := dialector(storage.Driver, storage.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(primary, &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", storage.Driver)
	}

	if len(storage.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(storage.Replicas))
		for _, dsn := range storage.Replicas {
			replica, err := dialector(storage.Driver, dsn)
			if err != nil {
				return nil, err
			}
			replicas = append(replicas, replica)
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas:          replicas,
			Policy:            dbresolver.RandomPolicy{},
			TraceResolverMode: cfg.Env.Debug,
		})
		applyResolverPool(resolver, storage)

		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	applyPool(sqlDB, storage)

	return db, nil
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.Errorf("unsupported storage driver: %q", driver)
	}
}

func applyPool(sqlDB *sql.DB, storage config.StorageConfig) {
	if storage.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(storage.MaxOpenConns)
	}
	if storage.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(storage.MaxIdleConns)
	}
	if storage.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(storage.ConnMaxLifetime)
	}
}

func applyResolverPool(resolver *dbresolver.DBResolver, storage config.StorageConfig) {
	if storage.MaxOpenConns > 0 {
		resolver.SetMaxOpenConns(storage.MaxOpenConns)
	}
	if storage.MaxIdleConns > 0 {
		resolver.SetMaxIdleConns(storage.MaxIdleConns)
	}
	if storage.ConnMaxLifetime > 0 {
		resolver.SetConnMaxLifetime(storage.ConnMaxLifetime)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
