package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"jobboard/config"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/infra/persistence/database"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// Supported subcommands:
// - up:     apply every pending migration
// - down:   roll back the most recent migration
// - status: list migrations and when they were applied

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	driver := fs.String("driver", "", "Storage driver (postgres, sqlite); defaults to storage.driver")
	dsn := fs.String("dsn", "", "Connection string; defaults to storage.dsn")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1], *driver, *dsn, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command, driver, dsn string, logger *slog.Logger) error {
	cfg, err := loadStorageConfig(driver, dsn)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	provider, err := database.NewMigrator(sqlDB, cfg.Storage.Driver, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*lifecycle.DefaultTimeout)
	defer cancel()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return errors.Wrap(err, "migrate up")
		}
		printResults(results)
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return errors.Wrap(err, "migrate down")
		}
		printResults([]*goose.MigrationResult{result})
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return errors.Wrap(err, "migrate status")
		}
		for _, status := range statuses {
			applied := "pending"
			if status.State == goose.StateApplied {
				applied = status.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-6d %-40s %s\n", status.Source.Version, status.Source.Path, applied)
		}
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", command)
	}

	return nil
}

// loadStorageConfig reads the storage section only, so migrations run without the
// signing secret the server requires.
func loadStorageConfig(driver, dsn string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv[config.Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if driver != "" {
		cfg.Storage.Driver = driver
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = config.DriverPostgres
	}
	if dsn != "" {
		cfg.Storage.DSN = dsn
	}
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return nil, config.ErrMissingStorageDSN
	}

	// Migrations always target the primary.
	cfg.Storage.Replicas = nil

	return cfg, nil
}

func printResults(results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Println("no migrations to run")

		return
	}

	for _, result := range results {
		fmt.Println(result)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up        Apply all pending migrations")
	fmt.Println("  down      Roll back the most recent migration")
	fmt.Println("  status    Show migration status")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -driver   postgres or sqlite")
	fmt.Println("  -dsn      connection string")
}
