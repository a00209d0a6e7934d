package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"url-toolkit/internal/config"
	"url-toolkit/internal/lib/logger/slogcute"
	"url-toolkit/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

func main() {
	var direction string

	flag.StringVar(&direction, "direction", directionUp, "Direction to migrate (up or down)")
	cfg := config.MustLoad()

	log := setupLogger()

	log.Info("starting migrator",
		slog.String("env", cfg.Env),
		slog.String("storage_path", cfg.StoragePath),
		slog.String("migration_table", cfg.Migrations.MigrationTable),
		slog.String("direction", direction),
	)

	if err := validateDirection(direction); err != nil {
		log.Error("invalid direction", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runMigrations(log, cfg.StoragePath, cfg.Migrations.MigrationTable, direction); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("migrations completed successfully")
}

func setupLogger() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}

func validateDirection(direction string) error {
	if direction != directionUp && direction != directionDown {
		return fmt.Errorf("invalid direction '%s', must be 'up' or 'down'", direction)
	}
	return nil
}

func runMigrations(log *slog.Logger, storagePath, migrationTable, direction string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	databaseURL := fmt.Sprintf("sqlite3://%s?x-migrations-table=%s", storagePath, migrationTable)

	log.Info("initializing migrator", slog.String("database", databaseURL))

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("failed to close database", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case directionUp:
		log.Info("applying migrations up")
		err = m.Up()
	case directionDown:
		log.Info("applying migrations down")
		err = m.Down()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
