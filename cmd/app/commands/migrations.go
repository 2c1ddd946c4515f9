package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/jsondocs/internal/database"
)

// migrationsPath returns the migration source for driver.
func migrationsPath(driver string) string {
	if driver == database.DriverMySQL {
		return "file://migrations/mysql"
	}
	return "file://migrations/postgresql"
}

// migrationURL turns a go-sql-driver/mysql DSN into the mysql:// URL golang-migrate expects,
// enabling multi-statement execution since one migration file creates several tables.
// PostgreSQL URLs are used as is.
func migrationURL(driver, dsn string) string {
	if driver != database.DriverMySQL {
		return dsn
	}
	if !strings.HasPrefix(dsn, "mysql://") {
		dsn = "mysql://" + dsn
	}
	if !strings.Contains(dsn, "multiStatements=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "multiStatements=true"
	}
	return dsn
}

// RunMigrations applies every pending migration for the configured driver. The roles table
// is seeded by the first migration, so grant-capabilities can run right after.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	m, err := migrate.New(migrationsPath(driver), migrationURL(driver, connectionString))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
