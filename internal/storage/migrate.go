package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsTable holds golang-migrate's version bookkeeping inside the
// export database. The leading underscore sets it apart from the exported
// expenses table.
const MigrationsTable = "_expensejournal_schema"

// RunMigrations brings the export database at dbPath up to the embedded
// schema. It is called every time an export opens the file, so an existing
// export is reused and an older one gains any newer tables. The only user
// data table is expenses; version history lives in MigrationsTable.
func RunMigrations(dbPath string) error {
	// migrate.Close closes the handle it is given, so it gets its own.
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open export database for migration: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{MigrationsTable: MigrationsTable})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate export schema: %w", err)
	}

	return nil
}
