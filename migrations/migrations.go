// Package migrations embeds the SQL migrations of every storage driver,
// one directory per golang-migrate database driver name.
package migrations

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS

// Source returns the migration files of one database driver.
func Source(driver string) (source.Driver, error) {
	return iofs.New(FS, driver)
}

// UpSQLite applies the SQLite migrations on an already open database.
// The database is left open, which in-memory databases depend on.
func UpSQLite(db *sql.DB) error {
	src, err := Source(DriverSQLite)
	if err != nil {
		return err
	}

	drv, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, drv)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
