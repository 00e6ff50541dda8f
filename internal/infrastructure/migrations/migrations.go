// Package migrations provides database migration support for beanthere.
//
// Schema SQL files are embedded and applied with golang-migrate through a
// custom SQLite driver compatible with ncruces/go-sqlite3 (CGO-free). The
// stock golang-migrate sqlite3 driver cannot be used because it imports
// github.com/mattn/go-sqlite3, which registers the same "sqlite3" driver
// name and collides with the ncruces driver.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var embeddedMigrationsFS embed.FS

// MigrationsFS returns the embedded filesystem containing migration SQL files.
func MigrationsFS() fs.FS {
	return embeddedMigrationsFS
}

// RunMigrations applies all pending migrations to db. A database that is
// already up to date is not an error (migrate.ErrNoChange is swallowed).
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(embeddedMigrationsFS, ".")
	if err != nil {
		return err
	}

	driver, err := WithInstance(db, &Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	return nil
}
