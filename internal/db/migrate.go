package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"perfcore/db/migrations"
)

// Migrate applies the embedded migrations up to migrations.Version. It
// refuses to run against a database left dirty by a failed migration.
func Migrate(addr string) error {
	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	target, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return err
	}

	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithInstance("iofs", driver, "postgres", target)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
