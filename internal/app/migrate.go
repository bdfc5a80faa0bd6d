package app

import (
	"errors"
	"strings"
	"time"

	"github.com/Egor213/dblogger/migrations"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	"github.com/Egor213/dblogger/pkg/sqlite"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

// MigratePostgres applies the embedded Postgres migrations, retrying while the server comes up.
func MigratePostgres(pgUrl string) error {
	if !strings.Contains(pgUrl, "?") {
		pgUrl += "?sslmode=disable"
	}
	log.Info("Migrate postgres")

	var (
		connAttempts = defaultAttempts
		err          error
		mgrt         *migrate.Migrate
	)

	for connAttempts > 0 {
		src, srcErr := migrations.Source(migrations.DriverPostgres)
		if srcErr != nil {
			return errorsUtils.WrapPathErr(srcErr)
		}

		mgrt, err = migrate.NewWithSourceInstance("iofs", src, pgUrl)
		if err == nil {
			break
		}

		time.Sleep(defaultTimeout)
		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts)
		connAttempts--
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.Info("Migration successful up")
	return nil
}

// MigrateSQLite applies the embedded SQLite migrations on an open database.
func MigrateSQLite(db *sqlite.SQLite) error {
	log.Info("Migrate sqlite")
	if err := migrations.UpSQLite(db.DB); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	log.Info("Migration successful up")
	return nil
}
