package app

import (
	"fmt"

	"github.com/Egor213/dblogger/internal/config"
	"github.com/Egor213/dblogger/internal/repo"
	"github.com/Egor213/dblogger/internal/repo/repoerrs"
	"github.com/Egor213/dblogger/internal/repo/sqlquery"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	"github.com/Egor213/dblogger/pkg/postgres"
	"github.com/Egor213/dblogger/pkg/sqlite"
	log "github.com/sirupsen/logrus"
)

// openStorage migrates and connects the configured backend. The returned
// func releases the connection.
func openStorage(cfg *config.Config) (*repo.Repositories, func(), error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, nil, errorsUtils.WrapPathErr(err)
	}

	if cfg.Storage.Table != sqlquery.DefaultTable {
		log.WithField("table", cfg.Storage.Table).
			Warn("Migrations only provision the default table, the configured table must already exist")
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if err := MigratePostgres(cfg.PG.URL); err != nil {
			return nil, nil, err
		}

		log.Info("Connecting to DB")
		pg, err := postgres.New(cfg.PG.URL,
			postgres.MaxPoolSize(cfg.PG.MaxPoolSize),
			postgres.ConnAttempts(cfg.PG.ConnAttempts),
			postgres.ConnTimeout(cfg.PG.ConnTimeout),
		)
		if err != nil {
			return nil, nil, errorsUtils.WrapPathErr(err)
		}
		log.Info("Connected to DB")

		return repo.NewPostgresRepositories(pg, cfg.Storage.Table, reg), pg.Close, nil

	case config.DriverSQLite:
		log.WithField("path", cfg.SQLite.Path).Info("Opening SQLite database")
		db, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, errorsUtils.WrapPathErr(err)
		}
		if err := MigrateSQLite(db); err != nil {
			db.Close()
			return nil, nil, err
		}

		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}
		return repo.NewSQLiteRepositories(db, cfg.Storage.Table, reg), closeFn, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", repoerrs.ErrUnknownDriver, cfg.Storage.Driver)
}
