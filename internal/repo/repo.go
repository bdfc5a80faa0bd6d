package repo

import (
	"context"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/pgdb"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	"github.com/Egor213/dblogger/internal/repo/sqlitedb"
	"github.com/Egor213/dblogger/internal/repo/sqlquery"
	"github.com/Egor213/dblogger/pkg/postgres"
	"github.com/Egor213/dblogger/pkg/sqlite"
)

// Log is the row store behind the logger.
type Log interface {
	Insert(ctx context.Context, fields repotypes.Fields) (int64, error)
	Query(ctx context.Context, filter repotypes.LogFilter) ([]repotypes.Row, int, error)
	Get(ctx context.Context, id int64) (repotypes.Row, error)
	RegisteredColumns() domain.Columns
	RegisteredSortableColumns() []string
}

type Repositories struct {
	Log
	Registry *domain.Registry
}

func NewPostgresRepositories(pg *postgres.Postgres, table string, reg *domain.Registry) *Repositories {
	return &Repositories{
		Log:      pgdb.NewLogRepo(pg, sqlquery.NewTable(table, reg)),
		Registry: reg,
	}
}

func NewSQLiteRepositories(db *sqlite.SQLite, table string, reg *domain.Registry) *Repositories {
	return &Repositories{
		Log:      sqlitedb.NewLogRepo(db, sqlquery.NewTable(table, reg)),
		Registry: reg,
	}
}
