package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/repoerrs"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	"github.com/Egor213/dblogger/internal/repo/sqlquery"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	"github.com/Egor213/dblogger/pkg/sqlite"
	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type LogRepo struct {
	*sqlite.SQLite
	table sqlquery.Table
}

func NewLogRepo(db *sqlite.SQLite, table sqlquery.Table) *LogRepo {
	return &LogRepo{SQLite: db, table: table}
}

func (r *LogRepo) Insert(ctx context.Context, fields repotypes.Fields) (int64, error) {
	query, args, err := r.table.Insert(r.Builder, fields).ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isSchemaMismatch(err) {
			return 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", repoerrs.ErrSchema, err))
		}
		return 0, errorsUtils.WrapPathErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *LogRepo) Query(ctx context.Context, filter repotypes.LogFilter) ([]repotypes.Row, int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}
	defer tx.Rollback()

	query, args, err := r.table.Count(r.Builder, filter).ToSql()
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}

	var total int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}
	if total == 0 {
		return []repotypes.Row{}, 0, nil
	}

	rows, err := selectRows(ctx, tx, r.table.Select(r.Builder, filter))
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}
	return rows, total, nil
}

func (r *LogRepo) Get(ctx context.Context, id int64) (repotypes.Row, error) {
	rows, err := selectRows(ctx, r.DB, r.table.Get(r.Builder, id))
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if len(rows) == 0 {
		return nil, errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return rows[0], nil
}

func (r *LogRepo) RegisteredColumns() domain.Columns {
	return r.table.Registry.Writable()
}

func (r *LogRepo) RegisteredSortableColumns() []string {
	return r.table.Registry.Sortable()
}

func selectRows(ctx context.Context, db queryer, q sq.Sqlizer) ([]repotypes.Row, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := []repotypes.Row{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(repotypes.Row, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// isSchemaMismatch reports a missing table or column, or a NOT NULL column the registry does not fill.
func isSchemaMismatch(err error) bool {
	var sqErr sqlite3.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	if sqErr.ExtendedCode == sqlite3.ErrConstraintNotNull {
		return true
	}
	msg := sqErr.Error()
	return sqErr.Code == sqlite3.ErrError &&
		(strings.Contains(msg, "no such table") || strings.Contains(msg, "has no column named"))
}
