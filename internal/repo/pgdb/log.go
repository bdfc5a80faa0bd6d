package pgdb

import (
	"context"
	"fmt"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/repoerrs"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	"github.com/Egor213/dblogger/internal/repo/sqlquery"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	"github.com/Egor213/dblogger/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type LogRepo struct {
	*postgres.Postgres
	table sqlquery.Table
}

func NewLogRepo(pg *postgres.Postgres, table sqlquery.Table) *LogRepo {
	return &LogRepo{Postgres: pg, table: table}
}

func (r *LogRepo) Insert(ctx context.Context, fields repotypes.Fields) (int64, error) {
	// The time column is TIMESTAMP; hand pgx a time.Time rather than text.
	if v, ok := fields[domain.ColumnTime]; ok {
		prepared := make(repotypes.Fields, len(fields))
		for k, val := range fields {
			prepared[k] = val
		}
		if t := domain.ParseTime(v); t != nil {
			prepared[domain.ColumnTime] = *t
		} else {
			prepared[domain.ColumnTime] = nil
		}
		fields = prepared
	}

	sql, args, err := r.table.Insert(r.Builder, fields).
		Suffix("RETURNING " + sqlquery.Quote(domain.ColumnId)).
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int64
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsSchemaMismatch(err) {
			return 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", repoerrs.ErrSchema, err))
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *LogRepo) Query(ctx context.Context, filter repotypes.LogFilter) ([]repotypes.Row, int, error) {
	var (
		rows  []repotypes.Row
		total int
	)

	// Count and page are read in one transaction so the total matches the page.
	err := r.within(ctx, func(ctx context.Context) error {
		sql, args, err := r.table.Count(r.Builder, filter).ToSql()
		if err != nil {
			return err
		}
		if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
			return err
		}
		if total == 0 {
			return nil
		}

		rows, err = r.selectRows(ctx, r.table.Select(r.Builder, filter))
		return err
	})
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}

	if rows == nil {
		rows = []repotypes.Row{}
	}
	return rows, total, nil
}

func (r *LogRepo) Get(ctx context.Context, id int64) (repotypes.Row, error) {
	rows, err := r.selectRows(ctx, r.table.Get(r.Builder, id))
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

func (r *LogRepo) selectRows(ctx context.Context, query sq.Sqlizer) ([]repotypes.Row, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	pgRows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer pgRows.Close()

	maps, err := pgx.CollectRows(pgRows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	rows := make([]repotypes.Row, len(maps))
	for i, m := range maps {
		rows[i] = m
	}
	return rows, nil
}

func (r *LogRepo) within(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.TrManager == nil {
		return fn(ctx)
	}
	return r.TrManager.Do(ctx, fn)
}
