package sqlquery_test

import (
	"testing"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	"github.com/Egor213/dblogger/internal/repo/sqlquery"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	table  = sqlquery.NewTable("", domain.MustRegistry(domain.Columns{"request_id": domain.ColumnTypeString}))
)

func TestTable_Insert(t *testing.T) {
	sql, args, err := table.Insert(dollar, repotypes.Fields{
		"message":    "hello",
		"level":      "info",
		"lgroup":     "",
		"user":       false,
		"request_id": "abc",
		"bogus":      "dropped",
		"id":         int64(5),
	}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, `INSERT INTO "logs"`)
	assert.Contains(t, sql, `("level","lgroup","message","request_id","user")`)
	assert.NotContains(t, sql, "bogus")
	assert.Equal(t, []any{"info", "", "hello", "abc", nil}, args)
}

func TestTable_Select(t *testing.T) {
	testCases := []struct {
		name      string
		filter    repotypes.LogFilter
		contains  []string
		excludes  []string
		wantArgs  []any
	}{
		{
			name:     "no filter",
			filter:   repotypes.LogFilter{},
			contains: []string{`FROM "logs"`, `ORDER BY "id" ASC`},
			excludes: []string{"WHERE", "LIMIT", "OFFSET"},
		},
		{
			name: "message, level and sort",
			filter: repotypes.LogFilter{
				Message: "50%_off",
				Level:   "error",
				OrderBy: "time",
				Desc:    true,
				Limit:   10,
				Offset:  20,
			},
			contains: []string{
				`"message" LIKE $1 ESCAPE '\'`,
				`"level" = $2`,
				`ORDER BY "time" DESC, "id" DESC`,
				"LIMIT 10",
				"OFFSET 20",
			},
			wantArgs: []any{`%50\%\_off%`, "error"},
		},
		{
			name:     "unsortable column ignored",
			filter:   repotypes.LogFilter{OrderBy: "message; DROP TABLE logs"},
			contains: []string{`ORDER BY "id" ASC`},
			excludes: []string{"DROP"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := table.Select(dollar, tc.filter).ToSql()

			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, sql, s)
			}
			assert.Equal(t, len(tc.wantArgs), len(args))
			if len(tc.wantArgs) > 0 {
				assert.Equal(t, tc.wantArgs, args)
			}
		})
	}
}

func TestTable_Count(t *testing.T) {
	sql, args, err := table.Count(dollar, repotypes.LogFilter{Level: "debug", Limit: 5, Offset: 5}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, `SELECT COUNT(*) FROM "logs" WHERE`)
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []any{"debug"}, args)
}

func TestStorageValue(t *testing.T) {
	assert.Nil(t, sqlquery.StorageValue("user", false))
	assert.Equal(t, int64(2), sqlquery.StorageValue("user", 2))

	long := make([]rune, 300)
	for i := range long {
		long[i] = 'x'
	}
	got := sqlquery.StorageValue("message", string(long))
	assert.Len(t, got, 255)

	assert.Equal(t, "v", sqlquery.StorageValue("request_id", "v"))
}
