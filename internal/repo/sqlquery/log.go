package sqlquery

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultTable = "logs"

	maxMessageLength   = 255
	maxExceptionLength = 255
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Table builds the statements of one log table for either backend.
type Table struct {
	Name     string
	Registry *domain.Registry
}

func NewTable(name string, reg *domain.Registry) Table {
	if name == "" {
		name = DefaultTable
	}
	return Table{Name: name, Registry: reg}
}

func Quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (t Table) Insert(b sq.StatementBuilderType, fields repotypes.Fields) sq.InsertBuilder {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := t.Registry.Type(name); ok && name != domain.ColumnId {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	cols := make([]string, len(names))
	vals := make([]any, len(names))
	for i, name := range names {
		cols[i] = Quote(name)
		vals[i] = StorageValue(name, fields[name])
	}

	return b.Insert(Quote(t.Name)).Columns(cols...).Values(vals...)
}

func (t Table) Select(b sq.StatementBuilderType, filter repotypes.LogFilter) sq.SelectBuilder {
	query := b.Select(t.columns()...).From(Quote(t.Name))

	if conds := Conditions(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	dir := "ASC"
	if filter.Desc {
		dir = "DESC"
	}
	if filter.OrderBy != "" && t.Registry.IsSortable(filter.OrderBy) {
		query = query.OrderBy(Quote(filter.OrderBy)+" "+dir, Quote(domain.ColumnId)+" "+dir)
	} else {
		query = query.OrderBy(Quote(domain.ColumnId) + " ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

func (t Table) Count(b sq.StatementBuilderType, filter repotypes.LogFilter) sq.SelectBuilder {
	query := b.Select("COUNT(*)").From(Quote(t.Name))
	if conds := Conditions(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	return query
}

func (t Table) Get(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(t.columns()...).
		From(Quote(t.Name)).
		Where(sq.Eq{Quote(domain.ColumnId): id})
}

func (t Table) columns() []string {
	names := t.Registry.Names()
	cols := make([]string, len(names))
	for i, name := range names {
		cols[i] = Quote(name)
	}
	return cols
}

// Conditions translates a filter into AND-ed predicates.
func Conditions(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Message != "" {
		conds = append(conds, sq.Expr(
			Quote(domain.ColumnMessage)+` LIKE ? ESCAPE '\'`,
			"%"+likeEscaper.Replace(filter.Message)+"%",
		))
	}
	if filter.Level != "" {
		conds = append(conds, sq.Eq{Quote(domain.ColumnLevel): filter.Level})
	}
	return conds
}

// StorageValue converts a field value to what the column stores.
func StorageValue(name string, v any) any {
	switch name {
	case domain.ColumnUser:
		if id, ok := domain.ActorID(v); ok {
			return id
		}
		return nil
	case domain.ColumnMessage:
		return truncate(v, maxMessageLength)
	case domain.ColumnException:
		return truncate(v, maxExceptionLength)
	}
	return v
}

func truncate(v any, n int) any {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) <= n {
		return v
	}
	return string([]rune(s)[:n])
}
