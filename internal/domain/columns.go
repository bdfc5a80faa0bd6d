package domain

import (
	"fmt"
	"regexp"
	"sort"
)

type ColumnType string

const (
	ColumnTypeString   ColumnType = "string"
	ColumnTypeText     ColumnType = "text"
	ColumnTypeInteger  ColumnType = "integer"
	ColumnTypeFloat    ColumnType = "float"
	ColumnTypeBoolean  ColumnType = "boolean"
	ColumnTypeDatetime ColumnType = "datetime"
	ColumnTypeBinary   ColumnType = "binary"
	ColumnTypeForeign  ColumnType = "foreign"
)

const (
	ColumnId        = "id"
	ColumnMessage   = "message"
	ColumnLevel     = "level"
	ColumnGroup     = "lgroup"
	ColumnTime      = "time"
	ColumnUser      = "user"
	ColumnIP        = "ip"
	ColumnException = "exception"
	ColumnTrace     = "trace"
	ColumnContext   = "context"
)

var fixedColumns = []struct {
	name string
	typ  ColumnType
}{
	{ColumnId, ColumnTypeInteger},
	{ColumnMessage, ColumnTypeString},
	{ColumnLevel, ColumnTypeString},
	{ColumnGroup, ColumnTypeString},
	{ColumnTime, ColumnTypeDatetime},
	{ColumnUser, ColumnTypeForeign},
	{ColumnIP, ColumnTypeBinary},
	{ColumnException, ColumnTypeString},
	{ColumnTrace, ColumnTypeText},
	{ColumnContext, ColumnTypeText},
}

var (
	columnNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

	// DefaultSortable are the sort keys honored when a deployment does not configure its own.
	DefaultSortable = []string{ColumnTime, ColumnUser}
)

func isFixedColumn(name string) bool {
	for _, c := range fixedColumns {
		if c.name == name {
			return true
		}
	}
	return false
}

// Columns maps column names to their declared types.
type Columns map[string]ColumnType

func (c Columns) Has(name string) bool {
	_, ok := c[name]
	return ok
}

func ParseColumnType(s string) (ColumnType, error) {
	switch t := ColumnType(s); t {
	case ColumnTypeString, ColumnTypeText, ColumnTypeInteger, ColumnTypeFloat,
		ColumnTypeBoolean, ColumnTypeDatetime, ColumnTypeBinary, ColumnTypeForeign:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumnType, s)
}

// Registry is the column schema of one log table: the fixed columns plus
// the extension columns a deployment adds.
type Registry struct {
	types      Columns
	extensions []string
	sortable   []string
}

func NewRegistry(extensions Columns, sortable []string) (*Registry, error) {
	r := &Registry{types: make(Columns, len(fixedColumns)+len(extensions))}
	for _, c := range fixedColumns {
		r.types[c.name] = c.typ
	}

	for name, typ := range extensions {
		if !columnNameRe.MatchString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColumnName, name)
		}
		if r.types.Has(name) {
			return nil, fmt.Errorf("%w: %q", ErrReservedColumn, name)
		}
		if _, err := ParseColumnType(string(typ)); err != nil {
			return nil, err
		}
		r.types[name] = typ
		r.extensions = append(r.extensions, name)
	}
	sort.Strings(r.extensions)

	if len(sortable) == 0 {
		sortable = DefaultSortable
	}
	for _, name := range sortable {
		if !r.types.Has(name) {
			return nil, fmt.Errorf("%w: sortable %q", ErrUnknownColumn, name)
		}
		r.sortable = append(r.sortable, name)
	}

	return r, nil
}

// MustRegistry is NewRegistry for static schemas; it panics on error.
func MustRegistry(extensions Columns, sortable ...string) *Registry {
	r, err := NewRegistry(extensions, sortable)
	if err != nil {
		panic(err)
	}
	return r
}

// Names lists fixed columns in schema order followed by the sorted extension columns.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for _, c := range fixedColumns {
		names = append(names, c.name)
	}
	return append(names, r.extensions...)
}

func (r *Registry) Type(name string) (ColumnType, bool) {
	t, ok := r.types[name]
	return t, ok
}

func (r *Registry) Extensions() []string {
	return append([]string(nil), r.extensions...)
}

// Writable returns the columns a caller may fill through "_"-prefixed context keys.
func (r *Registry) Writable() Columns {
	cols := Columns{ColumnUser: ColumnTypeForeign}
	for _, name := range r.extensions {
		cols[name] = r.types[name]
	}
	return cols
}

func (r *Registry) Sortable() []string {
	return append([]string(nil), r.sortable...)
}

func (r *Registry) IsSortable(name string) bool {
	for _, s := range r.sortable {
		if s == name {
			return true
		}
	}
	return false
}

// IsIdentifier reports whether name is safe to use as an unquoted table or column name.
func IsIdentifier(name string) bool {
	return columnNameRe.MatchString(name)
}
