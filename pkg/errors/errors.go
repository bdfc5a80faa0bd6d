package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeNotNullViolation = "23502"
	CodeUndefinedTable   = "42P01"
	CodeUndefinedColumn  = "42703"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsNotNullViolation(err error) bool {
	return Is(err, CodeNotNullViolation)
}

func IsUndefinedColumn(err error) bool {
	return Is(err, CodeUndefinedColumn)
}

func IsUndefinedTable(err error) bool {
	return Is(err, CodeUndefinedTable)
}

// IsSchemaMismatch reports errors caused by a table that does not match the configured columns.
func IsSchemaMismatch(err error) bool {
	return IsUndefinedTable(err) || IsUndefinedColumn(err) || IsNotNullViolation(err)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
