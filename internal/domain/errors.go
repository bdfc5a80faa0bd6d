package domain

import "errors"

var (
	ErrUnknownColumnType = errors.New("unknown column type")
	ErrInvalidColumnName = errors.New("invalid column name")
	ErrReservedColumn    = errors.New("column name is reserved")
	ErrUnknownColumn     = errors.New("unknown column")
)
