package repoerrs

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrSchema        = errors.New("log table does not match the column registry")
)
