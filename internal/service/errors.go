package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLevel      = errors.New("invalid log level")
	ErrInvalidPagination = errors.New("page and per page must be positive")
)

// StorageError wraps a failure of the storage backend.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
