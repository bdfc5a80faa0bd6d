package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	errorsUtils "github.com/Egor213/dblogger/pkg/errors"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const MemoryPath = ":memory:"

type SQLite struct {
	Builder squirrel.StatementBuilderType
	DB      *sql.DB
}

// New opens the database file at path, creating its directory when needed.
// An in-memory database is pinned to a single connection so every statement sees the same data.
func New(path string) (*SQLite, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, errorsUtils.WrapPathErr(err)
	}

	return &SQLite{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		DB:      db,
	}, nil
}

func (s *SQLite) Close() error {
	return s.DB.Close()
}
