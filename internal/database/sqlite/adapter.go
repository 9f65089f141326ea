package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const connParams = "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on"

// ErrStoreNotFound is returned by Open when the database file is missing.
var ErrStoreNotFound = errors.New("store not found")

// Store is a single-file SQLite database holding the sales tables.
type Store struct {
	db   *sql.DB
	qb   squirrel.StatementBuilderType
	path string
}

// Recreate deletes any database at path (with its WAL and shared-memory
// files) and opens a fresh, empty one.
func Recreate(path string) (*Store, error) {
	if err := removeFiles(path); err != nil {
		return nil, err
	}
	return connect(path)
}

// Open connects to an existing database file.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return connect(path)
}

func connect(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+connParams)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return &Store{
		db:   db,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		path: path,
	}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Discard closes the store and deletes its files. It is used when a run
// fails and the partial database must not be mistaken for output.
func (s *Store) Discard() error {
	closeErr := s.Close()
	if err := removeFiles(s.path); err != nil {
		return err
	}
	return closeErr
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateSchema executes the DDL statements in a single transaction.
func (s *Store) CreateSchema(ctx context.Context, statements []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement '%s': %w", stmt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}

func removeFiles(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}
