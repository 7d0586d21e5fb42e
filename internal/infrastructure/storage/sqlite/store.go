// Package sqlite provides the embedded SQLite store and repositories.
// The schema is created on first boot; Rebuild can recreate it from
// scratch. There is no migration system.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/gzip"
	_ "github.com/mattn/go-sqlite3"

	"khata/pkg/logger"
)

// Store owns the single database handle. It is created once in main and
// passed to repositories; there is no package-level connection state.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open opens (or creates) the SQLite database at path.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single active connection: the store itself serializes writers,
	// concurrent requests queue at this level.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// EnsureSchema creates the schema and reference data on a fresh
// database and leaves an initialized one untouched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	initialized, err := s.initialized(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if initialized {
		return nil
	}
	return s.Rebuild(ctx)
}

func (s *Store) initialized(ctx context.Context) (bool, error) {
	const stmt = `SELECT EXISTS(
		SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'settings')`
	var exists bool
	if err := s.db.QueryRowContext(ctx, stmt).Scan(&exists); err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	return exists, nil
}

// Rebuild drops and recreates the full schema, then inserts the fixed
// reference data (default categories, placeholder supplier, settings row).
// All existing data is destroyed.
func (s *Store) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("rebuild schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, seedSQL); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}
	logger.Info(ctx, "database schema rebuilt", "path", s.path)
	return nil
}

// Backup writes a gzip-compressed copy of the database file to w.
// The WAL is checkpointed first so the main file is complete.
func (s *Store) Backup(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == ":memory:" {
		return fmt.Errorf("cannot back up an in-memory database")
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpoint wal: %w", err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open database file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(w)
	if _, err := io.Copy(gz, f); err != nil {
		return fmt.Errorf("compress database: %w", err)
	}
	return gz.Close()
}

// Restore replaces the database file with the gzip-compressed dump read
// from r. The connection is closed for the duration of the swap; no reads
// or writes may be in flight. This is a full-stop maintenance operation.
func (s *Store) Restore(ctx context.Context, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == ":memory:" {
		return fmt.Errorf("cannot restore an in-memory database")
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	defer gz.Close()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "restore-*.db")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, gz); err != nil {
		tmp.Close()
		return fmt.Errorf("write restore file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close restore file: %w", err)
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	// Stale WAL/SHM files belong to the old database.
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		// Reopen the old file so the process stays usable.
		if db, openErr := open(s.path); openErr == nil {
			s.db = db
		}
		return fmt.Errorf("replace database file: %w", err)
	}

	db, err := open(s.path)
	if err != nil {
		return fmt.Errorf("reopen database: %w", err)
	}
	s.db = db
	logger.Info(ctx, "database restored", "path", s.path)
	return nil
}
