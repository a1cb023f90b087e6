// Package store persists the invocation history in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

// DefaultListLimit bounds a listing when the filter sets no limit.
const DefaultListLimit = 20

// Store wraps a SQLite database connection for invocation history.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path, creating its directory, and runs migrations.
func New(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing, migrated database connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Path returns the database path, empty for stores built with NewWithDB.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(ctx context.Context, db *sql.DB) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record appends an invocation and returns its row id.
func (s *Store) Record(ctx context.Context, inv domain.Invocation) (int64, error) {
	createdAt := inv.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations
		 (request_id, path, input, outcome, exit_code, duration_us, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.RequestID,
		strings.Join(inv.Path, " "),
		inv.Input,
		inv.Outcome,
		inv.ExitCode,
		inv.Duration.Microseconds(),
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("record invocation: %w", err)
	}
	return result.LastInsertId()
}

// List returns invocations matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.Invocation, error) {
	query := `
		SELECT
			id,
			request_id,
			path,
			input,
			outcome,
			exit_code,
			duration_us,
			created_at
		FROM invocations
	`

	var args []any
	if filter.Outcome != "" {
		query += " WHERE outcome = ?"
		args = append(args, filter.Outcome)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Invocation
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}

	return out, rows.Err()
}

// Clear deletes every invocation.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM invocations")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanInvocation(rows *sql.Rows) (domain.Invocation, error) {
	var (
		inv      domain.Invocation
		path     string
		duration int64
		ts       string
	)

	if err := rows.Scan(
		&inv.ID,
		&inv.RequestID,
		&path,
		&inv.Input,
		&inv.Outcome,
		&inv.ExitCode,
		&duration,
		&ts,
	); err != nil {
		return domain.Invocation{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.Invocation{}, err
	}

	inv.Path = strings.Fields(path)
	inv.Duration = time.Duration(duration) * time.Microsecond
	inv.CreatedAt = t

	return inv, nil
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
