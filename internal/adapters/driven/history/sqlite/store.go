// Package sqlite persists export run history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// schema holds the run history table. Kept as a single statement; the
// table has had one shape since the feature was added.
const schema = `
CREATE TABLE IF NOT EXISTS export_runs (
	id          TEXT PRIMARY KEY,
	root        TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	copied      INTEGER NOT NULL,
	skipped     INTEGER NOT NULL
)`

// Store is a SQLite-backed run history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite history store in the specified data
// directory. If dataDir is empty, defaults to ~/.paperless-export.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".paperless-export")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRun stores a completed run.
func (s *Store) SaveRun(ctx context.Context, run *domain.ExportRun) error {
	if run == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO export_runs (id, root, started_at, finished_at, copied, skipped)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Root,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Copied,
		run.Skipped,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
// A limit of 0 returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.ExportRun, error) {
	query := `
		SELECT id, root, started_at, finished_at, copied, skipped
		FROM export_runs
		ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ExportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// scanRun reads one history row.
func scanRun(rows *sql.Rows) (*domain.ExportRun, error) {
	var run domain.ExportRun
	var started, finished string

	if err := rows.Scan(&run.ID, &run.Root, &started, &finished, &run.Copied, &run.Skipped); err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	var err error
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}

	return &run, nil
}
