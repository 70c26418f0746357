package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// sqlite driver registered as "sqlite".
	_ "modernc.org/sqlite"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// historyTimeLayout has a fixed width so started_at sorts lexically.
const historyTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// HistoryStore records a summary row per project run.
type HistoryStore interface {
	Record(ctx context.Context, report m.RunReport) error
	Latest(ctx context.Context, limit int) ([]m.HistoryEntry, error)
	Close() error
}

// SQLiteHistoryStore keeps run history in a SQLite database.
type SQLiteHistoryStore struct {
	DBPath string
	db     *sql.DB
}

// OpenHistoryStore opens or creates the history database at path.
func OpenHistoryStore(path string) (*SQLiteHistoryStore, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve history db path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o750); err != nil {
		return nil, fmt.Errorf("ensure history db dir: %w", err)
	}

	db, err := sql.Open("sqlite", absPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	store := &SQLiteHistoryStore{
		DBPath: absPath,
		db:     db,
	}

	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteHistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

func (s *SQLiteHistoryStore) ensureSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	project TEXT NOT NULL,
	status TEXT NOT NULL,
	total_tests INTEGER NOT NULL,
	failed_tests INTEGER NOT NULL,
	started_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}

	return nil
}

// Record inserts or replaces the row for report.ID.
func (s *SQLiteHistoryStore) Record(ctx context.Context, report m.RunReport) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (id, project, status, total_tests, failed_tests, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		string(report.Project),
		string(report.Status),
		report.Tests.Total,
		report.Tests.Failed,
		report.StartedAt.UTC().Format(historyTimeLayout),
		report.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", report.ID, err)
	}

	return nil
}

// Latest returns up to limit entries, newest first.
func (s *SQLiteHistoryStore) Latest(ctx context.Context, limit int) ([]m.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, status, total_tests, failed_tests, started_at, duration_ms
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var entries []m.HistoryEntry

	for rows.Next() {
		var (
			entry     m.HistoryEntry
			project   string
			status    string
			startedAt string
		)

		if err := rows.Scan(&entry.ID, &project, &status, &entry.Total, &entry.Failed, &startedAt, &entry.DurationMS); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}

		parsed, err := time.Parse(historyTimeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
		}

		entry.Project = m.Path(project)
		entry.Status = m.RunStatus(status)
		entry.StartedAt = parsed
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
