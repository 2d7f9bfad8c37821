// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive records completed digest runs in a SQLite database. The
// pipeline only ever writes here; no run reads the archive, so every run
// still starts with cold deduplication state. The history subcommand reads
// it back for display.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Store manages the run-archive SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	ran_at        TEXT NOT NULL,
	window_start  TEXT NOT NULL,
	window_end    TEXT NOT NULL,
	topic_count   INTEGER NOT NULL,
	record_count  INTEGER NOT NULL,
	delivered     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_topics (
	run_id        INTEGER NOT NULL REFERENCES runs(id),
	topic         TEXT NOT NULL,
	record_count  INTEGER NOT NULL
);`
	_, err := s.db.Exec(schema)
	return err
}

// Run describes one completed digest run.
type Run struct {
	ID          int64
	RanAt       time.Time
	WindowStart time.Time
	WindowEnd   time.Time
	TopicCount  int
	RecordCount int
	Delivered   bool
}

// RecordRun inserts a run row and one row per topic section, in a single
// transaction.
func (s *Store) RecordRun(run Run, sections []types.TopicSection) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (ran_at, window_start, window_end, topic_count, record_count, delivered)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RanAt.Format(time.RFC3339),
		run.WindowStart.Format(time.RFC3339),
		run.WindowEnd.Format(time.RFC3339),
		run.TopicCount,
		run.RecordCount,
		boolToInt(run.Delivered),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run id: %w", err)
	}

	for _, section := range sections {
		if _, err := tx.Exec(
			`INSERT INTO run_topics (run_id, topic, record_count) VALUES (?, ?, ?)`,
			runID, section.Topic, len(section.Records),
		); err != nil {
			return fmt.Errorf("inserting topic %q: %w", section.Topic, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// defaults to 20.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, ran_at, window_start, window_end, topic_count, record_count, delivered
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ranAt, wStart, wEnd string
		var delivered int
		if err := rows.Scan(&r.ID, &ranAt, &wStart, &wEnd, &r.TopicCount, &r.RecordCount, &delivered); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.RanAt, _ = time.Parse(time.RFC3339, ranAt)
		r.WindowStart, _ = time.Parse(time.RFC3339, wStart)
		r.WindowEnd, _ = time.Parse(time.RFC3339, wEnd)
		r.Delivered = delivered != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
