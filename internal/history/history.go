// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs in a local SQLite journal so
// past sources, outputs, and failures can be listed later. Recording is
// advisory: a journal failure never fails a conversion.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docwiki/pkg/types"
)

const dbFile = "history.db"

// Store manages the conversion journal database.
type Store struct {
	db *sql.DB
}

// Entry is one journaled conversion run.
type Entry struct {
	ID           int64
	SourcePath   string
	OutputPath   string
	Succeeded    bool
	FailureStage string
	ErrorDetail  string
	RecordedAt   time.Time
}

// NewStore opens or creates the journal database under dir, creating the
// schema when absent.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_path TEXT NOT NULL,
		output_path TEXT,
		succeeded INTEGER NOT NULL,
		failure_stage TEXT,
		error_detail TEXT,
		recorded_at TEXT NOT NULL
	)`)
	return err
}

// Record journals the outcome of one conversion run.
func (s *Store) Record(req types.ConversionRequest, res types.ConversionResult) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (source_path, output_path, succeeded, failure_stage, error_detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		req.SourcePath,
		res.OutputPath,
		res.Succeeded,
		string(res.FailureStage),
		res.ErrorDetail,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first. A non-positive limit
// defaults to 20.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source_path, output_path, succeeded, failure_stage, error_detail, recorded_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var recordedAt string
		if err := rows.Scan(&e.ID, &e.SourcePath, &e.OutputPath, &e.Succeeded, &e.FailureStage, &e.ErrorDetail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, recordedAt); err == nil {
			e.RecordedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
