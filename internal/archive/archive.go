// Package archive records diagnostics of every run in a SQLite database so
// results can be compared across runs.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/funvibe/declcheck/internal/diagnostics"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	file       TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	total      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS diagnostics (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	seq     INTEGER NOT NULL,
	code    TEXT NOT NULL,
	kind    TEXT NOT NULL,
	line    INTEGER NOT NULL,
	col     INTEGER NOT NULL,
	message TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);
CREATE INDEX IF NOT EXISTS diagnostics_code ON diagnostics(code);
`

// Run is one recorded check of one file.
type Run struct {
	ID        string
	File      string
	StartedAt time.Time
	Total     int
}

// Entry is one archived diagnostic.
type Entry struct {
	Code    string
	Kind    string
	Line    int
	Column  int
	Message string
}

// Archive is a handle to the run database.
type Archive struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the archive at path.
func Open(ctx context.Context, path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema in %s: %w", path, err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// NewRunID returns a fresh identifier for Record.
func NewRunID() string {
	return uuid.NewString()
}

// Record stores errs as the result of run runID over file.
func (a *Archive) Record(ctx context.Context, runID, file string, errs []*diagnostics.DiagnosticError) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("archive: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, file, started_at, total) VALUES (?, ?, ?, ?)`,
		runID, file, time.Now().UnixNano(), len(errs))
	if err != nil {
		return fmt.Errorf("archive: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO diagnostics (run_id, seq, code, kind, line, col, message) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("archive: prepare: %w", err)
	}
	defer stmt.Close()

	for i, e := range errs {
		_, err := stmt.ExecContext(ctx, runID, i, string(e.Code), e.Name(), e.Token.Line, e.Token.Column, e.Message())
		if err != nil {
			return fmt.Errorf("archive: insert diagnostic: %w", err)
		}
	}
	return tx.Commit()
}

// Runs lists recorded runs for file, newest first. An empty file lists all runs.
func (a *Archive) Runs(ctx context.Context, file string) ([]Run, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	query := `SELECT id, file, started_at, total FROM runs`
	var args []interface{}
	if file != "" {
		query += ` WHERE file = ?`
		args = append(args, file)
	}
	query += ` ORDER BY started_at DESC`

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("archive: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started int64
		if err := rows.Scan(&r.ID, &r.File, &started, &r.Total); err != nil {
			return nil, fmt.Errorf("archive: scan run: %w", err)
		}
		r.StartedAt = time.Unix(0, started)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Diagnostics returns the diagnostics of one run in their original order.
func (a *Archive) Diagnostics(ctx context.Context, runID string) ([]Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rows, err := a.db.QueryContext(ctx,
		`SELECT code, kind, line, col, message FROM diagnostics WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("archive: query diagnostics: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Code, &e.Kind, &e.Line, &e.Column, &e.Message); err != nil {
			return nil, fmt.Errorf("archive: scan diagnostic: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
