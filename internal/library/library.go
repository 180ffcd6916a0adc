// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library archives completed searches in a SQLite database. The
// archive is write-through only: searches never read from it.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// ErrRunNotFound is returned by Records for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// insertBatch bounds rows per INSERT to stay under SQLite's variable limit.
const insertBatch = 100

// Run is one archived search.
type Run struct {
	ID        string    `json:"id" yaml:"id"`
	Query     string    `json:"query" yaml:"query"`
	URL       string    `json:"url" yaml:"url"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Count     int       `json:"count" yaml:"count"`
}

// Library manages the archive database.
type Library struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Library, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	l := &Library{db: db, now: time.Now}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			url TEXT NOT NULL,
			created_at TEXT NOT NULL,
			result_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			summary TEXT NOT NULL,
			link TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores one completed search and its records in document order, and
// returns the new run id.
func (l *Library) Save(ctx context.Context, query, url string, records []types.ResultRecord) (string, error) {
	id := uuid.NewString()
	created := l.now().UTC()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, args, err := sq.Insert("runs").
		Columns("id", "query", "url", "created_at", "result_count").
		Values(id, query, url, created.Format(timeLayout), len(records)).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("building run insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for start := 0; start < len(records); start += insertBatch {
		end := min(start+insertBatch, len(records))
		ins := sq.Insert("records").Columns("run_id", "position", "title", "author", "summary", "link")
		for i := start; i < end; i++ {
			r := records[i]
			ins = ins.Values(id, i, r.Title, r.Author, r.Summary, r.Link)
		}
		stmt, args, err := ins.ToSql()
		if err != nil {
			return "", fmt.Errorf("building record insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return "", fmt.Errorf("inserting records: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// Runs lists archived searches, newest first. limit <= 0 returns all.
func (l *Library) Runs(ctx context.Context, limit int) ([]Run, error) {
	q := sq.Select("id", "query", "url", "created_at", "result_count").
		From("runs").
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	stmt, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building runs query: %w", err)
	}
	rows, err := l.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created string
		)
		if err := rows.Scan(&r.ID, &r.Query, &r.URL, &created, &r.Count); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at of run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// Records returns the records of one run in their original order.
func (l *Library) Records(ctx context.Context, runID string) ([]types.ResultRecord, error) {
	stmt, args, err := sq.Select("count(*)").From("runs").Where(sq.Eq{"id": runID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building run lookup: %w", err)
	}
	var n int
	if err := l.db.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		return nil, fmt.Errorf("looking up run: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	stmt, args, err = sq.Select("title", "author", "summary", "link").
		From("records").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building records query: %w", err)
	}
	rows, err := l.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]types.ResultRecord, 0)
	for rows.Next() {
		var r types.ResultRecord
		if err := rows.Scan(&r.Title, &r.Author, &r.Summary, &r.Link); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}
