// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package results keeps a history of measurement runs in a SQLite file so
// timings can be compared across thresholds, pool sizes and machines.
package results

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/simonis/Sorting/internal/bench"
)

//go:embed migrations.sql
var migrations string

// ErrDisabled is returned by a Store opened without a path.
var ErrDisabled = errors.New("results: history disabled")

// Run is one measurement pass.
type Run struct {
	ID        int64
	Started   time.Time
	Parallel  bool
	Workers   int
	Threshold int
	Host      string
	Took      time.Duration
	Rows      []bench.Row
}

// Mode is "parallel" or "serial".
func (r Run) Mode() string {
	if r.Parallel {
		return "parallel"
	}
	return "serial"
}

// Store persists runs. A nil *Store is a disabled store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path. An empty
// path returns a nil store; its methods report ErrDisabled.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results: pragma: %w", err)
	}
	if _, err := db.ExecContext(ctx, migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun stores run and its rows in one transaction and returns the new
// run ID.
func (s *Store) SaveRun(ctx context.Context, run Run) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrDisabled
	}
	if run.Started.IsZero() {
		run.Started = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs(started, mode, workers, threshold, host, took_ms) VALUES(?,?,?,?,?,?)`,
		run.Started.UTC().Format(time.RFC3339Nano), run.Mode(), run.Workers, run.Threshold, run.Host, run.Took.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("results: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range run.Rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_rows(run_id, size, samples, total_ns) VALUES(?,?,?,?)`,
			id, r.Size, r.Samples, int64(r.Total),
		); err != nil {
			return 0, fmt.Errorf("results: insert row %d: %w", r.Size, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Runs returns up to limit most recent runs, newest first, with their rows.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, ErrDisabled
	}
	if limit <= 0 {
		limit = 20
	}

	rs, err := s.db.QueryContext(ctx,
		`SELECT id, started, mode, workers, threshold, host, took_ms FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for rs.Next() {
		var (
			run     Run
			started string
			mode    string
			tookMS  int64
		)
		if err := rs.Scan(&run.ID, &started, &mode, &run.Workers, &run.Threshold, &run.Host, &tookMS); err != nil {
			_ = rs.Close()
			return nil, err
		}
		run.Started, _ = time.Parse(time.RFC3339Nano, started)
		run.Parallel = mode == "parallel"
		run.Took = time.Duration(tookMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rs.Err(); err != nil {
		_ = rs.Close()
		return nil, err
	}
	_ = rs.Close()

	for i := range runs {
		rows, err := s.rows(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Rows = rows
	}
	return runs, nil
}

func (s *Store) rows(ctx context.Context, runID int64) ([]bench.Row, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT size, samples, total_ns FROM run_rows WHERE run_id = ? ORDER BY size`, runID)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var rows []bench.Row
	for rs.Next() {
		var (
			r     bench.Row
			total int64
		)
		if err := rs.Scan(&r.Size, &r.Samples, &total); err != nil {
			return nil, err
		}
		r.Total = time.Duration(total)
		rows = append(rows, r)
	}
	return rows, rs.Err()
}
