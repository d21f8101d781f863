// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite stores import records in a local SQLite database,
// for development and single-machine deployments.
//
// It uses modernc.org/sqlite, which needs no cgo.
// The database lives at <dir>/records.db and its schema is
// brought up to date from the embedded migrations when opened.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // database/sql driver "sqlite"

	"rsc.io/govanity/resolver"
	"rsc.io/govanity/store/sqlite/migrations"
)

var _ resolver.Store = (*Store)(nil)

// Store is a SQLite-backed record store.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the record database in dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("sqlite: no data directory")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dir, "records.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the records stored under exactly (host, path).
func (s *Store) Lookup(ctx context.Context, host, path string) ([]resolver.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT request_host, request_uri, vcs, repository_url, source_home, source_directory, source_file
		FROM import_records WHERE request_host = ? AND request_uri = ?
	`, host, path)
	if err != nil {
		return nil, fmt.Errorf("querying import records: %w", err)
	}
	defer rows.Close()

	var recs []resolver.Record
	for rows.Next() {
		var rec resolver.Record
		var vcs, repo, home, dir, file sql.NullString
		if err := rows.Scan(&rec.Host, &rec.Path, &vcs, &repo, &home, &dir, &file); err != nil {
			return nil, fmt.Errorf("scanning import record: %w", err)
		}
		rec.VCS = vcs.String
		rec.RepositoryURL = repo.String
		rec.Source = resolver.Source{Home: home.String, Directory: dir.String, File: file.String}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import records: %w", err)
	}
	return recs, nil
}

// Put creates or replaces the record stored under (rec.Host, rec.Path).
// The resolver never writes; Put exists for loading records.
func (s *Store) Put(ctx context.Context, rec resolver.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_records (request_host, request_uri, vcs, repository_url, source_home, source_directory, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(request_host, request_uri) DO UPDATE SET
			vcs = excluded.vcs,
			repository_url = excluded.repository_url,
			source_home = excluded.source_home,
			source_directory = excluded.source_directory,
			source_file = excluded.source_file
	`, rec.Host, rec.Path, nullString(rec.VCS), nullString(rec.RepositoryURL),
		nullString(rec.Source.Home), nullString(rec.Source.Directory), nullString(rec.Source.File))
	if err != nil {
		return fmt.Errorf("saving import record %s%s: %w", rec.Host, rec.Path, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// migrate applies the migrations in fsys newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	var ups []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	for _, name := range ups {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
