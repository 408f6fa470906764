// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive loads publication snapshots into a local SQLite database
// for ad hoc querying.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubsync/pkg/types"
)

const defaultMaxResults = 20

// Store manages the publications SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the database at cfg.DBPath and ensures the schema.
func Open(cfg types.IndexConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			orcid TEXT PRIMARY KEY,
			updated_by TEXT NOT NULL,
			count INTEGER NOT NULL,
			loaded_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS publications (
			orcid TEXT NOT NULL REFERENCES snapshots(orcid) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			year INTEGER,
			type TEXT NOT NULL,
			doi TEXT NOT NULL,
			url TEXT NOT NULL,
			PRIMARY KEY (orcid, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_year ON publications(year)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_type ON publications(type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load replaces any previously loaded snapshot for snap.ORCID with snap.
// Items keep their snapshot order in the position column.
func (s *Store) Load(ctx context.Context, snap types.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM publications WHERE orcid = ?`, snap.ORCID); err != nil {
		return fmt.Errorf("deleting old publications: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (orcid, updated_by, count, loaded_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(orcid) DO UPDATE SET
			updated_by=excluded.updated_by, count=excluded.count, loaded_at=excluded.loaded_at`,
		snap.ORCID, snap.UpdatedBy, len(snap.Items), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (orcid, position, title, year, type, doi, url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range snap.Items {
		var y sql.NullInt64
		if p.Year != nil {
			y = sql.NullInt64{Int64: int64(*p.Year), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, snap.ORCID, i, p.Title, y, p.Type, p.DOI, p.URL); err != nil {
			return fmt.Errorf("inserting %q: %w", p.Title, err)
		}
	}

	return tx.Commit()
}

// QueryOptions filters publications. Zero values match everything.
type QueryOptions struct {
	// ORCID restricts results to one researcher.
	ORCID string

	// Text matches title or DOI, case-insensitively, as a substring.
	Text string

	// Type matches the work type exactly.
	Type string

	// Year matches the publication year exactly.
	Year int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Query returns matching publications in snapshot order.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.Publication, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT title, year, type, doi, url FROM publications WHERE 1=1`)
	if opts.ORCID != "" {
		qb.WriteString(` AND orcid = ?`)
		args = append(args, opts.ORCID)
	}
	if opts.Text != "" {
		qb.WriteString(` AND (lower(title) LIKE ? ESCAPE '\' OR lower(doi) LIKE ? ESCAPE '\')`)
		pattern := "%" + escapeLike(strings.ToLower(opts.Text)) + "%"
		args = append(args, pattern, pattern)
	}
	if opts.Type != "" {
		qb.WriteString(` AND type = ?`)
		args = append(args, opts.Type)
	}
	if opts.Year != 0 {
		qb.WriteString(` AND year = ?`)
		args = append(args, opts.Year)
	}
	qb.WriteString(` ORDER BY orcid, position LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	var pubs []types.Publication
	for rows.Next() {
		var (
			p types.Publication
			y sql.NullInt64
		)
		if err := rows.Scan(&p.Title, &y, &p.Type, &p.DOI, &p.URL); err != nil {
			return nil, fmt.Errorf("scanning publication: %w", err)
		}
		if y.Valid {
			v := int(y.Int64)
			p.Year = &v
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

// Count returns the number of stored publications for orcid.
func (s *Store) Count(ctx context.Context, orcid string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM publications WHERE orcid = ?`, orcid).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting publications: %w", err)
	}
	return n, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
