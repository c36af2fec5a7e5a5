// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted records and crawl results in a local
// SQLite database. It is a caller-side cache: the crawl packages never
// touch it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citegraph/pkg/types"
)

// Store manages the citegraph SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.DBPath, creating the schema
// if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS articles (
			pmid TEXT PRIMARY KEY,
			title TEXT,
			abstract TEXT,
			journal TEXT,
			year TEXT,
			affiliation TEXT,
			authors TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS cited_by (
			pmc TEXT NOT NULL,
			citer_pmc TEXT NOT NULL,
			position INTEGER NOT NULL,
			UNIQUE(pmc, citer_pmc)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cited_by_pmc ON cited_by(pmc)`,
		`CREATE TABLE IF NOT EXISTS outgoing_refs (
			doc_id TEXT NOT NULL,
			namespace TEXT NOT NULL,
			cited_pmid TEXT NOT NULL,
			position INTEGER NOT NULL,
			UNIQUE(doc_id, namespace, cited_pmid)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outgoing_doc ON outgoing_refs(doc_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveArticle upserts one extracted article record keyed by PMID.
func (s *Store) SaveArticle(ctx context.Context, rec types.ArticleRecord) error {
	if rec.PMID == "" {
		return fmt.Errorf("article record has no PMID")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (pmid, title, abstract, journal, year, affiliation, authors)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(pmid) DO UPDATE SET
			title = excluded.title,
			abstract = excluded.abstract,
			journal = excluded.journal,
			year = excluded.year,
			affiliation = excluded.affiliation,
			authors = excluded.authors`,
		rec.PMID, rec.Title, rec.Abstract, rec.Journal, rec.Year, rec.Affiliation, rec.Authors,
	)
	if err != nil {
		return fmt.Errorf("saving article %s: %w", rec.PMID, err)
	}
	return nil
}

// Article loads the record stored for pmid. sql.ErrNoRows when absent.
func (s *Store) Article(ctx context.Context, pmid string) (types.ArticleRecord, error) {
	var rec types.ArticleRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT pmid, title, abstract, journal, year, affiliation, authors
		 FROM articles WHERE pmid = ?`, pmid,
	).Scan(&rec.PMID, &rec.Title, &rec.Abstract, &rec.Journal, &rec.Year, &rec.Affiliation, &rec.Authors)
	if err != nil {
		return types.ArticleRecord{}, err
	}
	return rec, nil
}

// SaveCitedBy replaces the stored citer list for the result's article.
// The whole write happens in one transaction so a failed crawl save
// never leaves a half-replaced edge list.
func (s *Store) SaveCitedBy(ctx context.Context, result types.CitationGraphResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cited_by WHERE pmc = ?`, result.PMC); err != nil {
		return fmt.Errorf("clearing citers for PMC%s: %w", result.PMC, err)
	}
	for i, citer := range result.CitedBy {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO cited_by (pmc, citer_pmc, position) VALUES (?, ?, ?)`,
			result.PMC, citer, i,
		); err != nil {
			return fmt.Errorf("saving citer PMC%s: %w", citer, err)
		}
	}
	return tx.Commit()
}

// Citers returns the stored citing PMC ids for a bare PMC id, in crawl
// order.
func (s *Store) Citers(ctx context.Context, pmc string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT citer_pmc FROM cited_by WHERE pmc = ? ORDER BY position`, pmc)
	if err != nil {
		return nil, fmt.Errorf("querying citers for PMC%s: %w", pmc, err)
	}
	defer rows.Close()

	var citers []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		citers = append(citers, id)
	}
	return citers, rows.Err()
}

// SaveOutgoing replaces the stored outgoing reference list for the
// result's document.
func (s *Store) SaveOutgoing(ctx context.Context, result types.OutgoingCitationResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM outgoing_refs WHERE doc_id = ? AND namespace = ?`,
		result.DocID, result.Namespace,
	); err != nil {
		return fmt.Errorf("clearing references for %s: %w", result.DocID, err)
	}
	for i, pmid := range result.Cited {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO outgoing_refs (doc_id, namespace, cited_pmid, position) VALUES (?, ?, ?, ?)`,
			result.DocID, result.Namespace, pmid, i,
		); err != nil {
			return fmt.Errorf("saving reference %s: %w", pmid, err)
		}
	}
	return tx.Commit()
}

// References returns the stored outgoing PMIDs for a document, in
// response order.
func (s *Store) References(ctx context.Context, docID, namespace string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cited_pmid FROM outgoing_refs WHERE doc_id = ? AND namespace = ? ORDER BY position`,
		docID, namespace)
	if err != nil {
		return nil, fmt.Errorf("querying references for %s: %w", docID, err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		refs = append(refs, id)
	}
	return refs, rows.Err()
}
