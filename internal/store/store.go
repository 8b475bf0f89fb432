// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package store maintains a local SQLite index over the collected design
// catalogue, with full-text search across titles, abstracts, tags, and
// keywords.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// Store manages the archive index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the archive index database at cfg.DBPath,
// creating the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
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
		`CREATE TABLE IF NOT EXISTS designs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			pdb TEXT NOT NULL UNIQUE,
			subtitle TEXT,
			classification TEXT,
			suggested TEXT,
			authors TEXT,
			release_date TEXT,
			publication TEXT,
			abstract TEXT,
			tags TEXT,
			keywords TEXT,
			review INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_designs_classification ON designs(classification)`,
		`CREATE INDEX IF NOT EXISTS idx_designs_release_date ON designs(release_date)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='designs_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE designs_fts USING fts5(subtitle, abstract, tags, keywords, content=designs, content_rowid=rowid)`,
			`CREATE TRIGGER designs_ai AFTER INSERT ON designs BEGIN
				INSERT INTO designs_fts(rowid, subtitle, abstract, tags, keywords)
				VALUES (new.rowid, new.subtitle, new.abstract, new.tags, new.keywords);
			END`,
			`CREATE TRIGGER designs_ad AFTER DELETE ON designs BEGIN
				INSERT INTO designs_fts(designs_fts, rowid, subtitle, abstract, tags, keywords)
				VALUES('delete', old.rowid, old.subtitle, old.abstract, old.tags, old.keywords);
			END`,
			`CREATE TRIGGER designs_au AFTER UPDATE ON designs BEGIN
				INSERT INTO designs_fts(designs_fts, rowid, subtitle, abstract, tags, keywords)
				VALUES('delete', old.rowid, old.subtitle, old.abstract, old.tags, old.keywords);
				INSERT INTO designs_fts(rowid, subtitle, abstract, tags, keywords)
				VALUES (new.rowid, new.subtitle, new.abstract, new.tags, new.keywords);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an index build run.
type IngestSummary struct {
	Indexed int
	Updated int
	Failed  int
}

// Total returns the number of designs processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Failed
}

// Ingest loads a collected catalogue JSON file and upserts every design
// into the index. Records already present are updated in place.
func (s *Store) Ingest(ctx context.Context, dataPath string, w io.Writer) (IngestSummary, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading catalogue %s: %w", dataPath, err)
	}

	var records []types.DesignRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return IngestSummary{}, fmt.Errorf("parsing catalogue %s: %w", dataPath, err)
	}

	var summary IngestSummary

	for i := range records {
		rec := &records[i]

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		var existing int
		if err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM designs WHERE pdb = ?`, rec.PDB,
		).Scan(&existing); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", rec.PDB, err)
			summary.Failed++
			continue
		}

		if err := s.upsertDesign(ctx, rec); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", rec.PDB, err)
			summary.Failed++
			continue
		}

		if existing > 0 {
			fmt.Fprintf(w, "updated %s\n", rec.PDB)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s\n", rec.PDB)
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Failed)

	return summary, nil
}

func (s *Store) upsertDesign(ctx context.Context, rec *types.DesignRecord) error {
	suggestedJSON, _ := json.Marshal(rec.SuggestedClass)
	authorsJSON, _ := json.Marshal(rec.Authors)
	tagsJSON, _ := json.Marshal(rec.Tags)
	keywordsJSON, _ := json.Marshal(rec.Keywords)

	review := 0
	if rec.Review {
		review = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO designs (pdb, subtitle, classification, suggested, authors,
			release_date, publication, abstract, tags, keywords, review)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(pdb) DO UPDATE SET
			subtitle=excluded.subtitle, classification=excluded.classification,
			suggested=excluded.suggested, authors=excluded.authors,
			release_date=excluded.release_date, publication=excluded.publication,
			abstract=excluded.abstract, tags=excluded.tags,
			keywords=excluded.keywords, review=excluded.review`,
		rec.PDB, rec.Subtitle, rec.Classification, string(suggestedJSON),
		string(authorsJSON), rec.ReleaseDate, rec.Publication, rec.Abstract,
		string(tagsJSON), string(keywordsJSON), review,
	)
	if err != nil {
		return fmt.Errorf("upserting design: %w", err)
	}
	return nil
}
