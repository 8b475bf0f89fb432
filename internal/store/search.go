// Copyright Wells Wood Research Group, 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// QueryOptions holds parameters for archive index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over subtitles,
	// abstracts, tags, and keywords.
	Query string

	// Classification filters by the assigned classification label.
	Classification string

	// Tag filters designs whose tag list contains the given tag.
	Tag string

	// ReviewOnly restricts results to designs still awaiting review.
	ReviewOnly bool

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Classification == "" && q.Tag == "" && !q.ReviewOnly
}

// SearchResult is a single matched design.
type SearchResult struct {
	PDB            string         `json:"pdb" yaml:"pdb"`
	Subtitle       string         `json:"subtitle" yaml:"subtitle"`
	Classification string         `json:"classification" yaml:"classification"`
	Authors        []types.Author `json:"authors" yaml:"authors"`
	ReleaseDate    string         `json:"release_date" yaml:"release_date"`
	Publication    string         `json:"publication" yaml:"publication"`
	Tags           []string       `json:"tags" yaml:"tags"`
	Review         bool           `json:"review" yaml:"review"`
}

// Search queries the archive index with optional full-text search and
// structured filters. Results are ranked by relevance for full-text
// queries, otherwise ordered by release date then identifier.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]SearchResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT d.pdb, d.subtitle, d.classification, d.authors,
				d.release_date, d.publication, d.tags, d.review
			FROM designs_fts
			JOIN designs d ON d.rowid = designs_fts.rowid
			WHERE designs_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT d.pdb, d.subtitle, d.classification, d.authors,
				d.release_date, d.publication, d.tags, d.review
			FROM designs d
			WHERE 1=1`)
	}

	if opts.Classification != "" {
		qb.WriteString(` AND d.classification = ?`)
		args = append(args, opts.Classification)
	}

	if opts.Tag != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(d.tags) WHERE value = ?)`)
		args = append(args, opts.Tag)
	}

	if opts.ReviewOnly {
		qb.WriteString(` AND d.review = 1`)
	}

	if useFTS {
		qb.WriteString(` ORDER BY designs_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY d.release_date, d.pdb`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive index: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			sr          SearchResult
			authorsJSON sql.NullString
			tagsJSON    sql.NullString
			review      int
		)

		if err := rows.Scan(
			&sr.PDB, &sr.Subtitle, &sr.Classification, &authorsJSON,
			&sr.ReleaseDate, &sr.Publication, &tagsJSON, &review,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &sr.Authors)
		}
		if tagsJSON.Valid {
			json.Unmarshal([]byte(tagsJSON.String), &sr.Tags)
		}
		sr.Review = review == 1

		results = append(results, sr)
	}

	return results, rows.Err()
}

// Stats summarizes the indexed catalogue.
type Stats struct {
	Designs         int            `json:"designs" yaml:"designs"`
	UnderReview     int            `json:"under_review" yaml:"under_review"`
	Classifications map[string]int `json:"classifications" yaml:"classifications"`
}

// ReadStats reports catalogue-level counts from the index.
func (s *Store) ReadStats(ctx context.Context) (Stats, error) {
	stats := Stats{Classifications: map[string]int{}}

	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM designs`,
	).Scan(&stats.Designs); err != nil {
		return stats, fmt.Errorf("counting designs: %w", err)
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM designs WHERE review = 1`,
	).Scan(&stats.UnderReview); err != nil {
		return stats, fmt.Errorf("counting designs under review: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT classification, count(*) FROM designs GROUP BY classification`)
	if err != nil {
		return stats, fmt.Errorf("counting classifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return stats, fmt.Errorf("scanning classification count: %w", err)
		}
		stats.Classifications[label] = n
	}

	return stats, rows.Err()
}
