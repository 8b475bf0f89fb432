// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package normalize turns a raw structure-metadata table into the
// per-aspect sub-records of a design. Every normalizer is total: missing
// or malformed input collapses to a documented default plus a diagnostic
// note, never an error.
package normalize

import (
	"strings"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const (
	fieldCitationAuthorID   = "_citation_author.citation_id"
	fieldCitationAuthorName = "_citation_author.name"
)

// Authors extracts the primary-citation author list. Citation-author rows
// are contiguous with primary-tagged rows first, so the scan stops at the
// first row not tagged "primary" or at the end of the shorter aligned
// column. A malformed name (no comma to split surname from forename)
// discards the entire author list for the design, not just that entry:
// a partially parsed author list is worse for the archive than an empty
// one flagged for review.
func Authors(table mmcif.Table, log *diag.Log, pdb string) []types.Author {
	ids := table.Rows(fieldCitationAuthorID)
	names := table.Rows(fieldCitationAuthorName)
	n := len(ids)
	if len(names) < n {
		n = len(names)
	}

	var authors []types.Author
	for i := 0; i < n; i++ {
		if ids[i] != "primary" {
			break
		}
		name := strings.TrimSpace(names[i])
		comma := strings.Index(name, ",")
		if comma < 0 {
			authors = nil
			break
		}
		authors = append(authors, types.Author{
			Surname:  strings.TrimSpace(name[:comma]),
			Forename: strings.TrimSpace(name[comma+1:]),
		})
	}

	if len(authors) == 0 {
		log.Add(pdb, "Missing authors.")
	}
	return authors
}
