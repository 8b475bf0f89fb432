// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
)

func newLog(t *testing.T, pdb string) *diag.Log {
	t.Helper()
	log := diag.NewLog()
	log.Init(pdb)
	return log
}

func hasNote(log *diag.Log, pdb, note string) bool {
	for _, n := range log.Notes(pdb) {
		if n == note {
			return true
		}
	}
	return false
}

func TestAuthors(t *testing.T) {
	table := mmcif.Table{
		"_citation_author.citation_id": {"primary", "primary", "2"},
		"_citation_author.name":        {"Smith, Jane", " Jones ,  Bob ", "Other, Ann"},
	}
	log := newLog(t, "1abc")

	authors := Authors(table, log, "1abc")
	if len(authors) != 2 {
		t.Fatalf("len(authors) = %d, want 2", len(authors))
	}
	if authors[0].Forename != "Jane" || authors[0].Surname != "Smith" {
		t.Errorf("authors[0] = %+v", authors[0])
	}
	if authors[1].Forename != "Bob" || authors[1].Surname != "Jones" {
		t.Errorf("authors[1] = %+v", authors[1])
	}
	if len(log.Notes("1abc")) != 0 {
		t.Errorf("unexpected diagnostics: %v", log.Notes("1abc"))
	}
}

func TestAuthorsMalformedEntryDiscardsAll(t *testing.T) {
	table := mmcif.Table{
		"_citation_author.citation_id": {"primary", "primary"},
		"_citation_author.name":        {"Smith, Jane", "NoCommaHere"},
	}
	log := newLog(t, "1abc")

	authors := Authors(table, log, "1abc")
	if len(authors) != 0 {
		t.Errorf("malformed entry should discard all authors, got %v", authors)
	}
	if !hasNote(log, "1abc", "Missing authors.") {
		t.Errorf("expected %q diagnostic, got %v", "Missing authors.", log.Notes("1abc"))
	}
}

func TestAuthorsMissingColumns(t *testing.T) {
	tests := []struct {
		name  string
		table mmcif.Table
	}{
		{"no data", mmcif.Table{}},
		{"names without citation ids", mmcif.Table{
			"_citation_author.name": {"Smith, Jane"},
		}},
		{"ids without names", mmcif.Table{
			"_citation_author.citation_id": {"primary"},
		}},
		{"no primary rows", mmcif.Table{
			"_citation_author.citation_id": {"2", "3"},
			"_citation_author.name":        {"Smith, Jane", "Jones, Bob"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newLog(t, "1abc")
			if authors := Authors(tt.table, log, "1abc"); len(authors) != 0 {
				t.Errorf("authors = %v, want empty", authors)
			}
			if !hasNote(log, "1abc", "Missing authors.") {
				t.Errorf("missing diagnostic, got %v", log.Notes("1abc"))
			}
		})
	}
}

func TestAuthorsFullName(t *testing.T) {
	table := mmcif.Table{
		"_citation_author.citation_id": {"primary"},
		"_citation_author.name":        {"Woolfson, D.N."},
	}
	log := newLog(t, "1abc")
	authors := Authors(table, log, "1abc")
	if len(authors) != 1 || authors[0].FullName() != "D.N. Woolfson" {
		t.Errorf("authors = %+v", authors)
	}
}
