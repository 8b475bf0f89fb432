// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const (
	fieldCitationTitle    = "_citation.title"
	fieldJournalAbbrev    = "_citation.journal_abbrev"
	fieldJournalVolume    = "_citation.journal_volume"
	fieldPageFirst        = "_citation.page_first"
	fieldPageLast         = "_citation.page_last"
	fieldCitationCountry  = "_citation.country"
	fieldJournalIDASTM    = "_citation.journal_id_ASTM"
	fieldJournalIDISSN    = "_citation.journal_id_ISSN"
	fieldJournalIDCSD     = "_citation.journal_id_CSD"
	fieldDatabaseIDPubMed = "_citation.pdbx_database_id_PubMed"
	fieldDatabaseIDDOI    = "_citation.pdbx_database_id_DOI"
)

// ToBePublished is the recognized not-yet-published citation state. It is
// not a parse failure: depositions routinely precede their papers.
const ToBePublished = "To be published"

// Publication extracts and composes the primary-citation record. The
// citation text joins the non-blank, non-placeholder components of
// {quoted title, journal, volume, page range} with ", " in that fixed
// order. An absent or "to be published" journal (or a "tba" title) short-
// circuits to the ToBePublished state with untouched reference IDs.
func Publication(table mmcif.Table, log *diag.Log, pdb string) types.Publication {
	var pub types.Publication

	title := ""
	if raw, ok := table.First(fieldCitationTitle); ok {
		if p := mmcif.Prose(raw); p != "" {
			title = "\"" + p + "\""
		}
	}
	journal, _ := table.First(fieldJournalAbbrev)

	if journal == "" ||
		strings.Contains(strings.ToLower(journal), "to be published") ||
		strings.Contains(strings.ToLower(title), "tba") {
		log.Add(pdb, `Publication "to be published"`)
		pub.Citation = ToBePublished
	} else {
		volume := proseField(table, fieldJournalVolume)
		pageRange := composePageRange(
			proseField(table, fieldPageFirst),
			proseField(table, fieldPageLast),
		)

		for _, component := range []string{title, journal, volume, pageRange} {
			if component == "" || component == "?" {
				continue
			}
			if pub.Citation == "" {
				pub.Citation = component
			} else {
				pub.Citation += ", " + component
			}
		}

		if country, ok := table.First(fieldCitationCountry); ok {
			pub.Country = strings.TrimSpace(country)
		}
		pub.Refs = types.ReferenceIDs{
			DOI:    refField(table, fieldDatabaseIDDOI),
			PubMed: refField(table, fieldDatabaseIDPubMed),
			CSD:    refField(table, fieldJournalIDCSD),
			ISSN:   refField(table, fieldJournalIDISSN),
			ASTM:   refField(table, fieldJournalIDASTM),
		}
	}

	if pub.Citation == "" || pub.Citation == ToBePublished {
		log.Add(pdb, "No publication citation info.")
	}
	if pub.Refs.DOI == "" {
		log.Add(pdb, "Missing DOI")
	}
	return pub
}

// composePageRange joins first and last page as "first-last", falling back
// to whichever single one is present, or empty when neither is.
func composePageRange(first, last string) string {
	if first == "" || first == "?" {
		first = ""
	}
	if last == "" || last == "?" {
		last = ""
	}
	switch {
	case first != "" && last != "":
		return first + "-" + last
	case first != "":
		return first
	default:
		return last
	}
}

// proseField extracts the first row of key as trimmed prose, or empty.
func proseField(table mmcif.Table, key string) string {
	raw, ok := table.First(key)
	if !ok {
		return ""
	}
	return mmcif.Prose(raw)
}

// refField extracts a reference-identifier value with the "?" placeholder
// normalized to empty.
func refField(table mmcif.Table, key string) string {
	v := proseField(table, key)
	if v == "?" {
		return ""
	}
	return v
}
