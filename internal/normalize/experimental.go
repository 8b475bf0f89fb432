// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const (
	fieldExptlMethod      = "_exptl.method"
	fieldFormulaWeight    = "_entity.formula_weight"
	fieldSynthesisDetails = "_pdbx_entity_src_syn.details"
	fieldRevisionDate     = "_pdbx_audit_revision_history.revision_date"
	fieldRelatedID        = "_pdbx_database_related.db_id"
)

// defaultReleaseDate marks designs whose revision history is absent.
const defaultReleaseDate = "1900-01-01"

// Experimental extracts the method list (upper-cased), the formula weight
// (kept as a string until the final serialization pass), and the synthesis
// comment. Each sub-field carries its own missing-data diagnostic.
func Experimental(table mmcif.Table, log *diag.Log, pdb string) types.Experimental {
	var exp types.Experimental

	for _, m := range table.Rows(fieldExptlMethod) {
		if method := mmcif.Prose(strings.ToUpper(m)); method != "" {
			exp.Methods = append(exp.Methods, method)
		}
	}
	if raw, ok := table.First(fieldFormulaWeight); ok {
		w := strings.TrimSpace(raw)
		if w == "?" {
			w = ""
		}
		exp.FormulaWeight = w
	}
	if raw, ok := table.First(fieldSynthesisDetails); ok {
		exp.SynthesisComment = capitalize(mmcif.Prose(raw))
	}

	if len(exp.Methods) == 0 {
		log.Add(pdb, "Missing exptl_method information.")
	}
	if exp.FormulaWeight == "" {
		log.Add(pdb, "Missing formula_weight information.")
	}
	if exp.SynthesisComment == "" {
		log.Add(pdb, "Missing synthesis_comment information.")
	}
	return exp
}

// ReleaseDate extracts the first revision-history date, defaulting to
// defaultReleaseDate when the history is absent. An empty deposited value
// is diagnostic-worthy; the absent-key fallback is not, since the default
// is itself a recognizable sentinel.
func ReleaseDate(table mmcif.Table, log *diag.Log, pdb string) string {
	raw, ok := table.First(fieldRevisionDate)
	if !ok {
		return defaultReleaseDate
	}
	date := strings.TrimSpace(raw)
	if date == "" {
		log.Add(pdb, "No release date.")
	}
	return date
}

// Related extracts the identifiers of related depositions, lower-cased.
// An empty list is common and carries no diagnostic.
func Related(table mmcif.Table) []string {
	rows := table.Rows(fieldRelatedID)
	if len(rows) == 0 {
		return nil
	}
	related := make([]string, 0, len(rows))
	for _, id := range rows {
		related = append(related, strings.ToLower(strings.TrimSpace(id)))
	}
	return related
}
