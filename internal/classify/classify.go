// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package classify proposes design-classification tags from two curated
// sources: a pre-labeled external dataset keyed by PDB code and an
// author→category lookup table. It proposes, never confirms: the confirmed
// classification field stays "unknown" until a human review sets it.
package classify

import (
	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// Suggestion holds proposed classification tags with one cited reason per
// contributing source. Labels form an ordered set; reasons are not
// deduplicated, since each cites a distinct source.
type Suggestion struct {
	Labels  []string
	Reasons []string
}

// Suggest cross-references the design against the curated dataset (exact
// identifier match, case-sensitive as stored) and each author's full name
// against the label table. The returned classification is always
// types.ClassificationUnknown. An empty suggestion list is not an error,
// but it is a diagnostic-worthy event.
func Suggest(pdb string, authors []types.Author, curated CuratedSet, labels LabelTable, log *diag.Log) (string, Suggestion) {
	var s Suggestion
	seen := make(map[string]bool)
	add := func(label string) {
		if !seen[label] {
			seen[label] = true
			s.Labels = append(s.Labels, label)
		}
	}

	if curatedLabel, ok := curated[pdb]; ok {
		for _, label := range labels[curatedLabel] {
			add(label)
		}
		s.Reasons = append(s.Reasons, "Curated classification: "+curatedLabel)
	}

	for _, author := range authors {
		key := author.FullName()
		tags, ok := labels[key]
		if !ok {
			continue
		}
		for _, label := range tags {
			add(label)
		}
		s.Reasons = append(s.Reasons, "Author is: "+key)
	}

	if len(s.Labels) == 0 {
		log.Add(pdb, "No suggestion for classification.")
	}
	return types.ClassificationUnknown, s
}
