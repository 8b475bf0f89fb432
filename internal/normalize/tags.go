// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
)

const (
	fieldStructTitle   = "_struct.title"
	fieldPdbxKeywords  = "_struct_keywords.pdbx_keywords"
	fieldKeywordsText  = "_struct_keywords.text"
)

// TagsAndSubtitle extracts the design subtitle (the deposition title,
// capitalized, with trailing periods stripped) and the tag set: the
// case-folded union of the short keyword rows and the comma-separated
// free-text keyword field, deduplicated. Tag order is not significant;
// the returned slice is sorted so output is deterministic.
func TagsAndSubtitle(table mmcif.Table, log *diag.Log, pdb string) (subtitle string, tags []string) {
	if raw, ok := table.First(fieldStructTitle); ok {
		subtitle = capitalize(mmcif.Prose(raw))
	} else {
		log.Add(pdb, "No keyword.")
	}

	seen := make(map[string]bool)
	add := func(tag string) {
		tag = mmcif.Prose(strings.ToLower(tag))
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, kw := range table.Rows(fieldPdbxKeywords) {
		add(kw)
	}
	if text, ok := table.First(fieldKeywordsText); ok {
		for _, kw := range strings.Split(text, ",") {
			add(kw)
		}
	}
	sort.Strings(tags)

	if subtitle == "" {
		log.Add(pdb, "No subtitle.")
	}
	if len(tags) == 0 {
		log.Add(pdb, "No tags.")
	}
	return subtitle, tags
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
