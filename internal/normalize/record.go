// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"strconv"
	"strings"

	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// CleanRecord runs the post-merge cleanup sweep over an assembled design:
// any string field left literally equal to the "?" placeholder becomes
// empty, and embedded newlines collapse to single spaces. Individual
// normalizers already clear placeholders where they see them; this second
// sweep is idempotent, so applying it to already-clean fields is safe.
func CleanRecord(rec *types.DesignRecord) {
	fields := []*string{
		&rec.PDB,
		&rec.PicturePath,
		&rec.Classification,
		&rec.Subtitle,
		&rec.ReleaseDate,
		&rec.Publication,
		&rec.PublicationRef.DOI,
		&rec.PublicationRef.PubMed,
		&rec.PublicationRef.CSD,
		&rec.PublicationRef.ISSN,
		&rec.PublicationRef.ASTM,
		&rec.PublicationCtry,
		&rec.Abstract,
		&rec.Synthesis,
		&rec.Crystal.LengthA,
		&rec.Crystal.LengthB,
		&rec.Crystal.LengthC,
		&rec.Crystal.AngleA,
		&rec.Crystal.AngleB,
		&rec.Crystal.AngleG,
		&rec.PreviousDesign,
		&rec.NextDesign,
	}
	for _, f := range fields {
		*f = cleanField(*f)
	}
}

func cleanField(s string) string {
	if s == "?" {
		return ""
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// ParseWeight coerces a normalized formula-weight string to a float for
// the final output pass. Empty or unparsable values read as zero: by this
// point the missing-weight diagnostic has already been recorded.
func ParseWeight(w string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0
	}
	return f
}
