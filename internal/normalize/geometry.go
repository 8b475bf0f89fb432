// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const (
	fieldCellLengthA    = "_cell.length_a"
	fieldCellLengthB    = "_cell.length_b"
	fieldCellLengthC    = "_cell.length_c"
	fieldCellAngleAlpha = "_cell.angle_alpha"
	fieldCellAngleBeta  = "_cell.angle_beta"
	fieldCellAngleGamma = "_cell.angle_gamma"
)

// CrystalGeometry extracts the six unit-cell scalars independently. Any
// missing or placeholder value is normalized to empty; if any field ends
// up empty, exactly one diagnostic covers the whole aspect.
func CrystalGeometry(table mmcif.Table, log *diag.Log, pdb string) types.CrystalGeometry {
	geom := types.CrystalGeometry{
		LengthA: cellField(table, fieldCellLengthA),
		LengthB: cellField(table, fieldCellLengthB),
		LengthC: cellField(table, fieldCellLengthC),
		AngleA:  cellField(table, fieldCellAngleAlpha),
		AngleB:  cellField(table, fieldCellAngleBeta),
		AngleG:  cellField(table, fieldCellAngleGamma),
	}

	for _, v := range []string{geom.LengthA, geom.LengthB, geom.LengthC, geom.AngleA, geom.AngleB, geom.AngleG} {
		if v == "" {
			log.Add(pdb, "Missing crystal structure information.")
			break
		}
	}
	return geom
}

func cellField(table mmcif.Table, key string) string {
	raw, ok := table.First(key)
	if !ok {
		return ""
	}
	v := strings.TrimSpace(raw)
	if v == "?" {
		return ""
	}
	return v
}
