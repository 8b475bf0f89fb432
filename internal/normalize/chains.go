// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const (
	fieldSeqUnnat = "_entity_poly.pdbx_seq_one_letter_code"
	fieldSeqNat   = "_entity_poly.pdbx_seq_one_letter_code_can"
	fieldStrandID = "_entity_poly.pdbx_strand_id"
)

// Chains zips the three parallel polymer-entity columns positionally,
// stopping at the first index where any of them is exhausted. Deposited
// sequences wrap across lines; they are flattened to single-line strings.
func Chains(table mmcif.Table, log *diag.Log, pdb string) []types.Chain {
	unnat := table.Rows(fieldSeqUnnat)
	nat := table.Rows(fieldSeqNat)
	ids := table.Rows(fieldStrandID)

	n := len(unnat)
	if len(nat) < n {
		n = len(nat)
	}
	if len(ids) < n {
		n = len(ids)
	}

	chains := make([]types.Chain, 0, n)
	for i := 0; i < n; i++ {
		chains = append(chains, types.Chain{
			ChainID:    strings.TrimSpace(ids[i]),
			SeqUnnat:   flattenSequence(unnat[i]),
			SeqNatural: flattenSequence(nat[i]),
		})
	}

	if len(chains) == 0 {
		log.Add(pdb, "Missing sequence information.")
		return nil
	}
	return chains
}

func flattenSequence(seq string) string {
	return strings.ReplaceAll(strings.TrimSpace(seq), "\n", "")
}
