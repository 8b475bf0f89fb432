// Copyright Wells Wood Research Group, 2026. All rights reserved.

package classify

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LabelTable maps a curated dataset label or an author "Forename Surname"
// name to its classification tags. The table is hand-curated configuration
// data, loaded at startup rather than embedded in code.
type LabelTable map[string][]string

// CuratedSet maps a PDB code to the label it carries in the pre-labeled
// external dataset. Lookups are exact and case-sensitive as stored.
type CuratedSet map[string]string

// LoadLabelTable reads a YAML label table. A missing file is not an
// error: classification runs with author lookups disabled and no
// curated-label mapping.
func LoadLabelTable(path string) (LabelTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LabelTable{}, nil
		}
		return nil, fmt.Errorf("reading label table %s: %w", path, err)
	}
	var table LabelTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing label table %s: %w", path, err)
	}
	return table, nil
}

// curatedEntry is one row of the pre-labeled dataset file.
type curatedEntry struct {
	PDB            string `json:"pdb"`
	Classification string `json:"classification"`
}

// LoadCuratedSet reads the pre-labeled dataset JSON array. As with the
// label table, a missing file disables that source rather than failing
// the run.
func LoadCuratedSet(path string) (CuratedSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CuratedSet{}, nil
		}
		return nil, fmt.Errorf("reading curated dataset %s: %w", path, err)
	}
	var entries []curatedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing curated dataset %s: %w", path, err)
	}
	set := make(CuratedSet, len(entries))
	for _, e := range entries {
		if e.PDB != "" {
			set[e.PDB] = e.Classification
		}
	}
	return set, nil
}
