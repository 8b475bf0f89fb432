// Copyright Wells Wood Research Group, 2026. All rights reserved.

package types

// Author is one entry in a structure's primary citation author list,
// parsed from the deposited "Surname, Forename" form. List order matches
// citation order.
type Author struct {
	Forename string `json:"forename" yaml:"forename"`
	Surname  string `json:"surname" yaml:"surname"`
}

// FullName returns the "Forename Surname" form used as the key into the
// curated author label table.
func (a Author) FullName() string {
	return a.Forename + " " + a.Surname
}

// Chain holds one polymer entity of a structure. The unnatural sequence is
// the as-deposited one-letter code; the natural sequence is its canonical
// amino-acid form. Sequences are stored as single-line strings.
type Chain struct {
	ChainID    string `json:"chain_id" yaml:"chain_id"`
	SeqUnnat   string `json:"chain_seq_unnat" yaml:"chain_seq_unnat"`
	SeqNatural string `json:"chain_seq_nat" yaml:"chain_seq_nat"`
}

// ReferenceIDs holds the identifier schemes attached to a primary citation.
// The field names are part of the output contract with the serving layer.
type ReferenceIDs struct {
	DOI    string `json:"DOI" yaml:"DOI"`
	PubMed string `json:"PubMed" yaml:"PubMed"`
	CSD    string `json:"CSD" yaml:"CSD"`
	ISSN   string `json:"ISSN" yaml:"ISSN"`
	ASTM   string `json:"ASTM" yaml:"ASTM"`
}

// Publication is the normalized primary-citation record. Citation is the
// comma-joined composition of title, journal, volume, and page range; the
// literal "To be published" marks a recognized not-yet-published state.
type Publication struct {
	Citation string       `json:"publication" yaml:"publication"`
	Refs     ReferenceIDs `json:"publication_ref" yaml:"publication_ref"`
	Country  string       `json:"publication_country" yaml:"publication_country"`
}

// CrystalGeometry holds the six unit-cell scalars. Missing or placeholder
// values are normalized to the empty string.
type CrystalGeometry struct {
	LengthA string `json:"length_a" yaml:"length_a"`
	LengthB string `json:"length_b" yaml:"length_b"`
	LengthC string `json:"length_c" yaml:"length_c"`
	AngleA  string `json:"angle_a" yaml:"angle_a"`
	AngleB  string `json:"angle_b" yaml:"angle_b"`
	AngleG  string `json:"angle_g" yaml:"angle_g"`
}

// Experimental holds the supplementary deposition metadata. FormulaWeight
// stays a string through normalization and is coerced to a number in the
// final serialization pass.
type Experimental struct {
	Methods          []string
	FormulaWeight    string
	SynthesisComment string
}

// ClassificationUnknown is the confirmed-classification default. The
// pipeline only ever proposes suggestions; confirmation is a human step.
const ClassificationUnknown = "unknown"

// DesignRecord is the assembled per-design entity written to the archive
// output. The JSON field names are a de facto contract with the downstream
// ingestion and serving layers and must not be renamed.
type DesignRecord struct {
	PDB             string          `json:"pdb"`
	PicturePath     string          `json:"picture_path"`
	Chains          []Chain         `json:"chains"`
	Authors         []Author        `json:"authors"`
	Classification  string          `json:"classification"`
	SuggestedClass  []string        `json:"classification_suggested"`
	SuggestedReason []string        `json:"classification_suggested_reason"`
	Subtitle        string          `json:"subtitle"`
	Tags            []string        `json:"tags"`
	Keywords        []string        `json:"keywords"`
	ReleaseDate     string          `json:"release_date"`
	Publication     string          `json:"publication"`
	PublicationRef  ReferenceIDs    `json:"publication_ref"`
	PublicationCtry string          `json:"publication_country"`
	Abstract        string          `json:"abstract"`
	RelatedPDB      []string        `json:"related_pdb"`
	Crystal         CrystalGeometry `json:"crystal_structure"`
	ExptlMethod     []string        `json:"exptl_method"`
	FormulaWeight   float64         `json:"formula_weight"`
	Synthesis       string          `json:"synthesis_comment"`
	Review          bool            `json:"review"`
	PreviousDesign  string          `json:"previous_design"`
	NextDesign      string          `json:"next_design"`
}
