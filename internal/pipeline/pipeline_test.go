// Copyright Wells Wood Research Group, 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wells-wood-research/protein-design-archive/internal/classify"
	"github.com/wells-wood-research/protein-design-archive/internal/fetch"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// fakeSource is a canned external-services stub.
type fakeSource struct {
	pictures  map[string]string
	abstracts map[string]string
}

func (f fakeSource) PicturePath(pdb string) string {
	return f.pictures[pdb]
}

func (f fakeSource) Abstract(pdb string) string {
	if a, ok := f.abstracts[pdb]; ok {
		return a
	}
	return fetch.NoDescription
}

const sampleCIF = `data_TEST
_struct.title "A designed helical bundle."
_citation.title "Design of a helical bundle"
_citation.journal_abbrev "Science"
_citation.journal_volume 282
_citation.page_first 1462
_citation.page_last  1467
_citation.pdbx_database_id_DOI 10.1126/science.282.5393.1462
loop_
_citation_author.citation_id
_citation_author.name
primary 'Smith, Jane'
loop_
_entity_poly.pdbx_seq_one_letter_code
_entity_poly.pdbx_seq_one_letter_code_can
_entity_poly.pdbx_strand_id
MKQLED MKQLED A
_struct_keywords.pdbx_keywords 'DE NOVO PROTEIN'
_struct_keywords.text 'helix, coil'
_cell.length_a 34.1
_cell.length_b 34.1
_cell.length_c 45.0
_cell.angle_alpha 90.0
_cell.angle_beta 90.0
_cell.angle_gamma 120.0
_exptl.method 'X-RAY DIFFRACTION'
_entity.formula_weight 10352.4
_pdbx_audit_revision_history.revision_date 1998-11-25
`

func writeCIF(t *testing.T, dir, code string) {
	t.Helper()
	path := filepath.Join(dir, strings.ToUpper(code)+".cif")
	if err := os.WriteFile(path, []byte(sampleCIF), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testRun(t *testing.T, codes []string, present []string) Result {
	t.Helper()
	dir := t.TempDir()
	for _, code := range present {
		writeCIF(t, dir, code)
	}
	cfg := types.CollectionConfig{CIFDir: dir}
	src := fakeSource{
		pictures:  map[string]string{"1abc": "https://cdn.example/1abc_assembly-1.jpeg"},
		abstracts: map[string]string{"1abc": "Coiled coils dominate the designed proteome."},
	}
	var buf bytes.Buffer
	return Run(codes, cfg, classify.CuratedSet{}, classify.LabelTable{}, src, &buf)
}

func TestRunAssemblesRecord(t *testing.T) {
	result := testRun(t, []string{"1ABC"}, []string{"1abc"})
	if len(result.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(result.Records))
	}
	rec := result.Records[0]

	if rec.PDB != "1abc" {
		t.Errorf("PDB = %q, want canonical lower-case", rec.PDB)
	}
	if rec.Subtitle != "A designed helical bundle" {
		t.Errorf("Subtitle = %q", rec.Subtitle)
	}
	if rec.Publication != `"Design of a helical bundle", Science, 282, 1462-1467` {
		t.Errorf("Publication = %q", rec.Publication)
	}
	if rec.PublicationRef.DOI != "10.1126/science.282.5393.1462" {
		t.Errorf("DOI = %q", rec.PublicationRef.DOI)
	}
	if len(rec.Chains) != 1 || rec.Chains[0].ChainID != "A" {
		t.Errorf("Chains = %+v", rec.Chains)
	}
	if rec.FormulaWeight != 10352.4 {
		t.Errorf("FormulaWeight = %v", rec.FormulaWeight)
	}
	if !rec.Review {
		t.Error("Review should be true on creation")
	}
	if rec.Classification != "unknown" {
		t.Errorf("Classification = %q, want unknown", rec.Classification)
	}
	if rec.ReleaseDate != "1998-11-25" {
		t.Errorf("ReleaseDate = %q", rec.ReleaseDate)
	}
	// The single record links to itself.
	if rec.PreviousDesign != "1abc" || rec.NextDesign != "1abc" {
		t.Errorf("links = %q / %q, want self-links", rec.PreviousDesign, rec.NextDesign)
	}
	// Keywords come from the abstract, stopword-filtered.
	joined := strings.Join(rec.Keywords, " ")
	if !strings.Contains(joined, "coiled") || strings.Contains(joined, "the") {
		t.Errorf("Keywords = %v", rec.Keywords)
	}
}

func TestRunNeighborLinking(t *testing.T) {
	result := testRun(t, []string{"A111", "B222", "C333"}, []string{"a111", "b222", "c333"})
	if len(result.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(result.Records))
	}
	wantPrev := []string{"c333", "a111", "b222"}
	wantNext := []string{"b222", "c333", "a111"}
	for i, rec := range result.Records {
		if rec.PreviousDesign != wantPrev[i] {
			t.Errorf("Records[%d].PreviousDesign = %q, want %q", i, rec.PreviousDesign, wantPrev[i])
		}
		if rec.NextDesign != wantNext[i] {
			t.Errorf("Records[%d].NextDesign = %q, want %q", i, rec.NextDesign, wantNext[i])
		}
	}
}

func TestRunMissingStructureFile(t *testing.T) {
	dir := t.TempDir()
	writeCIF(t, dir, "1abc")
	cfg := types.CollectionConfig{CIFDir: dir}
	var buf bytes.Buffer

	result := Run([]string{"1abc", "9zzz"}, cfg, classify.CuratedSet{}, classify.LabelTable{},
		fakeSource{}, &buf)

	if result.MissingFiles != 1 {
		t.Errorf("MissingFiles = %d, want 1", result.MissingFiles)
	}
	if !strings.Contains(buf.String(), "9zzz file not found.") {
		t.Errorf("missing file should be reported to process output, got %q", buf.String())
	}
	if len(result.Records) != 2 {
		t.Fatalf("len(Records) = %d; the failed design still gets a record", len(result.Records))
	}

	rec := result.Records[1]
	if rec.PDB != "9zzz" {
		t.Fatalf("Records[1].PDB = %q", rec.PDB)
	}
	// Maximal-fallback defaults.
	if rec.Publication != "To be published" {
		t.Errorf("Publication = %q", rec.Publication)
	}
	if rec.ReleaseDate != "1900-01-01" {
		t.Errorf("ReleaseDate = %q", rec.ReleaseDate)
	}
	if len(rec.Authors) != 0 || len(rec.Chains) != 0 {
		t.Errorf("authors/chains should be empty, got %v / %v", rec.Authors, rec.Chains)
	}
	if notes := result.Log.Notes("9zzz"); len(notes) == 0 {
		t.Error("diagnostics for the failed design should be non-empty")
	}
	// Linking still covers the failed design.
	if rec.PreviousDesign != "1abc" || rec.NextDesign != "1abc" {
		t.Errorf("links = %q / %q", rec.PreviousDesign, rec.NextDesign)
	}
}

func TestRunDiagnosticsEntryForEveryCode(t *testing.T) {
	result := testRun(t, []string{"1abc", "9zzz"}, []string{"1abc"})
	ids := result.Log.Identifiers()
	if len(ids) != 2 {
		t.Fatalf("Identifiers = %v, want one entry per requested code", ids)
	}
}

func TestWriteOutputs(t *testing.T) {
	dir := t.TempDir()
	result := testRun(t, []string{"1abc"}, []string{"1abc"})
	cfg := types.CollectionConfig{
		OutputPath:  filepath.Join(dir, "out", "data.json"),
		SummaryPath: filepath.Join(dir, "out", "summary.json"),
	}

	if err := WriteOutputs(result, cfg); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d", len(records))
	}

	// The downstream field names are a contract.
	for _, field := range []string{
		"pdb", "picture_path", "chains", "authors", "classification",
		"classification_suggested", "classification_suggested_reason",
		"subtitle", "tags", "keywords", "release_date", "publication",
		"publication_ref", "publication_country", "abstract", "related_pdb",
		"crystal_structure", "exptl_method", "formula_weight",
		"synthesis_comment", "review", "previous_design", "next_design",
	} {
		if _, ok := records[0][field]; !ok {
			t.Errorf("output record missing field %q", field)
		}
	}

	// Formula weight serializes as a JSON number.
	if _, ok := records[0]["formula_weight"].(float64); !ok {
		t.Errorf("formula_weight = %T, want number", records[0]["formula_weight"])
	}

	summary, err := os.ReadFile(cfg.SummaryPath)
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}
	var notes map[string][]string
	if err := json.Unmarshal(summary, &notes); err != nil {
		t.Fatalf("summary is not an identifier→notes object: %v", err)
	}
	if _, ok := notes["1abc"]; !ok {
		t.Error("summary missing entry for processed design")
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1ABC", "1abc"},
		{" 1abc ", "1abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadCodesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.csv")
	if err := os.WriteFile(path, []byte("1ABC,2def\n3GHI\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	codes, err := ReadCodesFile(path)
	if err != nil {
		t.Fatalf("ReadCodesFile: %v", err)
	}
	want := []string{"1abc", "2def", "3ghi"}
	if len(codes) != 3 {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %q, want %q", i, codes[i], want[i])
		}
	}
}
