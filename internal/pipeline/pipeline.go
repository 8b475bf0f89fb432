// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package pipeline drives a collection run: for each requested PDB code it
// loads the structure-metadata table, runs every normalizer, assembles the
// design record, and finally links sequence neighbors across the whole
// collection. No single bad design aborts a run; partial data is recorded
// through the diagnostics log.
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wells-wood-research/protein-design-archive/internal/classify"
	"github.com/wells-wood-research/protein-design-archive/internal/diag"
	"github.com/wells-wood-research/protein-design-archive/internal/fetch"
	"github.com/wells-wood-research/protein-design-archive/internal/keywords"
	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
	"github.com/wells-wood-research/protein-design-archive/internal/normalize"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// Source is the narrow interface to the external per-design services.
// Implementations return the documented fallback (empty path, the
// fetch.NoDescription string) instead of failing.
type Source interface {
	PicturePath(pdb string) string
	Abstract(pdb string) string
}

// Result holds the outcome of a collection run.
type Result struct {
	Records []*types.DesignRecord
	Log     *diag.Log

	// MissingFiles counts designs whose structure file could not be
	// read; their records carry best-effort defaults.
	MissingFiles int
}

// Canonical returns the record-identifier form of a PDB code: trimmed,
// lower-case. File lookups upper-case at the point of path construction;
// these are the only two case conversions in the pipeline.
func Canonical(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Run processes the codes sequentially: each design completes extraction,
// normalization, and diagnostics before the next begins. Every requested
// code gets a diagnostics entry and a record, however little data was
// recoverable. Neighbor links are assigned after all records are
// assembled, since they depend on the whole collection.
func Run(codes []string, cfg types.CollectionConfig, curated classify.CuratedSet, labels classify.LabelTable, src Source, w io.Writer) Result {
	result := Result{Log: diag.NewLog()}

	for i, code := range codes {
		pdb := Canonical(code)
		if pdb == "" {
			continue
		}
		fmt.Fprintf(w, "%d/%d %s\n", i+1, len(codes), pdb)
		result.Log.Init(pdb)

		table, err := mmcif.ParseFile(filepath.Join(cfg.CIFDir, strings.ToUpper(pdb)+".cif"))
		if err != nil {
			fmt.Fprintf(w, "%s file not found.\n", pdb)
			result.MissingFiles++
			table = mmcif.Table{}
		}

		result.Records = append(result.Records, buildRecord(pdb, table, result.Log, curated, labels, src))
	}

	LinkNeighbors(result.Records)
	return result
}

// buildRecord assembles one design from its structure table and the
// external services, then runs the post-merge cleanup sweep and the final
// numeric coercion.
func buildRecord(pdb string, table mmcif.Table, log *diag.Log, curated classify.CuratedSet, labels classify.LabelTable, src Source) *types.DesignRecord {
	picture := src.PicturePath(pdb)
	if picture == "" {
		log.Add(pdb, "Invalid picture.")
	}

	authors := normalize.Authors(table, log, pdb)
	classification, suggestion := classify.Suggest(pdb, authors, curated, labels, log)
	releaseDate := normalize.ReleaseDate(table, log, pdb)
	pub := normalize.Publication(table, log, pdb)
	chains := normalize.Chains(table, log, pdb)
	subtitle, tags := normalize.TagsAndSubtitle(table, log, pdb)
	geom := normalize.CrystalGeometry(table, log, pdb)
	exp := normalize.Experimental(table, log, pdb)
	related := normalize.Related(table)

	abstract := src.Abstract(pdb)
	if abstract == "" || abstract == fetch.NoDescription {
		log.Add(pdb, "No abstract description found.")
	}

	rec := &types.DesignRecord{
		PDB:             pdb,
		PicturePath:     picture,
		Chains:          chains,
		Authors:         authors,
		Classification:  classification,
		SuggestedClass:  suggestion.Labels,
		SuggestedReason: suggestion.Reasons,
		Subtitle:        subtitle,
		Tags:            tags,
		Keywords:        keywords.Extract(abstract),
		ReleaseDate:     releaseDate,
		Publication:     pub.Citation,
		PublicationRef:  pub.Refs,
		PublicationCtry: pub.Country,
		Abstract:        abstract,
		RelatedPDB:      related,
		Crystal:         geom,
		ExptlMethod:     exp.Methods,
		Synthesis:       exp.SynthesisComment,
		Review:          true,
	}
	fillEmptyLists(rec)
	normalize.CleanRecord(rec)
	rec.FormulaWeight = normalize.ParseWeight(exp.FormulaWeight)
	return rec
}

// fillEmptyLists replaces nil list fields with empty slices so the output
// contract serializes them as arrays, never null.
func fillEmptyLists(rec *types.DesignRecord) {
	if rec.Chains == nil {
		rec.Chains = []types.Chain{}
	}
	if rec.Authors == nil {
		rec.Authors = []types.Author{}
	}
	if rec.SuggestedClass == nil {
		rec.SuggestedClass = []string{}
	}
	if rec.SuggestedReason == nil {
		rec.SuggestedReason = []string{}
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if rec.Keywords == nil {
		rec.Keywords = []string{}
	}
	if rec.RelatedPDB == nil {
		rec.RelatedPDB = []string{}
	}
	if rec.ExptlMethod == nil {
		rec.ExptlMethod = []string{}
	}
}

// LinkNeighbors assigns previous/next identifiers treating the collection
// as a circular sequence in its current order. A single record links to
// itself.
func LinkNeighbors(records []*types.DesignRecord) {
	n := len(records)
	for i, rec := range records {
		rec.PreviousDesign = records[(i-1+n)%n].PDB
		rec.NextDesign = records[(i+1)%n].PDB
	}
}

// WriteOutputs serializes the record collection and the diagnostics log
// to the configured paths.
func WriteOutputs(result Result, cfg types.CollectionConfig) error {
	data, err := json.MarshalIndent(result.Records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling design collection: %w", err)
	}
	if err := writeFile(cfg.OutputPath, data); err != nil {
		return err
	}

	summary, err := json.MarshalIndent(result.Log, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling diagnostics: %w", err)
	}
	return writeFile(cfg.SummaryPath, summary)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadCodesFile loads a PDB code list: codes separated by commas or
// newlines, blanks skipped.
func ReadCodesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading code list %s: %w", path, err)
	}
	var codes []string
	for _, field := range strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	}) {
		if code := Canonical(field); code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}
