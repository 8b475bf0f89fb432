// Copyright Wells Wood Research Group, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wells-wood-research/protein-design-archive/internal/classify"
	"github.com/wells-wood-research/protein-design-archive/internal/fetch"
	"github.com/wells-wood-research/protein-design-archive/internal/pipeline"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

var collectCmd = &cobra.Command{
	Use:   "collect [codes...]",
	Short: "Build catalogue records from downloaded structure files",
	Long: `Collect runs the metadata pipeline over the given design codes. For each
code it parses the downloaded structure file, normalizes the metadata
aspects into a design record, suggests a classification, fetches the
rendered picture and publication abstract, and links the design to its
neighbors. The assembled catalogue and a per-design diagnostics summary
are written as JSON.

A design whose structure file is missing still produces a record with
fallback values, so the catalogue always covers every requested code.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	collectCmd.Flags().String("cif-dir", defaultCIFDir, "directory holding downloaded structure files")
	collectCmd.Flags().String("codes-file", "", "file of design codes, comma- or newline-separated")
	collectCmd.Flags().String("labels", "data/design_superfamilies.yaml", "author→label table (YAML)")
	collectCmd.Flags().String("curated", "data/classification.json", "curated classification set (JSON)")
	collectCmd.Flags().String("out", "data/data.json", "output path for the catalogue")
	collectCmd.Flags().String("summary-out", "data/summary.json", "output path for per-design diagnostics")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	codes, err := gatherCodes(cmd, args)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return fmt.Errorf("provide one or more design codes, or --codes-file")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	cifDir, _ := cmd.Flags().GetString("cif-dir")
	labelsPath, _ := cmd.Flags().GetString("labels")
	curatedPath, _ := cmd.Flags().GetString("curated")
	outPath, _ := cmd.Flags().GetString("out")
	summaryPath, _ := cmd.Flags().GetString("summary-out")

	cfg := types.CollectionConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		CIFDir:         cifDir,
		LabelTablePath: labelsPath,
		CuratedSetPath: curatedPath,
		OutputPath:     outPath,
		SummaryPath:    summaryPath,
	}

	labels, err := classify.LoadLabelTable(cfg.LabelTablePath)
	if err != nil {
		return fmt.Errorf("loading label table: %w", err)
	}
	curated, err := classify.LoadCuratedSet(cfg.CuratedSetPath)
	if err != nil {
		return fmt.Errorf("loading curated set: %w", err)
	}

	started := time.Now()
	src := fetch.NewClient(cfg.HTTPConfig)
	result := pipeline.Run(codes, cfg, curated, labels, src, os.Stdout)

	if err := pipeline.WriteOutputs(result, cfg); err != nil {
		return err
	}

	fmt.Printf("\ncollected %d design(s) in %s (%d structure file(s) missing)\n",
		len(result.Records), time.Since(started).Round(time.Second), result.MissingFiles)
	fmt.Printf("catalogue: %s\nsummary:   %s\n", cfg.OutputPath, cfg.SummaryPath)
	return nil
}
