// Copyright Wells Wood Research Group, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wells-wood-research/protein-design-archive/internal/fetch"
	"github.com/wells-wood-research/protein-design-archive/internal/pipeline"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "protein-design-archive/0.1"
	defaultCIFDir    = "data/cif_files"
)

var acquireCmd = &cobra.Command{
	Use:   "acquire [codes...]",
	Short: "Download deposited structure files for design codes",
	Long: `Acquire downloads the deposited mmCIF structure file for each design
code into the structure directory. Codes can be given as arguments or read
from a comma- or newline-separated file. Files already present are skipped.`,
	RunE: runAcquire,
}

func init() {
	acquireCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	acquireCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	acquireCmd.Flags().String("cif-dir", defaultCIFDir, "directory for downloaded structure files")
	acquireCmd.Flags().String("codes-file", "", "file of design codes, comma- or newline-separated")

	rootCmd.AddCommand(acquireCmd)
}

func runAcquire(cmd *cobra.Command, args []string) error {
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
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDelay
	}
	cifDir, _ := cmd.Flags().GetString("cif-dir")

	cfg := types.AcquisitionConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DownloadDelay: delay,
		CIFDir:        cifDir,
	}

	client := fetch.NewClient(cfg.HTTPConfig)
	result := client.DownloadBatch(codes, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d structure file(s) failed to download", result.Failed)
	}
	return nil
}

// gatherCodes merges canonicalized codes from arguments and --codes-file.
func gatherCodes(cmd *cobra.Command, args []string) ([]string, error) {
	var codes []string
	for _, arg := range args {
		if code := pipeline.Canonical(arg); code != "" {
			codes = append(codes, code)
		}
	}

	codesFile, _ := cmd.Flags().GetString("codes-file")
	if codesFile != "" {
		fromFile, err := pipeline.ReadCodesFile(codesFile)
		if err != nil {
			return nil, err
		}
		codes = append(codes, fromFile...)
	}

	return codes, nil
}
