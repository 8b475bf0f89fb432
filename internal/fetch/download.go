// Copyright Wells Wood Research Group, 2026. All rights reserved.

package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// DownloadResult holds the outcome of a batch structure-file download.
type DownloadResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of codes processed.
func (r DownloadResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads failed.
func (r DownloadResult) HasFailures() bool {
	return r.Failed > 0
}

// DownloadCIF fetches the structure file for one design into dir as
// <CODE-UPPERCASE>.cif. An existing file is left alone. The download goes
// to a temp file first and is renamed on success, so a partial download
// never shadows a real structure file. The skipped return reports whether
// the file already existed.
func (c *Client) DownloadCIF(pdb, dir string) (skipped bool, err error) {
	name := uppercased(pdb) + ".cif"
	destPath := filepath.Join(dir, name)

	if _, err := os.Stat(destPath); err == nil {
		return true, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	resp, err := c.get(fileDownloadBase + name)
	if err != nil {
		return false, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HTTP %d for %s", resp.StatusCode, name)
	}

	tmpFile, err := os.CreateTemp(dir, ".download-*.tmp")
	if err != nil {
		return false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("renaming temp file: %w", err)
	}
	return false, nil
}

// DownloadBatch fetches structure files for multiple codes, printing
// per-item status and returning a summary. It continues after individual
// failures and applies a delay between consecutive downloads.
func (c *Client) DownloadBatch(codes []string, cfg types.AcquisitionConfig, w io.Writer) DownloadResult {
	var result DownloadResult
	for i, code := range codes {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		skipped, err := c.DownloadCIF(code, cfg.CIFDir)
		switch {
		case err != nil:
			fmt.Fprintf(w, "failed:  %s (%v)\n", code, err)
			result.Failed++
		case skipped:
			fmt.Fprintf(w, "skipped: %s (already exists)\n", code)
			result.Skipped++
		default:
			fmt.Fprintf(w, "downloaded: %s\n", code)
			result.Downloaded++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}
