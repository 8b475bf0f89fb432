// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package fetch talks to the external structure-data services: the image
// CDN for picture probes, the structure pages for abstracts, and the file
// archive for structure downloads. Every call is a single blocking attempt
// with no retry: the pipeline is an offline batch job, and each caller has
// a documented fallback for a failed fetch.
package fetch

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

// Base URLs for the external services. Declared as vars so tests can
// substitute httptest servers.
var (
	pictureBase       = "https://cdn.rcsb.org/images/structures/"
	structurePageBase = "https://www.rcsb.org/structure/"
	fileDownloadBase  = "https://files.rcsb.org/download/"
)

// NoDescription is the fallback abstract for a failed fetch or a page
// without a recognizable abstract span.
const NoDescription = "No description found."

// Client fetches per-design resources from the external services.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient builds a fetch client from the shared HTTP settings.
func NewClient(cfg types.HTTPConfig) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
}

// PicturePath probes the image CDN for the design's assembly picture and
// returns its URL, or empty when the probe fails or the image does not
// exist. A missing picture is a data condition, not an error.
func (c *Client) PicturePath(pdb string) string {
	url := pictureBase + pdb + "_assembly-1.jpeg"

	resp, err := c.get(url)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	return url
}

func (c *Client) get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return c.http.Do(req)
}

// uppercased returns the file-lookup form of a PDB code. File names on the
// archive are upper-case; record identifiers stay lower-case.
func uppercased(pdb string) string {
	return strings.ToUpper(strings.TrimSpace(pdb))
}
