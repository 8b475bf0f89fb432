// Copyright Wells Wood Research Group, 2026. All rights reserved.

package fetch

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

const samplePage = `<html><head>
<script>var ignored = "PubMed Abstract:&nbsp;not this";</script>
<style>.x { color: red }</style>
</head><body>
<div>Structure summary</div>
<div>PubMed Abstract:&nbsp;Coiled coils are among the best understood protein folds &amp; motifs.</div>
</body></html>`

const fakeCIF = "data_1ABC\n_entry.id 1ABC\n"

// newTestServer serves picture probes, structure pages, and cif downloads
// based on URL path.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/images/"):
			if strings.Contains(r.URL.Path, "missing") {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "image/jpeg")
			fmt.Fprint(w, "jpeg-bytes")
		case strings.HasPrefix(r.URL.Path, "/structure/"):
			if strings.Contains(r.URL.Path, "noabstract") {
				fmt.Fprint(w, "<html><body>No abstract here</body></html>")
				return
			}
			fmt.Fprint(w, samplePage)
		case strings.HasPrefix(r.URL.Path, "/download/"):
			if strings.Contains(r.URL.Path, "MISSING") {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, fakeCIF)
		default:
			http.NotFound(w, r)
		}
	}))
}

// overrideBaseURLs points the package-level base URLs at the test server
// and returns a cleanup function that restores the originals.
func overrideBaseURLs(tsURL string) func() {
	origPicture := pictureBase
	origPage := structurePageBase
	origDownload := fileDownloadBase

	pictureBase = tsURL + "/images/"
	structurePageBase = tsURL + "/structure/"
	fileDownloadBase = tsURL + "/download/"

	return func() {
		pictureBase = origPicture
		structurePageBase = origPage
		fileDownloadBase = origDownload
	}
}

func testClient() *Client {
	return NewClient(types.HTTPConfig{
		Timeout:   10 * time.Second,
		UserAgent: "protein-design-archive-test/0.1",
	})
}

func TestPicturePath(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()
	restore := overrideBaseURLs(ts.URL)
	defer restore()

	c := testClient()

	got := c.PicturePath("1abc")
	want := pictureBase + "1abc_assembly-1.jpeg"
	if got != want {
		t.Errorf("PicturePath = %q, want %q", got, want)
	}

	if got := c.PicturePath("missing"); got != "" {
		t.Errorf("PicturePath for missing image = %q, want empty", got)
	}
}

func TestPicturePathFetchFailure(t *testing.T) {
	restore := overrideBaseURLs("http://127.0.0.1:1")
	defer restore()

	if got := testClient().PicturePath("1abc"); got != "" {
		t.Errorf("PicturePath on fetch failure = %q, want empty", got)
	}
}

func TestAbstract(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()
	restore := overrideBaseURLs(ts.URL)
	defer restore()

	c := testClient()

	got := c.Abstract("1abc")
	want := "Coiled coils are among the best understood protein folds"
	if got != want {
		t.Errorf("Abstract = %q, want %q", got, want)
	}
}

func TestAbstractFallbacks(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()
	restore := overrideBaseURLs(ts.URL)
	defer restore()

	c := testClient()

	if got := c.Abstract("noabstract"); got != NoDescription {
		t.Errorf("Abstract without span = %q, want %q", got, NoDescription)
	}

	structurePageBase = ts.URL + "/nowhere/"
	if got := c.Abstract("1abc"); got != NoDescription {
		t.Errorf("Abstract on 404 = %q, want %q", got, NoDescription)
	}

	structurePageBase = "http://127.0.0.1:1/"
	if got := c.Abstract("1abc"); got != NoDescription {
		t.Errorf("Abstract on fetch failure = %q, want %q", got, NoDescription)
	}
}

func TestDownloadCIF(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()
	restore := overrideBaseURLs(ts.URL)
	defer restore()

	dir := t.TempDir()
	c := testClient()

	skipped, err := c.DownloadCIF("1abc", dir)
	if err != nil {
		t.Fatalf("DownloadCIF: %v", err)
	}
	if skipped {
		t.Error("expected download, got skipped")
	}

	data, err := os.ReadFile(filepath.Join(dir, "1ABC.cif"))
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != fakeCIF {
		t.Errorf("file content = %q", string(data))
	}

	// Second attempt is skipped.
	skipped, err = c.DownloadCIF("1abc", dir)
	if err != nil {
		t.Fatalf("DownloadCIF: %v", err)
	}
	if !skipped {
		t.Error("expected skipped on existing file")
	}
}

func TestDownloadBatch(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()
	restore := overrideBaseURLs(ts.URL)
	defer restore()

	dir := t.TempDir()
	c := testClient()
	var buf bytes.Buffer

	cfg := types.AcquisitionConfig{CIFDir: dir}
	result := c.DownloadBatch([]string{"1abc", "missing", "2def"}, cfg, &buf)

	if result.Downloaded != 2 {
		t.Errorf("Downloaded = %d, want 2", result.Downloaded)
	}
	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}
	if result.Total() != 3 {
		t.Errorf("Total = %d, want 3", result.Total())
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if !strings.Contains(buf.String(), "Batch summary:") {
		t.Error("output should contain batch summary")
	}
}
