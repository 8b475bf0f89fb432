// Copyright Wells Wood Research Group, 2026. All rights reserved.

package fetch

import (
	"io"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// abstractPattern matches the labeled abstract span in the rendered text
// of a structure page. The label is followed by a non-breaking space on
// the live site; a plain space is also accepted.
var abstractPattern = regexp.MustCompile(`PubMed Abstract:[\x{00A0} ]*([^&]+)`)

// Abstract fetches the structure page for the design and extracts the
// abstract span from its rendered text. Any fetch failure, non-200
// response, or missing span collapses to NoDescription.
func (c *Client) Abstract(pdb string) string {
	resp, err := c.get(structurePageBase + pdb)
	if err != nil {
		return NoDescription
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NoDescription
	}

	text := pageText(resp.Body)
	m := abstractPattern.FindStringSubmatch(text)
	if m == nil {
		return NoDescription
	}
	abstract := strings.TrimSpace(m[1])
	if abstract == "" {
		return NoDescription
	}
	return abstract
}

// pageText renders an HTML document to its visible text, skipping script
// and style elements.
func pageText(r io.Reader) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(r)

	skip := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skip++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}
