// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package mmcif reads the crystallographic-metadata subset of the mmCIF
// (STAR) format into a flat table of namespaced field names to ordered
// string rows. It covers single key-value pairs, loop_ blocks, quoted
// values, and semicolon-delimited multiline text fields, which is what
// deposition files actually use for the fields the archive consumes.
package mmcif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table maps a namespaced field name (e.g. "_citation.title") to its
// ordered rows. A single-value field is a one-row list; loop_ columns keep
// row index i aligned across the fields declared in the same loop.
type Table map[string][]string

// ParseFile reads and parses the structure file at path.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a structure file into a Table. Unrecognized constructs are
// skipped rather than rejected: a partially readable file yields a partial
// table, and missing data is handled downstream.
func Parse(r io.Reader) (Table, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	table := make(Table)
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch {
		case tok.isKeyword("loop_"):
			i = parseLoop(table, tokens, i+1)
		case tok.isField():
			// Plain key-value pair; the value may be absent in a
			// truncated file.
			if i+1 < len(tokens) && !tokens[i+1].isField() && !tokens[i+1].isReserved() {
				table[tok.text] = append(table[tok.text], tokens[i+1].text)
				i += 2
			} else {
				i++
			}
		default:
			// data_ headers, stop_, stray values.
			i++
		}
	}
	return table, nil
}

// parseLoop consumes a loop_ block starting at tokens[start]: first the
// field-name header, then rows of values distributed across those fields
// in declaration order. Returns the index of the first token past the loop.
func parseLoop(table Table, tokens []token, start int) int {
	i := start
	var fields []string
	for i < len(tokens) && tokens[i].isField() {
		fields = append(fields, tokens[i].text)
		i++
	}
	if len(fields) == 0 {
		return i
	}

	col := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.isField() || tok.isReserved() {
			break
		}
		table[fields[col]] = append(table[fields[col]], tok.text)
		col = (col + 1) % len(fields)
		i++
	}
	return i
}

// token is one lexical unit of the file. Quoted and semicolon-delimited
// values are marked so field-name detection does not fire on data that
// merely starts with an underscore.
type token struct {
	text   string
	quoted bool
}

func (t token) isField() bool {
	return !t.quoted && strings.HasPrefix(t.text, "_")
}

func (t token) isKeyword(kw string) bool {
	return !t.quoted && strings.EqualFold(t.text, kw)
}

func (t token) isReserved() bool {
	if t.quoted {
		return false
	}
	lower := strings.ToLower(t.text)
	return lower == "loop_" || lower == "stop_" || lower == "global_" ||
		strings.HasPrefix(lower, "data_") || strings.HasPrefix(lower, "save_")
}

func tokenize(r io.Reader) ([]token, error) {
	var tokens []token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	inText := false
	var text strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if inText {
			if strings.HasPrefix(line, ";") {
				tokens = append(tokens, token{text: text.String(), quoted: true})
				text.Reset()
				inText = false
				continue
			}
			if text.Len() > 0 {
				text.WriteByte('\n')
			}
			text.WriteString(line)
			continue
		}

		if strings.HasPrefix(line, ";") {
			inText = true
			text.WriteString(strings.TrimPrefix(line, ";"))
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens = append(tokens, splitFields(trimmed)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure data: %w", err)
	}
	// An unterminated text field still contributes its partial value.
	if inText {
		tokens = append(tokens, token{text: text.String(), quoted: true})
	}
	return tokens, nil
}

// splitFields splits one line into whitespace-separated tokens, honoring
// single- and double-quoted values.
func splitFields(line string) []token {
	var tokens []token
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			quote := line[i]
			i++
			start := i
			// The closing quote must be followed by whitespace or
			// end the line; embedded quotes are data.
			for i < len(line) {
				if line[i] == quote && (i+1 == len(line) || line[i+1] == ' ' || line[i+1] == '\t') {
					break
				}
				i++
			}
			tokens = append(tokens, token{text: line[start:i], quoted: true})
			if i < len(line) {
				i++ // closing quote
			}
			continue
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		tokens = append(tokens, token{text: line[start:i]})
	}
	return tokens
}

// First returns the first row of the field, reporting whether it exists.
// A missing key or an empty row list both read as absent.
func (t Table) First(key string) (string, bool) {
	return t.At(key, 0)
}

// At returns row i of the field. Out-of-range indices and missing keys are
// the valid "missing data" state, never an error.
func (t Table) At(key string, i int) (string, bool) {
	rows, ok := t[key]
	if !ok || i < 0 || i >= len(rows) {
		return "", false
	}
	return rows[i], true
}

// Rows returns all rows of the field, or nil when the key is absent.
func (t Table) Rows(key string) []string {
	return t[key]
}

// Prose normalizes a value extracted as free text: surrounding whitespace
// and trailing periods are stripped.
func Prose(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}
