// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package diag accumulates per-design diagnostic notes during a collection
// run. The log is owned by the pipeline driver and passed by reference into
// every normalizer; it is read once, at the final output step.
package diag

import "encoding/json"

// Log maps a design identifier to its ordered diagnostic notes. Every
// identifier the pipeline was asked to process has an entry, so post-run
// accounting is complete even when a design contributed no notes.
type Log struct {
	notes map[string][]string
	order []string
}

// NewLog returns an empty log for one collection run.
func NewLog() *Log {
	return &Log{notes: make(map[string][]string)}
}

// Init registers an identifier with an empty note list. Processing of each
// design starts here; a second Init for the same identifier resets it.
func (l *Log) Init(id string) {
	if _, seen := l.notes[id]; !seen {
		l.order = append(l.order, id)
	}
	l.notes[id] = []string{}
}

// Add appends a note for the identifier. Identifiers not seen by Init are
// registered on first use.
func (l *Log) Add(id, note string) {
	if _, seen := l.notes[id]; !seen {
		l.Init(id)
	}
	l.notes[id] = append(l.notes[id], note)
}

// Notes returns the notes recorded for the identifier, in insertion order.
func (l *Log) Notes(id string) []string {
	return l.notes[id]
}

// Identifiers returns all registered identifiers in registration order.
func (l *Log) Identifiers() []string {
	return append([]string(nil), l.order...)
}

// Len returns the number of registered identifiers.
func (l *Log) Len() int {
	return len(l.order)
}

// MarshalJSON serializes the log as an identifier→notes object.
func (l *Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.notes)
}
