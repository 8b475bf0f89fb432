// Copyright Wells Wood Research Group, 2026. All rights reserved.

package normalize

import (
	"reflect"
	"testing"

	"github.com/wells-wood-research/protein-design-archive/internal/mmcif"
)

func TestTagsAndSubtitle(t *testing.T) {
	table := mmcif.Table{
		"_struct.title":                 {"DE NOVO designed coiled coil."},
		"_struct_keywords.pdbx_keywords": {"HELIX"},
		"_struct_keywords.text":          {"helix, coil."},
	}
	log := newLog(t, "1abc")

	subtitle, tags := TagsAndSubtitle(table, log, "1abc")
	if subtitle != "De novo designed coiled coil" {
		t.Errorf("subtitle = %q", subtitle)
	}
	want := []string{"coil", "helix"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
	if len(log.Notes("1abc")) != 0 {
		t.Errorf("unexpected diagnostics: %v", log.Notes("1abc"))
	}
}

func TestTagsUnionDedup(t *testing.T) {
	table := mmcif.Table{
		"_struct.title":                  {"T"},
		"_struct_keywords.pdbx_keywords": {"HELIX"},
		"_struct_keywords.text":          {"helix, coil"},
	}
	log := newLog(t, "1abc")

	_, tags := TagsAndSubtitle(table, log, "1abc")
	if !reflect.DeepEqual(tags, []string{"coil", "helix"}) {
		t.Errorf("tags = %v, want case-folded deduplicated union", tags)
	}
}

func TestTagsAndSubtitleMissing(t *testing.T) {
	log := newLog(t, "1abc")
	subtitle, tags := TagsAndSubtitle(mmcif.Table{}, log, "1abc")
	if subtitle != "" || tags != nil {
		t.Errorf("subtitle = %q, tags = %v; want empty", subtitle, tags)
	}
	for _, note := range []string{"No keyword.", "No subtitle.", "No tags."} {
		if !hasNote(log, "1abc", note) {
			t.Errorf("missing %q diagnostic, got %v", note, log.Notes("1abc"))
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"hello WORLD", "Hello world"},
		{"", ""},
		{"x", "X"},
		{"123abc", "123abc"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
