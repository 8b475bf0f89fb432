// Copyright Wells Wood Research Group, 2026. All rights reserved.

package diag

import (
	"encoding/json"
	"testing"
)

func TestLogLifecycle(t *testing.T) {
	log := NewLog()

	log.Init("1abc")
	log.Init("2def")
	log.Add("1abc", "Missing authors.")
	log.Add("1abc", "No tags.")

	if got := log.Notes("1abc"); len(got) != 2 || got[0] != "Missing authors." {
		t.Errorf("Notes(1abc) = %v", got)
	}
	if got := log.Notes("2def"); got == nil || len(got) != 0 {
		t.Errorf("initialized design should have an empty, non-nil note list, got %v", got)
	}
	if got := log.Identifiers(); len(got) != 2 || got[0] != "1abc" || got[1] != "2def" {
		t.Errorf("Identifiers() = %v", got)
	}
	if log.Len() != 2 {
		t.Errorf("Len() = %d, want 2", log.Len())
	}
}

func TestInitResets(t *testing.T) {
	log := NewLog()
	log.Add("1abc", "stale note")
	log.Init("1abc")

	if got := log.Notes("1abc"); len(got) != 0 {
		t.Errorf("Init should reset notes, got %v", got)
	}
	if log.Len() != 1 {
		t.Errorf("Len() = %d, want 1", log.Len())
	}
}

func TestAddRegistersUnknown(t *testing.T) {
	log := NewLog()
	log.Add("9xyz", "Invalid picture.")

	if got := log.Identifiers(); len(got) != 1 || got[0] != "9xyz" {
		t.Errorf("Identifiers() = %v", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	log := NewLog()
	log.Init("1abc")
	log.Add("1abc", "No release date.")

	data, err := json.Marshal(log)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string][]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded["1abc"]) != 1 || decoded["1abc"][0] != "No release date." {
		t.Errorf("decoded = %v", decoded)
	}
}
