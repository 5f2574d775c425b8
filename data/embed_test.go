package data

import (
	"errors"
	"testing"

	"github.com/jake1104/KULIM/kerrors"
)

func TestEntriesParsesEmbeddedSeedDictionary(t *testing.T) {
	entries, err := Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("embedded seed dictionary parsed to zero entries")
	}
	for _, e := range entries {
		if e.Surface == "" || e.POS == "" || e.Lemma == "" {
			t.Errorf("entry with empty field: %+v", e)
		}
	}
}

func TestParseEntriesSkipsBlankAndCommentLines(t *testing.T) {
	raw := []byte("# comment\n\n친구\tNNG\t친구\n")
	entries, err := ParseEntries(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Surface != "친구" {
		t.Errorf("ParseEntries = %+v, want single 친구 entry", entries)
	}
}

func TestParseEntriesRejectsMalformedLine(t *testing.T) {
	raw := []byte("친구\tNNG\n") // missing lemma field
	_, err := ParseEntries(raw)
	var dc *kerrors.DataCorruption
	if !errors.As(err, &dc) {
		t.Fatalf("expected DataCorruption for malformed line, got %v", err)
	}
}

func TestParseEntriesEmpty(t *testing.T) {
	entries, err := ParseEntries([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("ParseEntries(empty) = %v, want empty", entries)
	}
}
