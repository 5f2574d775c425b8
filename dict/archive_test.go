package dict

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/jake1104/KULIM/kerrors"
	"github.com/jake1104/KULIM/postag"
)

func TestWriteReadArchiveRoundTrip(t *testing.T) {
	files := []ArchiveFile{
		{Name: "a.bin", Data: []byte("hello")},
		{Name: "b.bin", Data: []byte{}},
		{Name: "c.bin", Data: []byte("world!!")},
	}
	var buf bytes.Buffer
	if err := WriteArchive(&buf, files); err != nil {
		t.Fatal(err)
	}
	got, err := ReadArchive(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, files) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, files)
	}
}

func TestReadArchiveBadMagic(t *testing.T) {
	data := make([]byte, 20)
	copy(data, "XXXX")
	_, err := ReadArchive(data)
	var dc *kerrors.DataCorruption
	if !errors.As(err, &dc) {
		t.Fatalf("expected DataCorruption for bad magic, got %v", err)
	}
}

func TestReadArchiveTooShort(t *testing.T) {
	_, err := ReadArchive([]byte{1, 2, 3})
	var dc *kerrors.DataCorruption
	if !errors.As(err, &dc) {
		t.Fatalf("expected DataCorruption for short input, got %v", err)
	}
}

func TestReadArchiveTruncatedTable(t *testing.T) {
	var buf bytes.Buffer
	WriteArchive(&buf, []ArchiveFile{{Name: "a.bin", Data: []byte("x")}})
	truncated := buf.Bytes()[:18] // cuts into the file table
	_, err := ReadArchive(truncated)
	var dc *kerrors.DataCorruption
	if !errors.As(err, &dc) {
		t.Fatalf("expected DataCorruption for truncated table, got %v", err)
	}
}

func TestDumpLoadRoundTrip(t *testing.T) {
	tr := New()
	tr.Insert("학교", postag.NNG, "학교")
	tr.Insert("가다", postag.VV, "가다")
	tr.Insert("학교", postag.NNP, "학교시설") // second pattern on same surface

	files := tr.Dump()
	loaded, err := Load(files)
	if err != nil {
		t.Fatal(err)
	}

	want := tr.Search("학교")
	got := loaded.Search("학교")
	if !reflect.DeepEqual(sortPatterns(got), sortPatterns(want)) {
		t.Errorf("Search(학교) after Load = %v, want %v", got, want)
	}
	if got := loaded.Search("가다"); len(got) != 1 || got[0].Lemma != "가다" {
		t.Errorf("Search(가다) after Load = %v", got)
	}
	if !loaded.Exists("학교") {
		t.Error("학교 should exist after Load")
	}
}

func TestLoadMissingPackedDict(t *testing.T) {
	_, err := Load([]ArchiveFile{{Name: "other.bin", Data: []byte("x")}})
	var dc *kerrors.DataCorruption
	if !errors.As(err, &dc) {
		t.Fatalf("expected DataCorruption for missing packed dict, got %v", err)
	}
}

func TestLoadTruncatedRecord(t *testing.T) {
	_, err := Load([]ArchiveFile{{Name: FilePackedDict, Data: []byte{1, 0, 0, 0}}})
	var dc *kerrors.DataCorruption
	if !errors.As(err, &dc) {
		t.Fatalf("expected DataCorruption for truncated record, got %v", err)
	}
}

func sortPatterns(ps []Pattern) []Pattern {
	out := make([]Pattern, len(ps))
	copy(out, ps)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Lemma > out[j].Lemma; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
