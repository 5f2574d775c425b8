package dict

import (
	"bytes"
	"encoding/binary"

	"github.com/jake1104/KULIM/kerrors"
	"github.com/jake1104/KULIM/postag"
)

// Dump packs the trie's raw (surface, POS, lemma) insertions and its
// intern tables into the three dictionary-archive files named by
// FilePackedDict, FilePosTable and FileLemmaTable. The failure-link
// index is intentionally not serialized; Load rebuilds it with a fresh
// Build call, which is far simpler than also persisting the derived
// match groups and is cheap relative to loading the archive itself.
func (t *Trie) Dump() []ArchiveFile {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var recs bytes.Buffer
	binary.Write(&recs, binary.LittleEndian, uint32(len(t.records)))
	for _, r := range t.records {
		writeString(&recs, r.surface)
		writeString(&recs, string(r.pos))
		writeString(&recs, r.lemma)
	}

	return []ArchiveFile{
		{Name: FilePackedDict, Data: recs.Bytes()},
		{Name: FilePosTable, Data: dumpInternTable(t.tables.pos)},
		{Name: FileLemmaTable, Data: dumpInternTable(t.tables.lemma)},
	}
}

// Load rebuilds a Trie from the files produced by Dump, re-inserting
// every recorded surface and finalizing with Build(true). The intern
// tables in the archive are informational only (ID assignment is
// re-derived from insertion order so it is always internally
// consistent); they exist so external tools can inspect POS/lemma
// vocabularies without decoding the trie itself.
func Load(files []ArchiveFile) (*Trie, error) {
	raw, ok := findFile(files, FilePackedDict)
	if !ok {
		return nil, kerrors.NewDataCorruption("dict.Load", "archive missing "+FilePackedDict)
	}

	r := bytes.NewReader(raw)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, kerrors.NewDataCorruption("dict.Load", "truncated record count")
	}

	trie := New()
	for i := uint32(0); i < count; i++ {
		surface, err := readString(r)
		if err != nil {
			return nil, kerrors.NewDataCorruption("dict.Load", "truncated surface")
		}
		pos, err := readString(r)
		if err != nil {
			return nil, kerrors.NewDataCorruption("dict.Load", "truncated pos")
		}
		lemma, err := readString(r)
		if err != nil {
			return nil, kerrors.NewDataCorruption("dict.Load", "truncated lemma")
		}
		if err := trie.Insert(surface, postag.Tag(pos), lemma); err != nil {
			return nil, err
		}
	}
	if err := trie.Build(true); err != nil {
		return nil, err
	}
	return trie, nil
}

func dumpInternTable(t *internTable) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(t.byID)))
	for _, s := range t.byID {
		writeString(&buf, s)
	}
	return buf.Bytes()
}

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := r.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
