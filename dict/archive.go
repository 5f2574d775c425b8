package dict

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jake1104/KULIM/kerrors"
)

// Archive magic and version, per the KLGM container format: a 4-byte
// magic, a 2-byte (major, minor) version, a 2-byte file count, 8
// reserved bytes, a per-file (name-length, name, size, offset) table,
// then concatenated file data, all little-endian.
var archiveMagic = [4]byte{'K', 'L', 'G', 'M'}

const (
	archiveVersionMajor = 1
	archiveVersionMinor = 0
)

// Well-known file names stored inside a dictionary archive. The
// failure-link index is optional: a loader may instead rebuild it with
// Trie.Build after restoring the raw trie.
const (
	FilePackedDict    = "dict.bin"
	FilePosTable      = "pos.tab"
	FileLemmaTable    = "lemma.tab"
	FileTransitions   = "transitions.bin"
	FileFailureLinks  = "failure.bin"
)

// ArchiveFile is one named blob stored in a dictionary archive.
type ArchiveFile struct {
	Name string
	Data []byte
}

// WriteArchive serializes files into the KLGM container format.
func WriteArchive(w io.Writer, files []ArchiveFile) error {
	if len(files) > 0xFFFF {
		return kerrors.NewInvariantViolation("dict.WriteArchive", "file count exceeds 16-bit field")
	}

	var header bytes.Buffer
	header.Write(archiveMagic[:])
	header.WriteByte(archiveVersionMajor)
	header.WriteByte(archiveVersionMinor)
	binary.Write(&header, binary.LittleEndian, uint16(len(files)))
	header.Write(make([]byte, 8)) // reserved

	type entry struct {
		name []byte
		size uint64
	}
	entries := make([]entry, len(files))
	for i, f := range files {
		if len(f.Name) > 0xFFFF {
			return kerrors.NewInvariantViolation("dict.WriteArchive", "file name exceeds 16-bit length field")
		}
		entries[i] = entry{name: []byte(f.Name), size: uint64(len(f.Data))}
	}

	tableSize := 0
	for _, e := range entries {
		tableSize += 2 + len(e.name) + 8 + 8
	}
	offset := uint64(header.Len() + tableSize)

	var table bytes.Buffer
	for _, e := range entries {
		binary.Write(&table, binary.LittleEndian, uint16(len(e.name)))
		table.Write(e.name)
		binary.Write(&table, binary.LittleEndian, e.size)
		binary.Write(&table, binary.LittleEndian, offset)
		offset += e.size
	}

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	if _, err := w.Write(table.Bytes()); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := w.Write(f.Data); err != nil {
			return err
		}
	}
	return nil
}

// ReadArchive parses the KLGM container format out of a full in-memory
// image. Archives are expected to be small enough (a packaged
// dictionary, not a media file) that reading the whole thing up front
// is the simplest correct approach.
func ReadArchive(data []byte) ([]ArchiveFile, error) {
	if len(data) < 16 {
		return nil, kerrors.NewDataCorruption("dict.ReadArchive", "file shorter than header")
	}
	if !bytes.Equal(data[0:4], archiveMagic[:]) {
		return nil, kerrors.NewDataCorruption("dict.ReadArchive", "bad magic bytes")
	}
	// data[4], data[5] are (major, minor); this reader accepts any
	// version and relies on field layout stability.
	count := binary.LittleEndian.Uint16(data[6:8])
	pos := 16

	type entry struct {
		name   string
		size   uint64
		offset uint64
	}
	entries := make([]entry, 0, count)
	for i := uint16(0); i < count; i++ {
		if pos+2 > len(data) {
			return nil, kerrors.NewDataCorruption("dict.ReadArchive", "truncated file table")
		}
		nameLen := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
		pos += 2
		if pos+nameLen+16 > len(data) {
			return nil, kerrors.NewDataCorruption("dict.ReadArchive", "truncated file table entry")
		}
		name := string(data[pos : pos+nameLen])
		pos += nameLen
		size := binary.LittleEndian.Uint64(data[pos : pos+8])
		pos += 8
		offset := binary.LittleEndian.Uint64(data[pos : pos+8])
		pos += 8
		entries = append(entries, entry{name: name, size: size, offset: offset})
	}

	out := make([]ArchiveFile, 0, len(entries))
	for _, e := range entries {
		end := e.offset + e.size
		if e.offset > uint64(len(data)) || end > uint64(len(data)) || end < e.offset {
			return nil, kerrors.NewDataCorruption("dict.ReadArchive", "declared offset outside file")
		}
		out = append(out, ArchiveFile{Name: e.name, Data: data[e.offset:end]})
	}
	return out, nil
}

func findFile(files []ArchiveFile, name string) ([]byte, bool) {
	for _, f := range files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}
