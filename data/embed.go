// Package data embeds the seed dictionary shipped with the module: a
// small but broad-coverage set of (surface, POS, lemma) triples used
// to bootstrap an analyzer without requiring a separately distributed
// archive.
package data

import (
	_ "embed"
	"bufio"
	"strings"

	"github.com/jake1104/KULIM/kerrors"
	"github.com/jake1104/KULIM/postag"
)

//go:embed dict.txt
var SeedDict []byte

// Entry is one line of the seed dictionary.
type Entry struct {
	Surface string
	POS     postag.Tag
	Lemma   string
}

// Entries parses the embedded seed dictionary: tab-separated
// (surface, POS, lemma), one entry per line, blank lines and lines
// starting with "#" ignored.
func Entries() ([]Entry, error) {
	return ParseEntries(SeedDict)
}

// ParseEntries parses the same tab-separated format as Entries from an
// arbitrary byte slice, so callers (dictgen, tests) can load a
// replacement or supplementary source file the same way.
func ParseEntries(raw []byte) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, kerrors.NewDataCorruption("data.ParseEntries", "malformed seed dictionary line")
		}
		out = append(out, Entry{
			Surface: fields[0],
			POS:     postag.Tag(fields[1]),
			Lemma:   fields[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
