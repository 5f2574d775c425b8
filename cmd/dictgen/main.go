// Command dictgen generates data/dict.txt from a kaikki.org Korean
// dictionary dump (JSONL format).
//
// Download the dump from https://kaikki.org/dictionary/Korean/
// then run:
//
//	go run ./cmd/dictgen -input kaikki.org-dictionary-Korean.jsonl
//
// Output: data/dict.txt (commit this file). Regenerate when a new
// Wiktionary dump is available.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/jake1104/KULIM/postag"
)

const (
	defaultInput   = "data/dictionary/kaikki.org-dictionary-Korean.jsonl"
	defaultOutput  = "data/dict.txt"
	scannerBufSize = 1 << 20 // 1 MB
	minSurfaceRunes = 1
)

// kaikkiEntry holds only the fields needed from each JSONL line.
type kaikkiEntry struct {
	Word string `json:"word"`
	POS  string `json:"pos"`
}

// entry is one (surface, POS, lemma) triple bound for dict.txt.
type entry struct {
	surface string
	pos     postag.Tag
	lemma   string
}

func main() {
	inputPath := flag.String("input", defaultInput, "path to kaikki.org JSONL dump")
	outputPath := flag.String("output", defaultOutput, "output path for dict.txt")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: dictgen -input <file> [-output <file>]\n")
		os.Exit(1)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: open input: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	seen := make(map[string]entry)

	for scanner.Scan() {
		line := scanner.Bytes()
		var raw kaikkiEntry
		if err := json.Unmarshal(line, &raw); err != nil {
			// Skip malformed lines silently; they are rare in kaikki dumps.
			continue
		}

		tag, ok := mapPOS(raw.POS)
		if !ok {
			continue
		}

		word := strings.TrimSpace(raw.Word)
		if !isAcceptable(word) {
			continue
		}

		e := buildEntry(word, tag)
		if e == nil {
			continue
		}

		key := string(e.pos) + "\t" + e.surface
		seen[key] = *e
	}

	scanErr := scanner.Err()

	// Close input file explicitly after scanning (no defer, avoids exitAfterDefer).
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: close input: %v\n", err)
		os.Exit(1)
	}

	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "dictgen: scan error: %v\n", scanErr)
		os.Exit(1)
	}

	lines := make([]string, 0, len(seen))
	for _, e := range seen {
		lines = append(lines, e.surface+"\t"+string(e.pos)+"\t"+e.lemma)
	}
	// Sort by surface, ties broken by POS, for deterministic output.
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })

	out, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: create output: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(out)
	posCounts := make(map[postag.Tag]int)

	for _, l := range lines {
		if _, writeErr := fmt.Fprintln(w, l); writeErr != nil {
			fmt.Fprintf(os.Stderr, "dictgen: write error: %v\n", writeErr)
			os.Exit(1)
		}
		fields := strings.SplitN(l, "\t", 3)
		posCounts[postag.Tag(fields[1])]++
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: flush error: %v\n", err)
		os.Exit(1)
	}

	info, err := out.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: stat output: %v\n", err)
		os.Exit(1)
	}

	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: close output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Total entries: %d\n", len(lines))
	for _, tag := range []postag.Tag{postag.NNG, postag.NNP, postag.VV, postag.VA, postag.MAG, postag.IC} {
		fmt.Fprintf(os.Stderr, "  %s: %d\n", tag, posCounts[tag])
	}
	fmt.Fprintf(os.Stderr, "Output file: %s (%d bytes)\n", *outputPath, info.Size())
}

// mapPOS maps a kaikki Korean POS tag to a dictionary tag. Returns
// false if the POS should be skipped entirely (kaikki carries many
// affix/particle sub-distinctions the closed tag set does not need).
func mapPOS(pos string) (postag.Tag, bool) {
	switch pos {
	case "noun":
		return postag.NNG, true
	case "name":
		return postag.NNP, true
	case "pron":
		return postag.NP, true
	case "num":
		return postag.NR, true
	case "verb":
		return postag.VV, true
	case "adj":
		return postag.VA, true
	case "det":
		return postag.MM, true
	case "adv":
		return postag.MAG, true
	case "conj":
		return postag.MAJ, true
	case "intj":
		return postag.IC, true
	case "particle":
		return postag.JX, true
	default:
		return "", false
	}
}

// isAcceptable reports whether word is suitable for the dictionary: no
// whitespace, no Latin/digit runes, and at least minSurfaceRunes runes
// of Hangul.
func isAcceptable(word string) bool {
	runes := []rune(word)
	if len(runes) < minSurfaceRunes {
		return false
	}
	for _, r := range runes {
		if unicode.IsSpace(r) {
			return false
		}
		if unicode.IsDigit(r) {
			return false
		}
		if r < '가' || r > '힣' {
			// Outside the precomposed Hangul syllable block.
			return false
		}
	}
	return true
}

// buildEntry derives the (surface, lemma) pair for an accepted word.
// Predicate entries store the bare stem as surface (stripping the
// citation -다 suffix) and the full citation form as lemma, matching
// the convention used throughout data/dict.txt; every other category
// stores the word unchanged as both surface and lemma.
func buildEntry(word string, tag postag.Tag) *entry {
	if tag == postag.VV || tag == postag.VA {
		stem := stripCitation(word)
		if stem == "" {
			return nil
		}
		return &entry{surface: stem, pos: tag, lemma: word}
	}
	return &entry{surface: word, pos: tag, lemma: word}
}

// stripCitation removes the dictionary citation ending "다" from a
// predicate lemma, e.g. "가다" -> "가". Words that do not end in the
// citation form are skipped: kaikki occasionally misclassifies a noun
// as a verb sense, and such entries are not safe stems.
func stripCitation(word string) string {
	runes := []rune(word)
	if len(runes) < 2 || runes[len(runes)-1] != '다' {
		return ""
	}
	return string(runes[:len(runes)-1])
}
