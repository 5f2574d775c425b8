// Package preprocess implements sentence splitting and coarse
// tokenization ahead of lattice decoding (spec §4.8).
package preprocess

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jake1104/KULIM/hangul"
)

// sentenceSplit matches a run of terminal punctuation followed by
// whitespace (or end of string); Split keeps the punctuation attached
// to the sentence it terminates.
var sentenceSplit = regexp.MustCompile(`([.!?。！？]+)(\s+|$)`)

// Split breaks text into sentences, each still carrying its own
// terminal punctuation. Internal whitespace is preserved; callers
// decide how to handle it (the analyzer passes each sentence through
// Tokenize and gives the lattice decoder one whitespace-free token at
// a time).
func Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	text = norm.NFC.String(text)
	var out []string
	last := 0
	for _, loc := range sentenceSplit.FindAllStringSubmatchIndex(text, -1) {
		end := loc[3] // end of the punctuation group
		sent := strings.TrimSpace(text[last:end])
		if sent != "" {
			out = append(out, sent)
		}
		last = loc[1]
	}
	if rest := strings.TrimSpace(text[last:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

// compoundSuffixes is the closed set of Hangul suffix patterns the
// tokenizer preserves as part of a single token rather than splitting
// at a plain character-class boundary.
var compoundSuffixes = []string{
	"대학교", "고등학교", "중학교", "초등학교", "유치원",
	"시립", "국립", "도립", "하다", "되다", "시키다", "거리",
}

// charClass names the run classes the tokenizer distinguishes.
type charClass int

const (
	classHangul charClass = iota
	classLatin
	classDigit
	classHanja
	classPunct
	classOther
)

func classify(r rune) charClass {
	switch {
	case hangul.IsHangul(r):
		return classHangul
	case unicode.In(r, unicode.Latin):
		return classLatin
	case unicode.IsDigit(r):
		return classDigit
	case unicode.Is(unicode.Han, r):
		return classHanja
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return classPunct
	default:
		return classOther
	}
}

// Tokenize classifies text into runs of uniform character class,
// treating punctuation as individual single-rune tokens, and merges a
// trailing compound suffix into the Hangul run that precedes it.
func Tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		class := classify(runes[i])
		if class == classPunct {
			tokens = append(tokens, string(runes[i]))
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && classify(runes[j]) == class && !unicode.IsSpace(runes[j]) {
			j++
		}
		tokens = append(tokens, string(runes[i:j]))
		i = j
	}
	return mergeCompounds(tokens)
}

func mergeCompounds(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(out) > 0 {
			merged := out[len(out)-1] + tok
			if hasCompoundSuffix(merged) && allHangul(merged) {
				out[len(out)-1] = merged
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func hasCompoundSuffix(s string) bool {
	for _, suf := range compoundSuffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func allHangul(s string) bool {
	for _, r := range s {
		if !hangul.IsHangul(r) {
			return false
		}
	}
	return true
}
