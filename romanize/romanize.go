// Package romanize converts Hangul text to Latin script using two
// static tables, per spec §4.10: a phonetic table (pronunciation
// first) and a literal table (direct transliteration of the written
// form).
package romanize

import (
	"strings"

	"github.com/jake1104/KULIM/hangul"
	"github.com/jake1104/KULIM/phonology"
)

// Phonetic romanizes the pronunciation of text: the phonological rule
// pipeline runs first, then each phoneme maps to Latin.
func Phonetic(text string) string {
	return romanizeWith(phonology.Pronounce(text), phoneticInitials[:], phoneticMedials[:], phoneticFinals[:])
}

// Literal romanizes text directly, without running the pronunciation
// pipeline: it spells out the written form, including raw coda
// clusters.
func Literal(text string) string {
	return romanizeWith(text, literalInitials[:], literalMedials[:], literalFinals[:])
}

func romanizeWith(text string, initials, medials, finals []string) string {
	var b strings.Builder
	for _, r := range text {
		if !hangul.IsSyllable(r) {
			b.WriteRune(r)
			continue
		}
		t := hangul.Decompose(r)
		b.WriteString(initials[t.Initial])
		b.WriteString(medials[t.Medial])
		b.WriteString(finals[t.Final])
	}
	return b.String()
}
