package conjugate

import "github.com/jake1104/KULIM/hangul"

// vowelSeries is which ending family (아-series vs 어-series) a stem's
// last vowel selects, per the spec's vowel harmony policy.
type vowelSeries int

const (
	seriesA vowelSeries = iota // ㅏ, ㅗ, ㅘ
	seriesEo
	seriesNone
)

func seriesFor(medial int) vowelSeries {
	switch hangul.MedialRune(medial) {
	case 'ㅏ', 'ㅗ', 'ㅘ':
		return seriesA
	case 'ㅓ', 'ㅜ', 'ㅝ', 'ㅣ', 'ㅔ', 'ㅐ':
		return seriesEo
	default:
		return seriesNone
	}
}

// Restore attempts to split surface's final syllable into a stem
// suffix and a regular ending — the past-tense marker ㅆ, or a vowel
// contraction — returning every split that could plausibly apply. The
// caller (the lattice decoder) is responsible for verifying the
// resulting stem is an actual dictionary predicate.
func Restore(surface string) []Candidate {
	var out []Candidate
	if c, ok := restorePast(surface); ok {
		out = append(out, c)
	}
	if c, ok := restoreContraction(surface); ok {
		out = append(out, c)
	}
	return out
}

// restorePast reverses a ㅆ-final syllable into stem + 았/었, the
// past-tense marker, choosing the series by the stem vowel that
// remains once ㅆ is stripped from the coda.
func restorePast(surface string) (Candidate, bool) {
	prefix, last, ok := lastSyllable(surface)
	if !ok {
		return Candidate{}, false
	}
	t := hangul.Decompose(last)
	if t.Final != hangul.FinalIndexOf('ㅆ') {
		return Candidate{}, false
	}
	stem := rebuildLast(prefix, hangul.Triple{Initial: t.Initial, Medial: t.Medial, Final: 0})
	switch seriesFor(t.Medial) {
	case seriesA:
		return Candidate{Stem: stem, Ending: "았"}, true
	case seriesEo:
		return Candidate{Stem: stem, Ending: "었"}, true
	default:
		return Candidate{}, false
	}
}

// restoreContraction reverses the common vowel contractions 와/워 (stem
// ending in ㅗ/ㅜ fused with 아/어), emitting an 아- or 어-series ending
// per vowel harmony. ㅡ-elision (써 -> 쓰 + 어) is handled separately by
// RestoreEu against its closed root list, not here: an open-ended
// ㅡ-drop rule would over-trigger on any stem whose last vowel happens
// to be ㅡ once a 아/어 ending is stripped, including eojeols that just
// end in a plain ㅏ/ㅓ syllable with no preceding ㅡ stem to restore.
func restoreContraction(surface string) (Candidate, bool) {
	prefix, last, ok := lastSyllable(surface)
	if !ok {
		return Candidate{}, false
	}
	t := hangul.Decompose(last)
	if t.Final != 0 {
		return Candidate{}, false
	}
	switch hangul.MedialRune(t.Medial) {
	case 'ㅘ':
		stem := rebuildLast(prefix, hangul.Triple{Initial: t.Initial, Medial: hangul.MedialIndexOf('ㅗ'), Final: 0})
		return Candidate{Stem: stem, Ending: "아"}, true
	case 'ㅝ':
		stem := rebuildLast(prefix, hangul.Triple{Initial: t.Initial, Medial: hangul.MedialIndexOf('ㅜ'), Final: 0})
		return Candidate{Stem: stem, Ending: "어"}, true
	default:
		return Candidate{}, false
	}
}
