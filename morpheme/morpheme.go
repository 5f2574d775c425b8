// Package morpheme defines the shared output type produced by the
// lattice decoder and consumed by the analyzer facade.
package morpheme

import "github.com/jake1104/KULIM/postag"

// Morpheme is one segment of an analyzed sentence (spec §3). Start and
// End are rune offsets into the span that produced it. Confidence is
// 1.0 for dictionary and conjugation matches and 0.5 for OOV fallback
// segments, per the spec's degraded-analysis contract.
type Morpheme struct {
	Surface    string
	POS        postag.Tag
	Lemma      string
	Score      float64
	Start, End int
	Confidence float64
	Sub        []Morpheme
}

// IsComposite reports whether m decomposes into sub-morphemes.
func (m Morpheme) IsComposite() bool { return len(m.Sub) > 0 }

// Flatten expands composite morphemes into their sub-morphemes in
// order, leaving atomic morphemes untouched. Analyzer.Analyze does not
// call it: its output keeps composites with Sub populated, and callers
// that want sub-morphemes inline apply Flatten themselves.
func Flatten(ms []Morpheme) []Morpheme {
	out := make([]Morpheme, 0, len(ms))
	for _, m := range ms {
		if m.IsComposite() {
			out = append(out, m.Sub...)
			continue
		}
		out = append(out, m)
	}
	return out
}
