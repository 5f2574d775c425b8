// Package phonology implements the phoneme model and the six-stage
// pronunciation rule pipeline of spec §4.9.
package phonology

import "github.com/jake1104/KULIM/hangul"

// Phoneme is one code point's phonological state. For Hangul syllables
// Initial/Medial/Final are table indices (Final == 0 means no coda);
// for non-Hangul code points all three are -1 and IsHangul is false.
// OriginalFinal is fixed at construction and never mutated by a rule —
// the tensification rule needs to see the pre-simplification cluster
// even after neutralization has overwritten Final.
type Phoneme struct {
	Code          rune
	IsHangul      bool
	Initial       int
	Medial        int
	Final         int
	OriginalFinal int
}

// InitialRune, MedialRune and FinalRune expose the phoneme's current
// slots as runes (0 for "no value").
func (p *Phoneme) InitialRune() rune {
	if p.Initial < 0 {
		return 0
	}
	return hangul.InitialRune(p.Initial)
}

func (p *Phoneme) MedialRune() rune {
	if p.Medial < 0 {
		return 0
	}
	return hangul.MedialRune(p.Medial)
}

func (p *Phoneme) FinalRune() rune {
	return hangul.FinalRune(p.Final)
}

func (p *Phoneme) OriginalFinalRune() rune {
	return hangul.FinalRune(p.OriginalFinal)
}

// SetInitial and SetFinal write back a rule's rewritten onset/coda by
// rune, 0 meaning "clear this slot".
func (p *Phoneme) SetInitial(r rune) {
	if r == 0 {
		p.Initial = -1
		return
	}
	p.Initial = hangul.InitialIndexOf(r)
}

func (p *Phoneme) SetFinal(r rune) {
	if r == 0 {
		p.Final = 0
		return
	}
	p.Final = hangul.FinalIndexOf(r)
}

// ToPhonemes decomposes text into one Phoneme per code point.
func ToPhonemes(text string) []Phoneme {
	runes := []rune(text)
	out := make([]Phoneme, len(runes))
	for i, r := range runes {
		if hangul.IsSyllable(r) {
			t := hangul.Decompose(r)
			out[i] = Phoneme{
				Code: r, IsHangul: true,
				Initial: t.Initial, Medial: t.Medial, Final: t.Final,
				OriginalFinal: t.Final,
			}
			continue
		}
		out[i] = Phoneme{Code: r, IsHangul: false, Initial: -1, Medial: -1, Final: -1, OriginalFinal: -1}
	}
	return out
}

// Recompose rebuilds text from a phoneme sequence, recomposing every
// Hangul phoneme via hangul.Compose and passing non-Hangul phonemes
// through unchanged.
func Recompose(phs []Phoneme) string {
	runes := make([]rune, len(phs))
	for i, p := range phs {
		if !p.IsHangul {
			runes[i] = p.Code
			continue
		}
		initial, medial := p.Initial, p.Medial
		if initial < 0 {
			initial = hangul.InitialIndexOf('ㅇ')
		}
		if medial < 0 {
			runes[i] = p.Code
			continue
		}
		final := p.Final
		if final < 0 {
			final = 0
		}
		runes[i] = hangul.MustCompose(initial, medial, final)
	}
	return string(runes)
}
