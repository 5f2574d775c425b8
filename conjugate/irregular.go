// Package conjugate implements the two conjugation-restoration modules
// described in spec §4.3-4.4: given a surface fragment that is not
// itself a dictionary key, propose a (stem, ending) split that would
// make the stem a dictionary key, reversing one of Korean's classical
// irregular or regular surface alternations.
package conjugate

import "github.com/jake1104/KULIM/hangul"

// Kind names which of the six irregular patterns produced a candidate.
type Kind int

const (
	KindBieup Kind = iota // ㅂ-irregular
	KindDigeut
	KindSiot
	KindHieut
	KindLeu // 르-irregular
	KindEu  // 으-irregular
)

// Candidate is a reconstructed (stem, ending) split for a surface that
// is not itself a dictionary entry.
type Candidate struct {
	Stem   string
	Ending string
	Kind   Kind
}

// roots is a closed, per-pattern list of irregular predicate stems.
// Restoration only accepts a reconstructed stem found in the matching
// list; this keeps the module from over-generating candidates for
// every surface that happens to end in a plausible-looking syllable.
// Entries are bare stems (no citation-form 다), since that is what
// rebuildLast reconstructs: a stem ending is never part of the
// surface being restored.
var roots = map[Kind][]string{
	KindBieup: {
		"돕", "곱", "줍", "눕", "덥", "춥", "맵", "쉽",
		"가볍", "어렵", "아름답", "귀엽", "두껍", "반갑", "무겁",
	},
	KindDigeut: {
		"걷", "듣", "묻", "싣", "깨닫", "일컫",
	},
	KindSiot: {
		"짓", "붓", "잇", "긋", "낫", "젓",
	},
	KindHieut: {
		"그렇", "빨갛", "노랗", "파랗", "하얗", "까맣", "이렇", "저렇", "어떻",
	},
	KindLeu: {
		"흐르", "모르", "빠르", "부르", "오르", "고르", "다르", "바르", "기르",
	},
	KindEu: {
		"쓰", "끄", "크", "들르", "담그", "잠그", "치르", "따르",
	},
}

func isRoot(kind Kind, stem string) bool {
	for _, r := range roots[kind] {
		if r == stem {
			return true
		}
	}
	return false
}

// lastSyllable splits s into (prefix, last rune) for a non-empty s
// whose last code point is a precomposed Hangul syllable. Returns ok
// false otherwise.
func lastSyllable(s string) (prefix string, last rune, ok bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return "", 0, false
	}
	last = rs[len(rs)-1]
	if !hangul.IsSyllable(last) {
		return "", 0, false
	}
	return string(rs[:len(rs)-1]), last, true
}

func rebuildLast(prefix string, t hangul.Triple) string {
	return prefix + string(hangul.MustCompose(t.Initial, t.Medial, t.Final))
}

// RestoreBieup reverses surface endings 와/워/우/운 produced when a
// ㅂ-irregular stem's final ㅂ elides before a vowel-initial ending: it
// restores ㅂ on the last stem syllable and recovers the corresponding
// 아/어/어/은 ending.
func RestoreBieup(surface string) (Candidate, bool) {
	for _, suf := range []struct {
		trigger, ending string
	}{
		{"와", "아"}, {"워", "어"}, {"우", "어"}, {"운", "은"},
	} {
		if !hasSuffix(surface, suf.trigger) {
			continue
		}
		stemPart := trimSuffix(surface, suf.trigger)
		prefix, last, ok := lastSyllable(stemPart)
		if !ok {
			continue
		}
		t := hangul.Decompose(last)
		if t.Final != 0 {
			continue
		}
		t.Final = hangul.FinalIndexOf('ㅂ')
		stem := rebuildLast(prefix, t)
		if isRoot(KindBieup, stem) {
			return Candidate{Stem: stem, Ending: suf.ending, Kind: KindBieup}, true
		}
	}
	return Candidate{}, false
}

// RestoreDigeut reverses a ㄷ-irregular stem whose final ㄷ surfaced as
// ㄹ before a vowel-initial ending.
func RestoreDigeut(surface string) (Candidate, bool) {
	return restoreFinalSwap(surface, 'ㄹ', 'ㄷ', KindDigeut)
}

// RestoreSiot reverses a ㅅ-irregular stem whose final ㅅ dropped
// before a vowel-initial ending.
func RestoreSiot(surface string) (Candidate, bool) {
	for _, ending := range []string{"어", "았", "었", "은", "을", "으니"} {
		if !hasSuffix(surface, ending) {
			continue
		}
		stemPart := trimSuffix(surface, ending)
		prefix, last, ok := lastSyllable(stemPart)
		if !ok {
			continue
		}
		t := hangul.Decompose(last)
		if t.Final != 0 {
			continue
		}
		t.Final = hangul.FinalIndexOf('ㅅ')
		stem := rebuildLast(prefix, t)
		if isRoot(KindSiot, stem) {
			return Candidate{Stem: stem, Ending: ending, Kind: KindSiot}, true
		}
	}
	return Candidate{}, false
}

// restoreFinalSwap restores a stem's `from` coda back to `to`, trying
// a fixed set of vowel-initial endings.
func restoreFinalSwap(surface string, from, to rune, kind Kind) (Candidate, bool) {
	for _, ending := range []string{"어", "았", "었", "으니", "은", "을"} {
		if !hasSuffix(surface, ending) {
			continue
		}
		stemPart := trimSuffix(surface, ending)
		prefix, last, ok := lastSyllable(stemPart)
		if !ok {
			continue
		}
		t := hangul.Decompose(last)
		if t.Final != hangul.FinalIndexOf(from) {
			continue
		}
		t.Final = hangul.FinalIndexOf(to)
		stem := rebuildLast(prefix, t)
		if isRoot(kind, stem) {
			return Candidate{Stem: stem, Ending: ending, Kind: kind}, true
		}
	}
	return Candidate{}, false
}

// RestoreHieut reverses ㅎ-irregular vowel fusion (ㅏ+ㅎ -> ㅐ) seen in
// spellings like 그래/그래서 for stem 그렇다.
func RestoreHieut(surface string) (Candidate, bool) {
	prefix, last, ok := lastSyllable(surface)
	if !ok {
		return Candidate{}, false
	}
	t := hangul.Decompose(last)
	var endingMedial int
	switch t.Medial {
	case hangul.MedialIndexOf('ㅐ'):
		endingMedial = hangul.MedialIndexOf('ㅏ')
	case hangul.MedialIndexOf('ㅔ'):
		endingMedial = hangul.MedialIndexOf('ㅓ')
	default:
		return Candidate{}, false
	}
	stemTriple := hangul.Triple{Initial: t.Initial, Medial: hangul.MedialIndexOf('ㅓ'), Final: hangul.FinalIndexOf('ㅎ')}
	stem := rebuildLast(prefix, stemTriple)
	if isRoot(KindHieut, stem) {
		ending := string(hangul.MustCompose(hangul.InitialIndexOf('ㅇ'), endingMedial, 0))
		return Candidate{Stem: stem, Ending: ending, Kind: KindHieut}, true
	}
	return Candidate{}, false
}

// RestoreLeu reverses a 르-irregular stem surfaced as an ㄹ coda
// followed by 러/라 (e.g. 불러 -> 부르 + 어).
func RestoreLeu(surface string) (Candidate, bool) {
	for _, suf := range []struct {
		trigger, ending string
	}{{"러", "어"}, {"라", "아"}} {
		if !hasSuffix(surface, suf.trigger) {
			continue
		}
		stemPart := trimSuffix(surface, suf.trigger)
		prefix, last, ok := lastSyllable(stemPart)
		if !ok {
			continue
		}
		t := hangul.Decompose(last)
		if t.Final != hangul.FinalIndexOf('ㄹ') {
			continue
		}
		reu := hangul.Triple{Initial: t.Initial, Medial: t.Medial, Final: 0}
		eu := hangul.Triple{Initial: hangul.InitialIndexOf('ㄹ'), Medial: hangul.MedialIndexOf('ㅡ'), Final: 0}
		stem := prefix + string(hangul.MustCompose(reu.Initial, reu.Medial, reu.Final)) + string(hangul.MustCompose(eu.Initial, eu.Medial, eu.Final))
		if isRoot(KindLeu, stem) {
			return Candidate{Stem: stem, Ending: suf.ending, Kind: KindLeu}, true
		}
	}
	return Candidate{}, false
}

// RestoreEu reverses ㅡ-elision before 아/어 (e.g. 써 -> 쓰 + 어).
func RestoreEu(surface string) (Candidate, bool) {
	prefix, last, ok := lastSyllable(surface)
	if !ok {
		return Candidate{}, false
	}
	t := hangul.Decompose(last)
	var endingMedial int
	switch t.Medial {
	case hangul.MedialIndexOf('ㅓ'):
		endingMedial = hangul.MedialIndexOf('ㅓ')
	case hangul.MedialIndexOf('ㅏ'):
		endingMedial = hangul.MedialIndexOf('ㅏ')
	default:
		return Candidate{}, false
	}
	stemTriple := hangul.Triple{Initial: t.Initial, Medial: hangul.MedialIndexOf('ㅡ'), Final: t.Final}
	stem := rebuildLast(prefix, stemTriple)
	if isRoot(KindEu, stem) {
		ending := string(hangul.MustCompose(hangul.InitialIndexOf('ㅇ'), endingMedial, 0))
		return Candidate{Stem: stem, Ending: ending, Kind: KindEu}, true
	}
	return Candidate{}, false
}

// RestoreAny tries every pattern in spec order and returns every
// candidate produced, not just the first.
func RestoreAny(surface string) []Candidate {
	var out []Candidate
	type restorer func(string) (Candidate, bool)
	for _, fn := range []restorer{
		RestoreBieup, RestoreDigeut, RestoreSiot, RestoreHieut, RestoreLeu, RestoreEu,
	} {
		if c, ok := fn(surface); ok {
			out = append(out, c)
		}
	}
	return out
}

func hasSuffix(s, suf string) bool {
	rs, rsuf := []rune(s), []rune(suf)
	if len(rsuf) > len(rs) {
		return false
	}
	return string(rs[len(rs)-len(rsuf):]) == suf
}

func trimSuffix(s, suf string) string {
	rs, rsuf := []rune(s), []rune(suf)
	return string(rs[:len(rs)-len(rsuf)])
}
