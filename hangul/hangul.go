// Package hangul implements the pure, dependency-light arithmetic that
// every other KULIM package builds on: decomposing a precomposed Hangul
// syllable into its (initial, medial, final) index triple and composing
// the triple back into a syllable.
//
// The index arithmetic follows the Unicode Hangul Syllables block
// directly (U+AC00..U+D7A3 = (initial*21 + medial)*28 + final + 0xAC00).
// Isolated Jamo — a bare consonant or vowel typed on its own rather than
// as part of a composed syllable — is delegated to go_hangul, which
// already carries the compatibility-jamo tables needed to tell a lead
// Jaeum from a tail Jaeum.
package hangul

import (
	"github.com/jake1104/KULIM/kerrors"
	gohangul "github.com/suapapa/go_hangul"
)

// Counts of onset, vowel, and coda slots in the Unicode Hangul block.
const (
	NumInitials = 19
	NumMedials  = 21
	NumFinals   = 28 // index 0 is the empty coda
)

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3
)

// Initials lists the 19 onset consonants in code-point order.
var Initials = [NumInitials]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// Medials lists the 21 nucleus vowels in code-point order.
var Medials = [NumMedials]rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
	'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ',
	'ㅣ',
}

// Finals lists the 28 coda values in code-point order; index 0 is the
// empty coda (no final consonant).
var Finals = [NumFinals]rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
	'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var (
	initialIndex = invert(Initials[:])
	medialIndex  = invert(Medials[:])
	finalIndex   = invert(Finals[:])
)

func invert(rs []rune) map[rune]int {
	m := make(map[rune]int, len(rs))
	for i, r := range rs {
		m[r] = i
	}
	return m
}

// Triple is a decomposed Hangul syllable: initial, medial, and final
// slot indices. Final == 0 means no coda. A Triple with Medial == -1
// represents an isolated consonant Jamo (no vowel slot filled); a
// Triple with Initial == -1 represents an isolated vowel Jamo.
type Triple struct {
	Initial int
	Medial  int
	Final   int
}

// Empty is the null triple returned for code points that decompose to
// nothing (non-Hangul input).
var Empty = Triple{Initial: -1, Medial: -1, Final: -1}

// IsHangul reports whether code lies in the precomposed syllable block
// or one of the Jamo blocks (modern, Extended-A, Extended-B, or
// Compatibility Jamo).
func IsHangul(code rune) bool {
	switch {
	case code >= syllableBase && code <= syllableLast:
		return true
	case code >= 0x1100 && code <= 0x11FF: // Hangul Jamo
		return true
	case code >= 0xA960 && code <= 0xA97F: // Jamo Extended-A
		return true
	case code >= 0xD7B0 && code <= 0xD7FF: // Jamo Extended-B
		return true
	case code >= 0x3130 && code <= 0x318F: // Compatibility Jamo
		return true
	default:
		return false
	}
}

// IsSyllable reports whether code is a precomposed modern syllable.
func IsSyllable(code rune) bool {
	return code >= syllableBase && code <= syllableLast
}

// Decompose splits a code point into its (initial, medial, final)
// index triple. For a precomposed syllable the arithmetic is exact.
// For an isolated Jamo the value occupies whichever slot it
// grammatically belongs to (consonant -> Initial, vowel -> Medial) and
// the sibling slots are left at -1. Non-Hangul code points return Empty.
func Decompose(code rune) Triple {
	if IsSyllable(code) {
		offset := int(code) - syllableBase
		final := offset % NumFinals
		offset /= NumFinals
		medial := offset % NumMedials
		initial := offset / NumMedials
		return Triple{Initial: initial, Medial: medial, Final: final}
	}
	if !IsHangul(code) {
		return Empty
	}
	if gohangul.IsMoeum(code) {
		if idx, ok := medialIndex[code]; ok {
			return Triple{Initial: -1, Medial: idx, Final: -1}
		}
		return Empty
	}
	if gohangul.IsJaeum(code) {
		if idx, ok := initialIndex[code]; ok {
			return Triple{Initial: idx, Medial: -1, Final: -1}
		}
		// A Jaeum that is only a legal coda (e.g. a complex cluster such
		// as ㄳ) has no Initials-table entry; surface it via Finals so
		// callers can still see which consonant was typed.
		if idx, ok := finalIndex[code]; ok {
			return Triple{Initial: -1, Medial: -1, Final: idx}
		}
		return Empty
	}
	return Empty
}

// Compose is the inverse of Decompose for modern syllables: given valid
// initial/medial indices (and an optional final, 0 meaning none) it
// returns the composed syllable. It returns an InvariantViolation if
// either index is out of the modern Jamo inventory, per spec ("compose
// ... returns none for inputs outside the modern Jamo inventories").
func Compose(initial, medial, final int) (rune, error) {
	if initial < 0 || initial >= NumInitials {
		return 0, kerrors.NewInvariantViolation("hangul.Compose", "initial index out of range")
	}
	if medial < 0 || medial >= NumMedials {
		return 0, kerrors.NewInvariantViolation("hangul.Compose", "medial index out of range")
	}
	if final < 0 || final >= NumFinals {
		return 0, kerrors.NewInvariantViolation("hangul.Compose", "final index out of range")
	}
	code := (initial*NumMedials+medial)*NumFinals + final + syllableBase
	return rune(code), nil
}

// MustCompose is Compose without the error return, for call sites (most
// of the phonology pipeline) that have already validated indices coming
// out of Decompose and cannot hit the error path.
func MustCompose(initial, medial, final int) rune {
	r, err := Compose(initial, medial, final)
	if err != nil {
		panic(err)
	}
	return r
}

// HasFinal reports whether code is a syllable with a non-empty final.
func HasFinal(code rune) bool {
	if !IsSyllable(code) {
		return false
	}
	return Decompose(code).Final != 0
}

// InitialRune returns the Jamo rune for an initial index, or 0 if out
// of range.
func InitialRune(i int) rune {
	if i < 0 || i >= NumInitials {
		return 0
	}
	return Initials[i]
}

// MedialRune returns the Jamo rune for a medial index, or 0 if out of
// range.
func MedialRune(i int) rune {
	if i < 0 || i >= NumMedials {
		return 0
	}
	return Medials[i]
}

// FinalRune returns the Jamo rune for a final index (0 => no coda), or
// 0 if out of range.
func FinalRune(i int) rune {
	if i < 0 || i >= NumFinals {
		return 0
	}
	return Finals[i]
}

// InitialIndexOf returns the initial-table index of r, or -1 if r is
// not one of the 19 onsets.
func InitialIndexOf(r rune) int {
	if idx, ok := initialIndex[r]; ok {
		return idx
	}
	return -1
}

// MedialIndexOf returns the medial-table index of r, or -1 if r is not
// one of the 21 vowels.
func MedialIndexOf(r rune) int {
	if idx, ok := medialIndex[r]; ok {
		return idx
	}
	return -1
}

// FinalIndexOf returns the final-table index of r (0 is the empty
// coda), or -1 if r is not one of the 28 coda values.
func FinalIndexOf(r rune) int {
	if idx, ok := finalIndex[r]; ok {
		return idx
	}
	return -1
}

// Join composes a syllable from Jamo runes via go_hangul, an
// independent implementation of the index arithmetic in Compose.
// Nothing in this module calls it; phonology recomposes through
// MustCompose.
func Join(initial, medial, final rune) rune {
	return gohangul.Join(initial, medial, final)
}
