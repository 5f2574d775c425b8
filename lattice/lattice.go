// Package lattice implements the min-cost dynamic-programming decoder
// described in spec §4.7: given a punctuation-delimited span, find the
// lowest-cost sequence of dictionary, conjugation, and OOV-fallback
// morphemes covering it.
package lattice

import (
	"strings"
	"unicode"

	"github.com/jake1104/KULIM/conjugate"
	"github.com/jake1104/KULIM/constraint"
	"github.com/jake1104/KULIM/dict"
	"github.com/jake1104/KULIM/hangul"
	"github.com/jake1104/KULIM/morpheme"
	"github.com/jake1104/KULIM/postag"
	"github.com/jake1104/KULIM/score"
)

const (
	dictWindow   = 16
	conjugWindow = 8
	oovWindow    = 16
)

// admitted is what back[j] records: the morpheme that arrived at j and
// the index it arrived from, so backtracking needs no separate array.
type admitted struct {
	morph morpheme.Morpheme
	fromI int
}

// Decode runs the lattice decoder over a single span (already split on
// terminal punctuation by the preprocessor) and returns its best
// morpheme sequence.
func Decode(span string, trie *dict.Trie, scorer *score.Scorer, validator *constraint.Validator) []morpheme.Morpheme {
	if span == "" {
		return nil
	}
	runes := []rune(span)
	if isAllPunctuation(runes) {
		return []morpheme.Morpheme{{
			Surface: span, POS: punctuationTag(runes[0]), Lemma: span,
			Start: 0, End: len(runes), Confidence: 1,
		}}
	}

	n := len(runes)
	const inf = 1e18
	dp := make([]float64, n+1)
	back := make([]*admitted, n+1)
	trailingPos := make([]postag.Tag, n+1)
	for i := 1; i <= n; i++ {
		dp[i] = inf
	}

	tryAdmit := func(j int, cost float64, m morpheme.Morpheme, trailing postag.Tag) {
		if cost < dp[j] {
			dp[j] = cost
			back[j] = &admitted{morph: m, fromI: m.Start}
			trailingPos[j] = trailing
		}
	}

	for i := 0; i < n; i++ {
		if dp[i] >= inf {
			continue
		}
		considerDictionary(runes, i, n, trie, scorer, validator, dp[i], trailingPos[i], tryAdmit)
		considerConjugation(runes, i, n, trie, scorer, validator, dp[i], trailingPos[i], tryAdmit)
		considerOOV(runes, i, n, scorer, validator, dp[i], trailingPos[i], tryAdmit)
	}

	var path []morpheme.Morpheme
	for j := n; j > 0; {
		a := back[j]
		if a == nil {
			break
		}
		path = append(path, a.morph)
		j = a.fromI
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func considerDictionary(
	runes []rune, i, n int, trie *dict.Trie, scorer *score.Scorer, validator *constraint.Validator,
	costAtI float64, trailing postag.Tag, admit func(int, float64, morpheme.Morpheme, postag.Tag),
) {
	end := min(i+dictWindow, n)
	text := string(runes[i:end])
	for _, m := range trie.SearchAllPatterns(text) {
		if m.Start != 0 {
			continue
		}
		j := i + m.Length
		surface := string(runes[i:j])
		for _, pat := range m.Patterns {
			morph, endPos := buildDictionaryMorpheme(surface, pat, i, j)
			if !validator.Allowed(trailing, endPos) {
				continue
			}
			cost := costAtI + scorer.LengthPrior(m.Length) + scorer.TransitionCost(trailing, endPos) +
				localBonus(pat.POS, m.Length)
			admit(j, cost, morph, endPos)
		}
	}
}

func localBonus(pos postag.Tag, syllables int) float64 {
	last := postag.Last(pos)
	switch {
	case syllables == 1 && (postag.IsPredicate(last) || last == postag.IC):
		return 20
	case syllables >= 2 && last == postag.NNG:
		return -5
	case syllables >= 2 && last == postag.MAG:
		return -10
	default:
		return 0
	}
}

// buildDictionaryMorpheme decomposes a composite dictionary match
// (POS and lemma both containing "+") into sub-morphemes, per spec
// §4.7 step 6. It returns the trailing POS to use for subsequent
// transitions: the last sub-morpheme's POS for a composite match, or
// the match's own POS otherwise.
func buildDictionaryMorpheme(surface string, pat dict.Pattern, i, j int) (morpheme.Morpheme, postag.Tag) {
	if !postag.IsComposite(pat.POS) || !strings.Contains(pat.Lemma, "+") {
		return morpheme.Morpheme{
			Surface: surface, POS: pat.POS, Lemma: pat.Lemma,
			Start: i, End: j, Confidence: 1,
		}, postag.Last(pat.POS)
	}

	posParts := postag.Split(pat.POS)
	lemmaParts := strings.Split(pat.Lemma, "+")
	subs := make([]morpheme.Morpheme, len(posParts))
	if len(posParts) == len(lemmaParts) {
		for k := range posParts {
			subs[k] = morpheme.Morpheme{POS: posParts[k], Lemma: lemmaParts[k], Confidence: 1}
		}
	} else {
		// Component counts disagree: kept as an opaque block, but the
		// sub-morpheme list still names every POS component, each
		// paired with the whole (unsplit) lemma.
		for k := range posParts {
			subs[k] = morpheme.Morpheme{POS: posParts[k], Lemma: pat.Lemma, Confidence: 1}
		}
	}
	trailing := posParts[len(posParts)-1]
	return morpheme.Morpheme{
		Surface: surface, POS: pat.POS, Lemma: pat.Lemma,
		Start: i, End: j, Confidence: 1, Sub: subs,
	}, trailing
}

func considerConjugation(
	runes []rune, i, n int, trie *dict.Trie, scorer *score.Scorer, validator *constraint.Validator,
	costAtI float64, trailing postag.Tag, admit func(int, float64, morpheme.Morpheme, postag.Tag),
) {
	maxJ := min(i+conjugWindow, n)
	for j := i + 1; j <= maxJ; j++ {
		frag := string(runes[i:j])
		candidates := append(conjugate.RestoreAny(frag), conjugate.Restore(frag)...)
		for _, c := range candidates {
			for _, pat := range trie.Search(c.Stem) {
				stemPos := postag.Last(pat.POS)
				if !postag.IsPredicate(stemPos) {
					continue
				}
				endingPos := classifyEnding(c.Ending)
				if !validator.Allowed(trailing, endingPos) {
					continue
				}
				cost := costAtI + scorer.ConjugationBase + scorer.TransitionCost(trailing, stemPos)
				morph := morpheme.Morpheme{
					Surface: frag,
					POS:     postag.Join(pat.POS, endingPos),
					Lemma:   pat.Lemma + "+" + c.Ending,
					Start:   i, End: j, Confidence: 1,
					Sub: []morpheme.Morpheme{
						{Surface: c.Stem, POS: pat.POS, Lemma: pat.Lemma, Confidence: 1},
						{Surface: c.Ending, POS: endingPos, Lemma: c.Ending, Confidence: 1},
					},
				}
				admit(j, cost, morph, endingPos)
			}
		}
	}
}

// classifyEnding heuristically tags a reconstructed ending by its
// literal surface form, per the fixed table in spec §4.7.
func classifyEnding(ending string) postag.Tag {
	switch ending {
	case "은", "는", "을", "ㄹ", "던", "ㄴ":
		return postag.ETM
	case "다", "요", "죠", "습니다", "ㅂ니다", "구나", "군":
		return postag.EF
	case "고", "며", "면서", "아", "어", "게", "지", "니", "니까":
		return postag.EC
	case "았", "었", "겠", "시":
		return postag.EP
	default:
		return postag.EP
	}
}

func considerOOV(
	runes []rune, i, n int, scorer *score.Scorer, validator *constraint.Validator,
	costAtI float64, trailing postag.Tag, admit func(int, float64, morpheme.Morpheme, postag.Tag),
) {
	maxJ := min(i+oovWindow, n)
	pos := classifyOOV(runes[i])
	for j := i + 1; j <= maxJ; j++ {
		if !validator.Allowed(trailing, pos) {
			continue
		}
		surface := string(runes[i:j])
		cost := costAtI + scorer.OOVPenalty
		morph := morpheme.Morpheme{
			Surface: surface, POS: pos, Lemma: surface,
			Start: i, End: j, Confidence: 0.5,
		}
		admit(j, cost, morph, pos)
	}
}

// classifyOOV picks a fallback tag for an unmatched character: a
// Hangul run that never matched a dictionary/conjugation candidate is
// an unknown common noun; everything else is classified by script.
func classifyOOV(r rune) postag.Tag {
	switch {
	case hangul.IsHangul(r):
		return postag.NNG
	case unicode.In(r, unicode.Latin):
		return postag.SL
	case unicode.Is(unicode.Han, r):
		return postag.SH
	case unicode.IsDigit(r):
		return postag.SN
	default:
		return postag.SW
	}
}

// punctuationTag picks a POS for a span that is entirely punctuation,
// by the character's punctuation sub-class.
func punctuationTag(r rune) postag.Tag {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return postag.SF
	case ',', '、', '·':
		return postag.SP
	case '(', ')', '[', ']', '{', '}', '"', '\'', '「', '」', '『', '』':
		return postag.SS
	case '…', '‥':
		return postag.SE
	case '-', '~', '∼':
		return postag.SO
	default:
		return postag.SW
	}
}

func isAllPunctuation(runes []rune) bool {
	for _, r := range runes {
		if hangul.IsHangul(r) || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
