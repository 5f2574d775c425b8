// Package analyzer wires the dictionary, scorer, validator, lattice
// decoder, and phonological pipeline into the four operations external
// callers use (spec §6).
package analyzer

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/jake1104/KULIM/constraint"
	"github.com/jake1104/KULIM/dict"
	"github.com/jake1104/KULIM/lattice"
	"github.com/jake1104/KULIM/morpheme"
	"github.com/jake1104/KULIM/phonology"
	"github.com/jake1104/KULIM/postag"
	"github.com/jake1104/KULIM/preprocess"
	"github.com/jake1104/KULIM/romanize"
	"github.com/jake1104/KULIM/score"
)

// Analyzer bundles everything a call to Analyze, TrainEojeol, Pronounce
// or Romanize needs. The trie is shared read-only across concurrent
// Analyze calls (spec §5); Insert/TrainEojeol are control-plane
// operations the caller must not race against them.
type Analyzer struct {
	trie      *dict.Trie
	scorer    *score.Scorer
	validator *constraint.Validator
	log       zerolog.Logger
}

// New builds an Analyzer over trie, using default scoring and
// validation. trie does not need to have had Build called yet; Analyze
// calls SearchAllPatterns, which degrades gracefully on an un-built
// trie (see dict.Trie.SearchAllPatterns).
func New(trie *dict.Trie, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		trie:      trie,
		scorer:    score.New(),
		validator: constraint.New(),
		log:       log.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze splits text into sentences, tokenizes each sentence, decodes
// each token with the lattice decoder, and returns the concatenated
// morpheme sequence. Composite
// matches keep their Sub field populated rather than being flattened
// into the top-level list, so the returned surfaces still concatenate
// to the whitespace-stripped input (see DESIGN.md for the rationale).
func (a *Analyzer) Analyze(text string) []morpheme.Morpheme {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []morpheme.Morpheme
	for _, sentence := range preprocess.Split(text) {
		for _, tok := range preprocess.Tokenize(sentence) {
			ms := lattice.Decode(tok, a.trie, a.scorer, a.validator)
			out = append(out, ms...)
		}
	}
	a.log.Debug().Int("morphemes", len(out)).Int("input_runes", len([]rune(text))).Msg("analyze complete")
	return out
}

// TrainEojeol inserts each morpheme's (surface, POS, lemma) into the
// trie. If the concatenation of the morphemes' surfaces does not equal
// surface (the eojeol underwent contraction or an irregular
// alternation), the composite (surface, joined-POS, joined-lemma) is
// also inserted as a single trie entry, so future analyze calls can
// match the contracted form directly.
func (a *Analyzer) TrainEojeol(surface string, morphemes []morpheme.Morpheme) error {
	var concatSurface strings.Builder
	lemmas := make([]string, 0, len(morphemes))
	tags := make([]postag.Tag, 0, len(morphemes))
	for _, m := range morphemes {
		if err := a.trie.Insert(m.Surface, m.POS, m.Lemma); err != nil {
			return err
		}
		concatSurface.WriteString(m.Surface)
		lemmas = append(lemmas, m.Lemma)
		tags = append(tags, m.POS)
	}
	if concatSurface.String() != surface {
		composite := postag.Join(tags...)
		if err := a.trie.Insert(surface, composite, strings.Join(lemmas, "+")); err != nil {
			return err
		}
	}
	return nil
}

// Pronounce returns the pronunciation of text per the phonological
// rule pipeline.
func (a *Analyzer) Pronounce(text string) string {
	return phonology.Pronounce(text)
}

// Romanize returns the phonetic romanization of text (pronunciation,
// then the phonetic table).
func (a *Analyzer) Romanize(text string) string {
	return romanize.Phonetic(text)
}

// RomanizeStandard returns the literal romanization of text (direct
// table, no pronunciation step).
func (a *Analyzer) RomanizeStandard(text string) string {
	return romanize.Literal(text)
}

