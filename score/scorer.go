package score

import "github.com/jake1104/KULIM/postag"

// Default cost constants, per spec §4.5. Lower is better; dictionary
// matches should dominate OOV fallbacks, and longer matches should beat
// shorter ones.
const (
	lengthPrior1 = -5.0
	lengthPrior2 = -30.0
	lengthPrior3 = -40.0

	heuristicBonus   = -15.0
	heuristicPenalty = 10.0

	DefaultOOVPenalty        = 50.0
	DefaultConjugationBase   = -25.0
)

// Scorer computes lattice edge costs. The zero value is usable but has
// no learned transition model and OOV/conjugation costs of 0; New sets
// DefaultOOVPenalty and DefaultConjugationBase.
type Scorer struct {
	Transitions      *TransitionModel
	OOVPenalty       float64
	ConjugationBase  float64
}

// New returns a Scorer with the spec's default constants and no
// learned transition model (the heuristic backoff is used for every
// transition until one is loaded with SetTransitions).
func New() *Scorer {
	return &Scorer{
		OOVPenalty:      DefaultOOVPenalty,
		ConjugationBase: DefaultConjugationBase,
	}
}

// SetTransitions installs a learned transition model, e.g. one decoded
// from a dictionary archive's transition-model file.
func (s *Scorer) SetTransitions(m *TransitionModel) {
	s.Transitions = m
}

// LengthPrior returns the cost contribution for a morpheme of the
// given syllable count.
func (s *Scorer) LengthPrior(syllables int) float64 {
	switch {
	case syllables <= 1:
		return lengthPrior1
	case syllables == 2:
		return lengthPrior2
	default:
		return lengthPrior3
	}
}

// TransitionCost returns the cost of transitioning from prev to curr.
// It consults the learned model first; absent an entry, it falls back
// to a fixed set of canonical-adjacency bonuses.
func (s *Scorer) TransitionCost(prev, curr postag.Tag) float64 {
	if cost, ok := s.Transitions.Lookup(prev, curr); ok {
		return cost
	}
	if canonicalAdjacency(prev, curr) {
		return heuristicBonus
	}
	return heuristicPenalty
}

func canonicalAdjacency(prev, curr postag.Tag) bool {
	p, c := postag.Last(prev), postag.Last(curr)
	switch {
	case postag.IsNominal(p) && postag.IsParticle(c):
		return true
	case postag.IsPredicate(p) && postag.IsEnding(c):
		return true
	case postag.IsEnding(p) && postag.IsEnding(c):
		return true
	case p == postag.MAG && postag.IsNominal(c):
		return true
	case p == postag.MAG && postag.IsPredicate(c):
		return true
	case p == postag.MM && postag.IsNominal(c):
		return true
	default:
		return false
	}
}
