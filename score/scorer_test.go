package score

import (
	"testing"

	"github.com/jake1104/KULIM/postag"
)

func TestLengthPrior(t *testing.T) {
	s := New()
	cases := []struct {
		syllables int
		want      float64
	}{
		{0, lengthPrior1},
		{1, lengthPrior1},
		{2, lengthPrior2},
		{3, lengthPrior3},
		{10, lengthPrior3},
	}
	for _, c := range cases {
		if got := s.LengthPrior(c.syllables); got != c.want {
			t.Errorf("LengthPrior(%d) = %v, want %v", c.syllables, got, c.want)
		}
	}
}

func TestTransitionCostFallsBackToHeuristic(t *testing.T) {
	s := New()
	if got := s.TransitionCost(postag.NNG, postag.JKS); got != heuristicBonus {
		t.Errorf("TransitionCost(NNG, JKS) = %v, want heuristicBonus", got)
	}
	if got := s.TransitionCost(postag.NNG, postag.VV); got != heuristicPenalty {
		t.Errorf("TransitionCost(NNG, VV) = %v, want heuristicPenalty", got)
	}
}

func TestTransitionCostPrefersLearnedModel(t *testing.T) {
	s := New()
	s.SetTransitions(NewTransitionModel(map[[2]postag.Tag]float64{
		{postag.NNG, postag.VV}: -99,
	}))
	if got := s.TransitionCost(postag.NNG, postag.VV); got != -99 {
		t.Errorf("TransitionCost should prefer learned model, got %v", got)
	}
	// Untouched pairs still fall back.
	if got := s.TransitionCost(postag.NNG, postag.JKS); got != heuristicBonus {
		t.Errorf("untouched pair should still use heuristic, got %v", got)
	}
}

func TestCanonicalAdjacency(t *testing.T) {
	s := New()
	if got := s.TransitionCost(postag.VV, postag.EF); got != heuristicBonus {
		t.Errorf("predicate -> ending should be canonical, got %v", got)
	}
	if got := s.TransitionCost(postag.MAG, postag.NNG); got != heuristicBonus {
		t.Errorf("adverb -> nominal should be canonical, got %v", got)
	}
	if got := s.TransitionCost(postag.MM, postag.VV); got != heuristicPenalty {
		t.Errorf("determiner -> predicate should not be canonical, got %v", got)
	}
}

func TestDefaultScorerValues(t *testing.T) {
	s := New()
	if s.OOVPenalty != DefaultOOVPenalty {
		t.Errorf("OOVPenalty = %v, want %v", s.OOVPenalty, DefaultOOVPenalty)
	}
	if s.ConjugationBase != DefaultConjugationBase {
		t.Errorf("ConjugationBase = %v, want %v", s.ConjugationBase, DefaultConjugationBase)
	}
}
