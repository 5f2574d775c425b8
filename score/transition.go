// Package score implements the lattice decoder's cost model: length
// priors, POS-to-POS transition costs, and the fixed penalties applied
// to OOV and regular-conjugation candidates (spec §4.5).
package score

import "github.com/jake1104/KULIM/postag"

type transitionKey struct {
	prev, curr postag.Tag
}

// TransitionModel is a learned (prev-POS, curr-POS) -> cost table. The
// zero value is an empty model: every lookup misses and callers fall
// back to the heuristic adjacency bonuses in Scorer.TransitionCost.
type TransitionModel struct {
	costs map[transitionKey]float64
}

// NewTransitionModel builds a model from a flat table, as would be
// decoded from the archive's transition-model file.
func NewTransitionModel(entries map[[2]postag.Tag]float64) *TransitionModel {
	m := &TransitionModel{costs: make(map[transitionKey]float64, len(entries))}
	for k, v := range entries {
		m.costs[transitionKey{prev: k[0], curr: k[1]}] = v
	}
	return m
}

// Lookup returns the learned cost for (prev, curr) and whether it was
// present.
func (m *TransitionModel) Lookup(prev, curr postag.Tag) (float64, bool) {
	if m == nil || m.costs == nil {
		return 0, false
	}
	v, ok := m.costs[transitionKey{prev: prev, curr: curr}]
	return v, ok
}

// Set installs or overwrites the cost for (prev, curr).
func (m *TransitionModel) Set(prev, curr postag.Tag, cost float64) {
	if m.costs == nil {
		m.costs = make(map[transitionKey]float64)
	}
	m.costs[transitionKey{prev: prev, curr: curr}] = cost
}
