package score

import (
	"testing"

	"github.com/jake1104/KULIM/postag"
)

func TestTransitionModelSetLookup(t *testing.T) {
	m := &TransitionModel{}
	m.Set(postag.NNG, postag.JKS, -7.5)
	got, ok := m.Lookup(postag.NNG, postag.JKS)
	if !ok || got != -7.5 {
		t.Errorf("Lookup after Set = %v, %v, want -7.5, true", got, ok)
	}
}

func TestTransitionModelLookupMiss(t *testing.T) {
	m := NewTransitionModel(nil)
	if _, ok := m.Lookup(postag.NNG, postag.JKS); ok {
		t.Error("Lookup on empty model should miss")
	}
}

func TestTransitionModelNilReceiver(t *testing.T) {
	var m *TransitionModel
	if _, ok := m.Lookup(postag.NNG, postag.JKS); ok {
		t.Error("Lookup on nil model should miss, not panic")
	}
}

func TestNewTransitionModelFromFlatTable(t *testing.T) {
	m := NewTransitionModel(map[[2]postag.Tag]float64{
		{postag.VV, postag.EF}: -12,
		{postag.NNG, postag.JKO}: -3,
	})
	if got, ok := m.Lookup(postag.VV, postag.EF); !ok || got != -12 {
		t.Errorf("Lookup(VV,EF) = %v, %v", got, ok)
	}
	if got, ok := m.Lookup(postag.NNG, postag.JKO); !ok || got != -3 {
		t.Errorf("Lookup(NNG,JKO) = %v, %v", got, ok)
	}
}
