package lattice

import (
	"testing"

	"github.com/jake1104/KULIM/constraint"
	"github.com/jake1104/KULIM/dict"
	"github.com/jake1104/KULIM/postag"
	"github.com/jake1104/KULIM/score"
)

func newFixture(entries ...[3]string) *dict.Trie {
	tr := dict.New()
	for _, e := range entries {
		tr.Insert(e[0], postag.Tag(e[1]), e[2])
	}
	tr.Build(true)
	return tr
}

func TestDecodeEmptySpan(t *testing.T) {
	if got := Decode("", nil, nil, nil); got != nil {
		t.Errorf("Decode(\"\") = %v, want nil", got)
	}
}

func TestDecodeAllPunctuation(t *testing.T) {
	got := Decode(".", nil, nil, nil)
	if len(got) != 1 {
		t.Fatalf("Decode(.) = %+v, want one morpheme", got)
	}
	if got[0].POS != postag.SF || got[0].Surface != "." {
		t.Errorf("Decode(.) = %+v, want SF punctuation", got[0])
	}
}

func TestDecodeDictionaryPath(t *testing.T) {
	tr := newFixture([3]string{"친구", "NNG", "친구"}, [3]string{"가", "JKS", "가"})
	got := Decode("친구가", tr, score.New(), constraint.New())
	if len(got) != 2 {
		t.Fatalf("Decode(친구가) = %+v, want 2 morphemes", got)
	}
	if got[0].Surface != "친구" || got[0].POS != postag.NNG {
		t.Errorf("first morpheme = %+v", got[0])
	}
	if got[1].Surface != "가" || got[1].POS != postag.JKS {
		t.Errorf("second morpheme = %+v", got[1])
	}
}

func TestDecodeCompositeDictionaryEntry(t *testing.T) {
	tr := newFixture([3]string{"갑니다", "VV+EF", "가다+ㅂ니다"})
	got := Decode("갑니다", tr, score.New(), constraint.New())
	if len(got) != 1 {
		t.Fatalf("Decode(갑니다) = %+v, want 1 composite morpheme", got)
	}
	m := got[0]
	if !m.IsComposite() {
		t.Fatalf("Decode(갑니다) = %+v, want composite", m)
	}
	if len(m.Sub) != 2 || m.Sub[0].Lemma != "가다" || m.Sub[1].Lemma != "ㅂ니다" {
		t.Errorf("Sub = %+v", m.Sub)
	}
}

func TestDecodeConjugationPath(t *testing.T) {
	tr := newFixture([3]string{"가", "VV", "가다"})
	got := Decode("갔", tr, score.New(), constraint.New())
	if len(got) != 1 {
		t.Fatalf("Decode(갔) = %+v, want 1 morpheme", got)
	}
	m := got[0]
	if m.Surface != "갔" {
		t.Errorf("Decode(갔) surface = %q, want 갔", m.Surface)
	}
	if !m.IsComposite() || m.Sub[0].Surface != "가" || m.Sub[1].Surface != "았" {
		t.Errorf("Decode(갔) = %+v, want composite stem+ending split", m)
	}
}

func TestDecodeOOVFallback(t *testing.T) {
	tr := dict.New()
	tr.Build(true)
	got := Decode("쀍", tr, score.New(), constraint.New())
	if len(got) != 1 {
		t.Fatalf("Decode(쀍) = %+v, want single OOV morpheme", got)
	}
	if got[0].Confidence != 0.5 || got[0].POS != postag.NNG {
		t.Errorf("OOV morpheme = %+v, want confidence 0.5 and NNG", got[0])
	}
}

func TestDecodeOOVLatinAndDigit(t *testing.T) {
	tr := dict.New()
	tr.Build(true)
	if got := Decode("A", tr, score.New(), constraint.New()); len(got) != 1 || got[0].POS != postag.SL {
		t.Errorf("Decode(A) = %+v, want SL", got)
	}
	if got := Decode("5", tr, score.New(), constraint.New()); len(got) != 1 || got[0].POS != postag.SN {
		t.Errorf("Decode(5) = %+v, want SN", got)
	}
}
