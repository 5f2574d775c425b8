package postag

import (
	"reflect"
	"testing"
)

func TestJoinSplit(t *testing.T) {
	composite := Join(VV, EP, EF)
	if composite != "VV+EP+EF" {
		t.Errorf("Join = %q, want VV+EP+EF", composite)
	}
	parts := Split(composite)
	want := []Tag{VV, EP, EF}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("Split(%q) = %v, want %v", composite, parts, want)
	}
}

func TestSplitAtomic(t *testing.T) {
	parts := Split(NNG)
	if len(parts) != 1 || parts[0] != NNG {
		t.Errorf("Split(NNG) = %v, want [NNG]", parts)
	}
}

func TestIsComposite(t *testing.T) {
	if IsComposite(NNG) {
		t.Error("NNG should not be composite")
	}
	if !IsComposite(Join(VV, EC)) {
		t.Error("VV+EC should be composite")
	}
}

func TestLast(t *testing.T) {
	if Last(Join(VV, EP, EF)) != EF {
		t.Errorf("Last(VV+EP+EF) = %v, want EF", Last(Join(VV, EP, EF)))
	}
	if Last(NNG) != NNG {
		t.Errorf("Last(NNG) = %v, want NNG", Last(NNG))
	}
}

func TestGroupPredicates(t *testing.T) {
	cases := []struct {
		tag  Tag
		pred func(Tag) bool
		want bool
	}{
		{NNG, IsNominal, true},
		{VV, IsNominal, false},
		{VV, IsPredicate, true},
		{MM, IsModifier, true},
		{JKS, IsParticle, true},
		{EF, IsEnding, true},
		{XSN, IsAffix, true},
		{SF, IsSymbol, true},
		{IC, IsInterjection, true},
		{EF, IsFinalEnding, true},
		{EC, IsFinalEnding, false},
	}
	for _, c := range cases {
		if got := c.pred(c.tag); got != c.want {
			t.Errorf("predicate(%v) = %v, want %v", c.tag, got, c.want)
		}
	}
}

func TestIsCaseParticle(t *testing.T) {
	if !IsCaseParticle(JKS) {
		t.Error("JKS should be a case particle")
	}
	if IsCaseParticle(JX) {
		t.Error("JX should not be a case particle")
	}
}

func TestIsValidAtomic(t *testing.T) {
	for _, tag := range All() {
		if !IsValidAtomic(tag) {
			t.Errorf("IsValidAtomic(%v) = false, want true", tag)
		}
	}
	if IsValidAtomic(Join(VV, EF)) {
		t.Error("composite tag should not be a valid atomic tag")
	}
	if IsValidAtomic(Tag("bogus")) {
		t.Error("unknown tag should not be valid")
	}
}
