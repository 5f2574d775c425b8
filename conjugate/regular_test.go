package conjugate

import "testing"

func TestRestorePastSeriesA(t *testing.T) {
	got, ok := restorePast("갔")
	if !ok {
		t.Fatal("restorePast(갔) failed to match")
	}
	if got.Stem != "가" || got.Ending != "았" {
		t.Errorf("restorePast(갔) = %+v, want {가 았}", got)
	}
}

func TestRestorePastSeriesEo(t *testing.T) {
	got, ok := restorePast("섰")
	if !ok {
		t.Fatal("restorePast(섰) failed to match")
	}
	if got.Stem != "서" || got.Ending != "었" {
		t.Errorf("restorePast(섰) = %+v, want {서 었}", got)
	}
}

func TestRestorePastNoFinal(t *testing.T) {
	if _, ok := restorePast("가"); ok {
		t.Error("restorePast(가) should not match: no ㅆ coda")
	}
}

func TestRestoreContractionWa(t *testing.T) {
	got, ok := restoreContraction("와")
	if !ok {
		t.Fatal("restoreContraction(와) failed to match")
	}
	if got.Stem != "오" || got.Ending != "아" {
		t.Errorf("restoreContraction(와) = %+v, want {오 아}", got)
	}
}

func TestRestoreContractionWeo(t *testing.T) {
	got, ok := restoreContraction("워")
	if !ok {
		t.Fatal("restoreContraction(워) failed to match")
	}
	if got.Stem != "우" || got.Ending != "어" {
		t.Errorf("restoreContraction(워) = %+v, want {우 어}", got)
	}
}

func TestRestoreContractionNoMatch(t *testing.T) {
	if _, ok := restoreContraction("가"); ok {
		t.Error("restoreContraction(가) should not match: no contracted vowel")
	}
}

func TestRestoreReturnsOnlyPastCandidate(t *testing.T) {
	got := Restore("갔")
	if len(got) != 1 {
		t.Fatalf("Restore(갔) = %+v, want exactly the past-tense candidate", got)
	}
	if got[0].Stem != "가" || got[0].Ending != "았" {
		t.Errorf("Restore(갔) = %+v", got)
	}
}

func TestRestoreNoCandidates(t *testing.T) {
	if got := Restore("모"); len(got) != 0 {
		t.Errorf("Restore(모) = %+v, want empty", got)
	}
}
