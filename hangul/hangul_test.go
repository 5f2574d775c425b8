package hangul

import "testing"

func TestDecomposeComposeRoundTrip(t *testing.T) {
	for c := rune(syllableBase); c <= syllableLast; c += 37 {
		tr := Decompose(c)
		got, err := Compose(tr.Initial, tr.Medial, tr.Final)
		if err != nil {
			t.Fatalf("Compose(%v) for %q: %v", tr, c, err)
		}
		if got != c {
			t.Errorf("compose(decompose(%U)) = %U, want %U", c, got, c)
		}
	}
}

func TestDecomposeKnownSyllable(t *testing.T) {
	// 값 = ㄱ(0) + ㅏ(0) + ㅄ
	tr := Decompose('값')
	wantFinal := FinalIndexOf('ㅄ')
	if tr.Initial != 0 || tr.Medial != 0 || tr.Final != wantFinal {
		t.Errorf("Decompose(값) = %+v, want {0 0 %d}", tr, wantFinal)
	}
}

func TestComposeOutOfRange(t *testing.T) {
	cases := []struct {
		name                  string
		initial, medial, final int
	}{
		{"initial", -1, 0, 0},
		{"initial high", NumInitials, 0, 0},
		{"medial", 0, -1, 0},
		{"medial high", 0, NumMedials, 0},
		{"final", 0, 0, -1},
		{"final high", 0, 0, NumFinals},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Compose(c.initial, c.medial, c.final); err == nil {
				t.Errorf("Compose(%d,%d,%d) expected error, got nil", c.initial, c.medial, c.final)
			}
		})
	}
}

func TestIsHangul(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'가', true},
		{'힣', true},
		{'ㄱ', true},
		{'ㅏ', true},
		{'a', false},
		{'1', false},
		{'!', false},
	}
	for _, c := range cases {
		if got := IsHangul(c.r); got != c.want {
			t.Errorf("IsHangul(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestHasFinal(t *testing.T) {
	if !HasFinal('값') {
		t.Error("값 should have a final")
	}
	if HasFinal('바') {
		t.Error("바 should not have a final")
	}
	if HasFinal('a') {
		t.Error("non-Hangul should not have a final")
	}
}

func TestDecomposeIsolatedJamo(t *testing.T) {
	tr := Decompose('ㄱ')
	if tr.Initial == -1 && tr.Final == -1 {
		t.Errorf("Decompose(ㄱ) should occupy initial or final slot, got %+v", tr)
	}
	tr2 := Decompose('ㅏ')
	if tr2.Medial == -1 {
		t.Errorf("Decompose(ㅏ) should occupy medial slot, got %+v", tr2)
	}
}

func TestDecomposeNonHangul(t *testing.T) {
	if Decompose('a') != Empty {
		t.Error("Decompose of Latin rune should be Empty")
	}
}

func TestInitialMedialFinalRuneRoundTrip(t *testing.T) {
	for i := 0; i < NumInitials; i++ {
		r := InitialRune(i)
		if InitialIndexOf(r) != i {
			t.Errorf("InitialIndexOf(InitialRune(%d)) = %d, want %d", i, InitialIndexOf(r), i)
		}
	}
	for i := 0; i < NumMedials; i++ {
		r := MedialRune(i)
		if MedialIndexOf(r) != i {
			t.Errorf("MedialIndexOf(MedialRune(%d)) = %d, want %d", i, MedialIndexOf(r), i)
		}
	}
	for i := 0; i < NumFinals; i++ {
		r := FinalRune(i)
		if FinalIndexOf(r) != i {
			t.Errorf("FinalIndexOf(FinalRune(%d)) = %d, want %d", i, FinalIndexOf(r), i)
		}
	}
}
