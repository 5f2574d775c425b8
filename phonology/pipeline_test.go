package phonology

import "testing"

func TestPronounceFixtures(t *testing.T) {
	cases := []struct{ in, want string }{
		{"밥이", "바비"},
		{"독립", "동닙"},
		{"값이", "갑씨"},
		{"읽고", "일꼬"},
		{"같이", "가치"},
		{"앉다", "안따"},
		{"싫어", "시러"},
		{"놓고", "노코"},
	}
	for _, c := range cases {
		if got := Pronounce(c.in); got != c.want {
			t.Errorf("Pronounce(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPronounceEmpty(t *testing.T) {
	if got := Pronounce(""); got != "" {
		t.Errorf("Pronounce(\"\") = %q, want empty", got)
	}
}

func TestPronouncePassesThroughNonHangul(t *testing.T) {
	if got := Pronounce("ABC 123!"); got != "ABC 123!" {
		t.Errorf("Pronounce(non-Hangul) = %q, want unchanged", got)
	}
}

func TestPronounceIdempotent(t *testing.T) {
	inputs := []string{"밥이", "독립", "값이", "읽고", "같이", "앉다", "싫어", "놓고", "안녕하세요"}
	for _, in := range inputs {
		once := Pronounce(in)
		twice := Pronounce(once)
		if once != twice {
			t.Errorf("Pronounce not idempotent for %q: Pronounce(t)=%q, Pronounce(Pronounce(t))=%q", in, once, twice)
		}
	}
}

func TestNeutralizationInvariant(t *testing.T) {
	legal := map[rune]bool{0: true, 'ㄱ': true, 'ㄴ': true, 'ㄷ': true, 'ㄹ': true, 'ㅁ': true, 'ㅂ': true, 'ㅇ': true}
	inputs := []string{"밥이", "독립", "값이", "읽고", "같이", "앉다", "싫어", "놓고", "닭과", "꽃밭"}
	for _, in := range inputs {
		phs := ToPhonemes(Pronounce(in))
		for _, p := range phs {
			if !p.IsHangul {
				continue
			}
			if !legal[p.FinalRune()] {
				t.Errorf("Pronounce(%q): illegal final %q survived the pipeline", in, p.FinalRune())
			}
		}
	}
}

func TestLiaisonExhaustiveInvariant(t *testing.T) {
	inputs := []string{"밥이", "독립", "값이", "읽고", "같이", "앉다", "싫어", "놓고"}
	for _, in := range inputs {
		phs := ToPhonemes(Pronounce(in))
		for i := 0; i+1 < len(phs); i++ {
			p, q := phs[i], phs[i+1]
			if !p.IsHangul || !q.IsHangul {
				continue
			}
			if p.FinalRune() != 0 && q.InitialRune() == 'ㅇ' && q.Medial >= 0 {
				t.Errorf("Pronounce(%q): liaison not exhaustive at index %d", in, i)
			}
		}
	}
}

func TestTensificationHallmarkInvariant(t *testing.T) {
	tense := map[rune]bool{'ㄲ': true, 'ㄸ': true, 'ㅃ': true, 'ㅆ': true, 'ㅉ': true}
	obstruent := map[rune]bool{'ㄱ': true, 'ㄷ': true, 'ㅂ': true}
	plain := map[rune]bool{'ㄱ': true, 'ㄷ': true, 'ㅂ': true, 'ㅅ': true, 'ㅈ': true}
	inputs := []string{"값이", "읽고", "앉다", "국밥", "학교"}
	for _, in := range inputs {
		phs := ToPhonemes(Pronounce(in))
		for i := 0; i+1 < len(phs); i++ {
			p, q := phs[i], phs[i+1]
			if !p.IsHangul || !q.IsHangul {
				continue
			}
			if obstruent[p.FinalRune()] && plain[q.InitialRune()] && !tense[q.InitialRune()] {
				t.Errorf("Pronounce(%q): untensed onset %q after obstruent final %q", in, q.InitialRune(), p.FinalRune())
			}
		}
	}
}

func TestToPhonemesRecomposeRoundTrip(t *testing.T) {
	text := "안녕하세요"
	phs := ToPhonemes(text)
	if got := Recompose(phs); got != text {
		t.Errorf("Recompose(ToPhonemes(%q)) = %q, want unchanged (no rules applied)", text, got)
	}
}

func TestToPhonemesNonHangul(t *testing.T) {
	phs := ToPhonemes("A1")
	for _, p := range phs {
		if p.IsHangul {
			t.Errorf("non-Hangul phoneme incorrectly marked IsHangul: %+v", p)
		}
	}
}
