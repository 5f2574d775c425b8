package romanize

import "testing"

func TestPhoneticFixtures(t *testing.T) {
	cases := []struct{ in, want string }{
		{"읽고", "ilkko"},
		{"값이", "gapssi"},
		{"독립", "dongnip"},
	}
	for _, c := range cases {
		if got := Phonetic(c.in); got != c.want {
			t.Errorf("Phonetic(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLiteralFixtures(t *testing.T) {
	if got := Literal("읽고"); got != "ilggo" {
		t.Errorf("Literal(읽고) = %q, want ilggo", got)
	}
}

func TestRomanizeEmpty(t *testing.T) {
	if got := Phonetic(""); got != "" {
		t.Errorf("Phonetic(\"\") = %q, want empty", got)
	}
	if got := Literal(""); got != "" {
		t.Errorf("Literal(\"\") = %q, want empty", got)
	}
}

func TestRomanizePassesThroughNonHangul(t *testing.T) {
	if got := Literal("Go 2026!"); got != "Go 2026!" {
		t.Errorf("Literal(non-Hangul) = %q, want unchanged", got)
	}
}
