package romanize

import "github.com/jake1104/KULIM/hangul"

// phoneticInitials, phoneticMedials and phoneticFinals romanize a
// phoneme sequence that has already passed through the pronunciation
// pipeline: they describe the sound, not the spelling.
var phoneticInitials = [hangul.NumInitials]string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
	"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

var phoneticMedials = [hangul.NumMedials]string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
	"wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui",
	"i",
}

var phoneticFinals = [hangul.NumFinals]string{
	"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
	"m", "l", "l", "l", "l", "l", "m", "p", "p", "t",
	"t", "ng", "t", "t", "k", "t", "p", "t",
}

// literalInitials and literalMedials are identical to the phonetic
// tables (onset/vowel spelling does not change under direct
// transliteration); literalFinals instead spells out the underlying
// coda letter-for-letter, including complex clusters.
var literalInitials = phoneticInitials
var literalMedials = phoneticMedials

var literalFinals = [hangul.NumFinals]string{
	"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
	"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs", "s",
	"ss", "ng", "j", "ch", "k", "t", "p", "h",
}
