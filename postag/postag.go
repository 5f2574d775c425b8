// Package postag defines the closed part-of-speech enumeration shared by
// the dictionary, the lattice decoder, the scorer and the validator. Tag
// names follow the Sejong-derived scheme used throughout Korean NLP
// tooling (NNG, VV, EP, EF, SF, ...) so that a dictionary built from any
// standard Korean morphological resource can be loaded without
// remapping.
//
// Composite tags (a morpheme covering more than one component, such as
// a contracted stem+ending pair) are serialized as components joined by
// "+", e.g. "VV+EC".
package postag

import "strings"

// Tag is an atomic part-of-speech label.
type Tag string

// The closed tag enumeration, grouped by prefix.
const (
	// Nominals
	NNG Tag = "NNG" // general noun
	NNP Tag = "NNP" // proper noun
	NNB Tag = "NNB" // bound (dependent) noun
	NNM Tag = "NNM" // unit-counting bound noun
	NP  Tag = "NP"  // pronoun
	NR  Tag = "NR"  // numeral

	// Predicates
	VV  Tag = "VV"  // verb
	VA  Tag = "VA"  // adjective
	VX  Tag = "VX"  // auxiliary predicate
	VCP Tag = "VCP" // copula "이다"
	VCN Tag = "VCN" // negative copula "아니다"

	// Modifiers
	MM  Tag = "MM"  // determiner
	MAG Tag = "MAG" // general adverb
	MAJ Tag = "MAJ" // conjunctive adverb

	// Interjection
	IC Tag = "IC"

	// Particles
	JKS Tag = "JKS" // subject case particle
	JKC Tag = "JKC" // complement case particle
	JKG Tag = "JKG" // adnominal case particle
	JKO Tag = "JKO" // object case particle
	JKB Tag = "JKB" // adverbial case particle
	JKV Tag = "JKV" // vocative case particle
	JKQ Tag = "JKQ" // quotation case particle
	JX  Tag = "JX"  // auxiliary particle
	JC  Tag = "JC"  // conjunctive particle

	// Endings
	EP  Tag = "EP"  // pre-final (pre-terminal) ending
	EF  Tag = "EF"  // final ending
	EC  Tag = "EC"  // connective ending
	ETN Tag = "ETN" // nominalizing transformative ending
	ETM Tag = "ETM" // adnominalizing transformative ending

	// Affixes
	XPN Tag = "XPN" // noun prefix
	XSN Tag = "XSN" // noun-deriving suffix
	XSV Tag = "XSV" // verb-deriving suffix
	XSA Tag = "XSA" // adjective-deriving suffix
	XR  Tag = "XR"  // root (bound, cannot stand alone)

	// Symbols
	SF Tag = "SF" // terminal punctuation (. ! ?)
	SP Tag = "SP" // comma, colon, slash
	SS Tag = "SS" // brackets/quotes
	SE Tag = "SE" // ellipsis
	SO Tag = "SO" // dash, hyphen
	SW Tag = "SW" // other symbol

	SL Tag = "SL" // foreign-script (Latin) run
	SH Tag = "SH" // Chinese character (Hanja) run
	SN Tag = "SN" // number run

	// Unanalyzed
	NA Tag = "NA"
)

const compositeSep = "+"

// Join builds a composite tag string from ordered component tags.
func Join(tags ...Tag) Tag {
	ss := make([]string, len(tags))
	for i, t := range tags {
		ss[i] = string(t)
	}
	return Tag(strings.Join(ss, compositeSep))
}

// Split decomposes a (possibly composite) tag into its atomic
// components. A non-composite tag returns a single-element slice.
func Split(t Tag) []Tag {
	parts := strings.Split(string(t), compositeSep)
	out := make([]Tag, len(parts))
	for i, p := range parts {
		out[i] = Tag(p)
	}
	return out
}

// IsComposite reports whether t is a "+"-joined sequence of atomic
// tags.
func IsComposite(t Tag) bool {
	return strings.Contains(string(t), compositeSep)
}

// Last returns the final component of a (possibly composite) tag. For
// an atomic tag it returns the tag itself. Used by the lattice decoder
// to pick the trailing POS used for the next transition cost lookup.
func Last(t Tag) Tag {
	parts := Split(t)
	return parts[len(parts)-1]
}

func hasPrefix(t Tag, prefix string) bool {
	return strings.HasPrefix(string(t), prefix)
}

// IsNominal reports whether t is one of the N-group tags.
func IsNominal(t Tag) bool { return hasPrefix(t, "N") }

// IsPredicate reports whether t is one of the V-group tags.
func IsPredicate(t Tag) bool { return hasPrefix(t, "V") }

// IsModifier reports whether t is one of the M-group tags.
func IsModifier(t Tag) bool { return hasPrefix(t, "M") }

// IsParticle reports whether t is one of the J-group tags.
func IsParticle(t Tag) bool { return hasPrefix(t, "J") }

// IsEnding reports whether t is one of the E-group tags.
func IsEnding(t Tag) bool { return hasPrefix(t, "E") }

// IsAffix reports whether t is one of the X-group tags.
func IsAffix(t Tag) bool { return hasPrefix(t, "X") }

// IsSymbol reports whether t is one of the S-group tags.
func IsSymbol(t Tag) bool { return hasPrefix(t, "S") }

// IsInterjection reports whether t is IC.
func IsInterjection(t Tag) bool { return t == IC }

// IsFinalEnding reports whether t is a sentence-final ending (EF).
func IsFinalEnding(t Tag) bool { return t == EF }

// IsCaseParticle reports whether t is one of the case-marking
// particles (subject, complement, adnominal, object, adverbial,
// vocative, quotation) as opposed to the auxiliary/conjunctive
// particles JX/JC.
func IsCaseParticle(t Tag) bool {
	switch t {
	case JKS, JKC, JKG, JKO, JKB, JKV, JKQ:
		return true
	default:
		return false
	}
}

// all lists every atomic tag in the enumeration, used by validators and
// round-trip tests that need to enumerate the closed set.
var all = []Tag{
	NNG, NNP, NNB, NNM, NP, NR,
	VV, VA, VX, VCP, VCN,
	MM, MAG, MAJ,
	IC,
	JKS, JKC, JKG, JKO, JKB, JKV, JKQ, JX, JC,
	EP, EF, EC, ETN, ETM,
	XPN, XSN, XSV, XSA, XR,
	SF, SP, SS, SE, SO, SW, SL, SH, SN,
	NA,
}

// All returns every atomic tag in the enumeration.
func All() []Tag {
	out := make([]Tag, len(all))
	copy(out, all)
	return out
}

var validSet = func() map[Tag]struct{} {
	m := make(map[Tag]struct{}, len(all))
	for _, t := range all {
		m[t] = struct{}{}
	}
	return m
}()

// IsValidAtomic reports whether t is a member of the closed atomic
// enumeration (not a composite).
func IsValidAtomic(t Tag) bool {
	_, ok := validSet[t]
	return ok
}
