package phonology

// finalToAspirated and finalAspirationResidue implement aspiration
// stage 1's first bullet: p.final is an obstruent (or obstruent-headed
// cluster) and q.initial is ㅎ, so ㅎ itself is rewritten to the
// aspirated counterpart of p's final and p's final is stripped to its
// residue.
var finalToAspirated = map[rune]rune{
	'ㄱ': 'ㅋ', 'ㄲ': 'ㅋ', 'ㅋ': 'ㅋ', 'ㄺ': 'ㅋ',
	'ㄷ': 'ㅌ', 'ㅅ': 'ㅌ', 'ㅆ': 'ㅌ', 'ㅈ': 'ㅌ', 'ㅊ': 'ㅌ', 'ㅌ': 'ㅌ',
	'ㅂ': 'ㅍ', 'ㅍ': 'ㅍ', 'ㄼ': 'ㅍ',
	'ㄵ': 'ㅊ',
}

var finalAspirationResidue = map[rune]rune{
	'ㄺ': 'ㄹ', 'ㄼ': 'ㄹ', 'ㄵ': 'ㄴ',
}

// obstruentAspirate implements the second bullet: p.final is ㅎ-headed
// and q.initial is a plain obstruent, so q.initial itself is aspirated
// (ㅅ tenses instead).
var obstruentAspirate = map[rune]rune{
	'ㄱ': 'ㅋ', 'ㄷ': 'ㅌ', 'ㅂ': 'ㅍ', 'ㅈ': 'ㅊ', 'ㅅ': 'ㅆ',
}

var hFinalResidue = map[rune]rune{
	'ㅎ': 0, 'ㄶ': 'ㄴ', 'ㅀ': 'ㄹ',
}

// clusterSplit is the standard (residue, onset) split of a complex
// coda cluster when its second member migrates onto a following
// vowel-initial syllable (liaison). Neutralization does not use it.
var clusterSplit = map[rune][2]rune{
	'ㄳ': {'ㄱ', 'ㅅ'},
	'ㄵ': {'ㄴ', 'ㅈ'},
	'ㄺ': {'ㄹ', 'ㄱ'},
	'ㄻ': {'ㄹ', 'ㅁ'},
	'ㄼ': {'ㄹ', 'ㅂ'},
	'ㄽ': {'ㄹ', 'ㅅ'},
	'ㄾ': {'ㄹ', 'ㅌ'},
	'ㄿ': {'ㄹ', 'ㅍ'},
	'ㅄ': {'ㅂ', 'ㅅ'},
}

// sevenCodaNeutralize maps any of the 28 codas to one of the seven
// surface-legal finals {∅, ㄱ, ㄴ, ㄷ, ㄹ, ㅁ, ㅂ, ㅇ}, combining cluster
// simplification and coda neutralization into one table (per spec
// §4.9 stage 4's closing summary). ㄺ is handled separately because its
// residue depends on the following onset.
var sevenCodaNeutralize = map[rune]rune{
	'ㄲ': 'ㄱ', 'ㄳ': 'ㄱ', 'ㅋ': 'ㄱ',
	'ㅅ': 'ㄷ', 'ㅆ': 'ㄷ', 'ㅈ': 'ㄷ', 'ㅊ': 'ㄷ', 'ㅌ': 'ㄷ', 'ㅎ': 'ㄷ',
	'ㄼ': 'ㄹ', 'ㄽ': 'ㄹ', 'ㄾ': 'ㄹ', 'ㅀ': 'ㄹ',
	'ㄵ': 'ㄴ', 'ㄶ': 'ㄴ',
	'ㄻ': 'ㅁ',
	'ㄿ': 'ㅂ', 'ㅄ': 'ㅂ',
}

var tenseCounterpart = map[rune]rune{
	'ㄱ': 'ㄲ', 'ㄷ': 'ㄸ', 'ㅂ': 'ㅃ', 'ㅅ': 'ㅆ', 'ㅈ': 'ㅉ',
}

func applyAspiration(phs []Phoneme) {
	for i := 0; i+1 < len(phs); i++ {
		p, q := &phs[i], &phs[i+1]
		if !p.IsHangul || !q.IsHangul {
			continue
		}
		pf := p.FinalRune()
		if q.InitialRune() == 'ㅎ' {
			if asp, ok := finalToAspirated[pf]; ok {
				q.SetInitial(asp)
				p.SetFinal(finalAspirationResidue[pf])
				continue
			}
		}
		if residue, ok := hFinalResidue[pf]; ok {
			if asp, ok := obstruentAspirate[q.InitialRune()]; ok {
				q.SetInitial(asp)
				p.SetFinal(residue)
			}
		}
	}
}

func applyPalatalization(phs []Phoneme) {
	for i := 0; i+1 < len(phs); i++ {
		p, q := &phs[i], &phs[i+1]
		if !p.IsHangul || !q.IsHangul {
			continue
		}
		pf := p.FinalRune()
		if pf != 'ㄷ' && pf != 'ㅌ' && pf != 'ㄾ' {
			continue
		}
		if q.InitialRune() != 'ㅇ' {
			continue
		}
		switch q.MedialRune() {
		case 'ㅣ', 'ㅑ', 'ㅕ', 'ㅛ', 'ㅠ', 'ㅖ', 'ㅒ':
		default:
			continue
		}
		if pf == 'ㅌ' {
			q.SetInitial('ㅊ')
		} else {
			q.SetInitial('ㅈ')
		}
		switch pf {
		case 'ㄷ', 'ㅌ':
			p.SetFinal(0)
		case 'ㄾ':
			p.SetFinal('ㄹ')
		}
	}
}

func applyLiaison(phs []Phoneme) {
	for i := 0; i+1 < len(phs); i++ {
		p, q := &phs[i], &phs[i+1]
		if !p.IsHangul || !q.IsHangul || q.InitialRune() != 'ㅇ' {
			continue
		}
		pf := p.FinalRune()
		if pf == 0 {
			continue
		}
		if residue, ok := hFinalResidue[pf]; ok {
			if residue != 0 {
				q.SetInitial(residue)
			}
			p.SetFinal(0)
			continue
		}
		if split, ok := clusterSplit[pf]; ok {
			residue, onset := split[0], split[1]
			if onset == 'ㅅ' {
				onset = 'ㅆ'
			}
			p.SetFinal(residue)
			q.SetInitial(onset)
			continue
		}
		// Single, non-cluster consonant: moves wholesale.
		q.SetInitial(pf)
		p.SetFinal(0)
	}
}

func applyNeutralization(phs []Phoneme) {
	for i := range phs {
		p := &phs[i]
		if !p.IsHangul || p.Final == 0 {
			continue
		}
		pf := p.FinalRune()
		if pf == 'ㄺ' {
			next := rune(0)
			if i+1 < len(phs) && phs[i+1].IsHangul {
				next = phs[i+1].InitialRune()
			}
			if next == 'ㄱ' {
				p.SetFinal('ㄹ')
			} else {
				p.SetFinal('ㄱ')
			}
			continue
		}
		if repl, ok := sevenCodaNeutralize[pf]; ok {
			p.SetFinal(repl)
		}
	}
}

func applyTensification(phs []Phoneme) {
	for i := 0; i+1 < len(phs); i++ {
		p, q := &phs[i], &phs[i+1]
		if !p.IsHangul || !q.IsHangul {
			continue
		}
		qi := q.InitialRune()
		switch qi {
		case 'ㄱ', 'ㄷ', 'ㅂ', 'ㅅ', 'ㅈ':
		default:
			continue
		}

		pf := p.FinalRune()
		pof := p.OriginalFinalRune()
		tense := false
		switch pf {
		case 'ㄱ', 'ㄷ', 'ㅂ':
			tense = true
		}
		if !tense {
			switch pof {
			case 'ㄵ', 'ㄶ', 'ㄻ', 'ㄼ', 'ㄾ', 'ㅀ':
				tense = true
			}
		}
		if !tense && pf == 'ㄹ' {
			switch pof {
			case 'ㄺ', 'ㄼ', 'ㄾ', 'ㅀ':
				tense = true
			}
		}
		if tense {
			if t, ok := tenseCounterpart[qi]; ok {
				q.SetInitial(t)
			}
		}
	}
}

func applyAssimilation(phs []Phoneme) {
	for pass := 0; pass < 3; pass++ {
		changed := false
		for i := 0; i+1 < len(phs); i++ {
			p, q := &phs[i], &phs[i+1]
			if !p.IsHangul || !q.IsHangul {
				continue
			}
			pf, qi := p.FinalRune(), q.InitialRune()

			switch {
			case pf == 'ㄴ' && qi == 'ㄹ':
				p.SetFinal('ㄹ')
				q.SetInitial('ㄹ')
				changed = true
			case pf == 'ㄹ' && qi == 'ㄴ':
				q.SetInitial('ㄹ')
				changed = true
			case (pf == 'ㄱ' || pf == 'ㄷ' || pf == 'ㅂ' || pf == 'ㅁ' || pf == 'ㅇ') && qi == 'ㄹ':
				q.SetInitial('ㄴ')
				changed = true
			case pf == 'ㄱ' && (qi == 'ㄴ' || qi == 'ㅁ'):
				p.SetFinal('ㅇ')
				changed = true
			case pf == 'ㄷ' && (qi == 'ㄴ' || qi == 'ㅁ'):
				p.SetFinal('ㄴ')
				changed = true
			case pf == 'ㅂ' && (qi == 'ㄴ' || qi == 'ㅁ'):
				p.SetFinal('ㅁ')
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}
