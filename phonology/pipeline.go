package phonology

// Pronounce runs the six-stage phonological pipeline over text and
// recomposes the result. Non-Hangul spans pass through unchanged.
func Pronounce(text string) string {
	if text == "" {
		return ""
	}
	phs := ToPhonemes(text)
	applyAspiration(phs)
	applyPalatalization(phs)
	applyLiaison(phs)
	applyNeutralization(phs)
	applyTensification(phs)
	applyAssimilation(phs)
	return Recompose(phs)
}
