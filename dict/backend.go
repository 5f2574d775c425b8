package dict

// backend is the structural trie storage contract shared by the
// double-array implementation and its plain-trie fallback. The Trie
// facade in trie.go drives failure-link construction and all-substring
// search purely in terms of this interface, so either backend can sit
// underneath without the higher-level logic knowing which one it got.
type backend interface {
	// root returns the root state.
	root() int32

	// insertEdge returns the child of parent reached by code, creating
	// it if necessary. It can fail with a *kerrors.ResourceExhaustion
	// (double-array backend only, when no free base offset can be
	// found within capacity).
	insertEdge(parent, code int32) (int32, error)

	// childOf looks up an existing edge without creating one.
	childOf(parent, code int32) (int32, bool)

	// childrenOf returns a read-only view of parent's (code -> child) edges.
	childrenOf(parent int32) map[int32]int32

	// numStates returns the number of allocated states, including root.
	numStates() int32

	// parentOf returns the structural parent of state, or -1 for root.
	parentOf(state int32) int32

	// addPattern appends p to state's own pattern list, deduping
	// against what is already there (patterns are a set, not a
	// multiset).
	addPattern(state int32, p patternRef)

	// ownPatterns returns state's own (pre-merge) pattern list.
	ownPatterns(state int32) []patternRef

	// setFailure / failureOf store and retrieve the Aho-Corasick
	// failure link computed by Build.
	setFailure(state, fail int32)
	failureOf(state int32) int32

	// setMatches / matchesOf store and retrieve the post-build,
	// length-grouped match lists used by SearchAllPatterns.
	setMatches(state int32, groups []matchGroup)
	matchesOf(state int32) []matchGroup
}

// matchGroup is one length's worth of patterns ending at a trie state:
// every key of exactly `length` runes that is a suffix of the string
// reaching this state.
type matchGroup struct {
	length   int
	patterns []patternRef
}

func dedupAppend(existing []patternRef, p patternRef) []patternRef {
	for _, e := range existing {
		if e == p {
			return existing
		}
	}
	return append(existing, p)
}
