package dict

// plainTrieBackend is the recoverable fallback storage named in the
// spec: a map-of-maps trie with no capacity limit, used automatically
// when the double-array backend's base-offset search exhausts its
// budget during an Insert. It implements the same backend contract so the
// Trie facade's failure-link construction and search code is oblivious
// to which one it is talking to.
type plainTrieBackend struct {
	parent   []int32
	children []map[int32]int32
	patterns [][]patternRef
	failure  []int32
	matches  [][]matchGroup
}

func newPlainTrieBackend() *plainTrieBackend {
	p := &plainTrieBackend{}
	p.grow() // state 0: root
	p.parent[0] = -1
	return p
}

func (p *plainTrieBackend) grow() int32 {
	id := int32(len(p.parent))
	p.parent = append(p.parent, -1)
	p.children = append(p.children, nil)
	p.patterns = append(p.patterns, nil)
	p.failure = append(p.failure, 0)
	p.matches = append(p.matches, nil)
	return id
}

func (p *plainTrieBackend) root() int32 { return 0 }

func (p *plainTrieBackend) numStates() int32 { return int32(len(p.parent)) }

func (p *plainTrieBackend) parentOf(state int32) int32 { return p.parent[state] }

func (p *plainTrieBackend) childOf(parent, code int32) (int32, bool) {
	m := p.children[parent]
	if m == nil {
		return 0, false
	}
	c, ok := m[code]
	return c, ok
}

func (p *plainTrieBackend) childrenOf(parent int32) map[int32]int32 {
	return p.children[parent]
}

func (p *plainTrieBackend) insertEdge(parent, code int32) (int32, error) {
	if child, ok := p.childOf(parent, code); ok {
		return child, nil
	}
	child := p.grow()
	p.parent[child] = parent
	if p.children[parent] == nil {
		p.children[parent] = make(map[int32]int32)
	}
	p.children[parent][code] = child
	return child, nil
}

func (p *plainTrieBackend) addPattern(state int32, ref patternRef) {
	p.patterns[state] = dedupAppend(p.patterns[state], ref)
}

func (p *plainTrieBackend) ownPatterns(state int32) []patternRef {
	return p.patterns[state]
}

func (p *plainTrieBackend) setFailure(state, fail int32) { p.failure[state] = fail }
func (p *plainTrieBackend) failureOf(state int32) int32  { return p.failure[state] }

func (p *plainTrieBackend) setMatches(state int32, groups []matchGroup) {
	p.matches[state] = groups
}
func (p *plainTrieBackend) matchesOf(state int32) []matchGroup { return p.matches[state] }
