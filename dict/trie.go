// Package dict implements the dictionary engine: a trie over Hangul
// (or any Unicode) code points augmented, after Build, with
// Aho-Corasick failure links so a single left-to-right traversal
// exposes every dictionary key that ends at each position of an input
// string. POS tags and lemmas are interned to small integers so a
// node's payload stays a short slice of integer pairs (see intern.go).
//
// Storage defaults to a double-array representation (doublearray.go).
// If base-offset allocation is ever exhausted, the trie transparently
// rebuilds itself on the unbounded map-based fallback (plaintrie.go)
// and keeps running — per the spec this is a recoverable condition,
// never surfaced to callers as an error.
package dict

import (
	"sync"

	"github.com/jake1104/KULIM/kerrors"
	"github.com/jake1104/KULIM/postag"
)

// defaultMaxBase bounds the double-array backend's base-offset search.
// It is generous for a dictionary of a few hundred thousand surfaces;
// raising it trades memory for a larger address space before falling
// back to the plain trie.
const defaultMaxBase = 1 << 20

type record struct {
	surface string
	pos     postag.Tag
	lemma   string
}

// Trie is the dictionary engine described in spec §4.2. The zero value
// is not usable; construct with New.
type Trie struct {
	mu         sync.RWMutex
	tables     *internTables
	be         backend
	usingPlain bool
	built      bool
	finalized  bool

	alphabet     map[rune]int32
	alphabetSize int32
	depth        map[int32]int

	records []record // replayed if the double-array backend exhausts capacity

	cache *searchCache
}

// New constructs an empty, mutable Trie using the double-array backend.
func New() *Trie {
	return newTrie(newDoubleArrayBackend(defaultMaxBase), false)
}

// NewPlain constructs an empty, mutable Trie that always uses the
// unbounded plain-trie backend, skipping the double-array attempt
// entirely. Useful for tests and for archives the caller knows are too
// large for the configured double-array capacity.
func NewPlain() *Trie {
	return newTrie(newPlainTrieBackend(), true)
}

func newTrie(be backend, plain bool) *Trie {
	return &Trie{
		tables:     newInternTables(),
		be:         be,
		usingPlain: plain,
		alphabet:   make(map[rune]int32),
		depth:      map[int32]int{0: 0},
		cache:      newSearchCache(),
	}
}

func (t *Trie) codeFor(r rune) int32 {
	if c, ok := t.alphabet[r]; ok {
		return c
	}
	c := t.alphabetSize
	t.alphabet[r] = c
	t.alphabetSize++
	return c
}

func (t *Trie) codeLookup(r rune) int32 {
	if c, ok := t.alphabet[r]; ok {
		return c
	}
	return -1
}

// Insert adds surface to the trie and appends (pos, lemma) to the
// terminal node's pattern set if not already present. It invalidates
// any failure-link index from a prior Build. It returns an
// *kerrors.InvariantViolation if the trie was finalized by a prior
// Build(final=true).
func (t *Trie) Insert(surface string, pos postag.Tag, lemma string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(surface, pos, lemma, true)
}

func (t *Trie) insertLocked(surface string, pos postag.Tag, lemma string, record_ bool) error {
	if t.finalized {
		return kerrors.NewInvariantViolation("dict.Trie.Insert", "insert after finalized build")
	}
	if surface == "" {
		return kerrors.NewInvariantViolation("dict.Trie.Insert", "empty surface")
	}

	state := t.be.root()
	for _, r := range surface {
		code := t.codeFor(r)
		next, err := t.be.insertEdge(state, code)
		if err != nil {
			if t.fallbackToPlain() {
				return t.insertLocked(surface, pos, lemma, record_)
			}
			return err
		}
		t.depth[next] = t.depth[state] + 1
		state = next
	}
	t.be.addPattern(state, t.tables.ref(pos, lemma))

	if record_ {
		t.records = append(t.records, record{surface: surface, pos: pos, lemma: lemma})
	}
	t.built = false
	t.cache.clear()
	return nil
}

// fallbackToPlain switches storage to the plain-trie backend and
// replays every previously accepted insertion. Returns true if the
// switch happened (false if already on the plain backend, meaning the
// error must be reported to the caller as-is).
func (t *Trie) fallbackToPlain() bool {
	if t.usingPlain {
		return false
	}
	t.usingPlain = true
	t.be = newPlainTrieBackend()
	t.alphabet = make(map[rune]int32)
	t.alphabetSize = 0
	t.depth = map[int32]int{0: 0}
	t.tables = newInternTables()
	saved := t.records
	t.records = nil
	for _, r := range saved {
		// Errors are impossible on the plain backend (unbounded), so
		// this replay cannot itself trigger another fallback.
		_ = t.insertLocked(r.surface, r.pos, r.lemma, true)
	}
	return true
}

// Exists reports whether surface is a key in the trie.
func (t *Trie) Exists(surface string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state, ok := t.walkExact(surface)
	if !ok {
		return false
	}
	return len(t.be.ownPatterns(state)) > 0
}

// Search returns the pattern set recorded at surface's terminal node
// (an exact match), or nil if surface is not a key.
func (t *Trie) Search(surface string) []Pattern {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state, ok := t.walkExact(surface)
	if !ok {
		return nil
	}
	return t.resolveAll(t.be.ownPatterns(state))
}

func (t *Trie) walkExact(surface string) (int32, bool) {
	state := t.be.root()
	for _, r := range surface {
		code := t.codeLookup(r)
		if code < 0 {
			return 0, false
		}
		next, ok := t.be.childOf(state, code)
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

func (t *Trie) resolveAll(refs []patternRef) []Pattern {
	if len(refs) == 0 {
		return nil
	}
	out := make([]Pattern, len(refs))
	for i, r := range refs {
		out[i] = t.tables.resolve(r)
	}
	return out
}

// Build constructs Aho-Corasick failure links by a breadth-first walk
// from the root, then augments every node's match groups with the
// patterns reachable along its failure chain (see spec §4.2). If final
// is true, the trie becomes permanently immutable: subsequent Insert
// calls return an *kerrors.InvariantViolation.
func (t *Trie) Build(final bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	root := t.be.root()
	t.be.setFailure(root, root)
	t.be.setMatches(root, t.ownMatchGroups(root))

	type frame struct{ parent, code, state int32 }
	queue := make([]frame, 0, t.be.numStates())
	for code, child := range t.be.childrenOf(root) {
		queue = append(queue, frame{parent: root, code: code, state: child})
	}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		t.depth[f.state] = t.depth[f.parent] + 1
		fail := t.failureFor(f.parent, f.code)
		t.be.setFailure(f.state, fail)
		t.be.setMatches(f.state, t.mergeMatches(f.state, fail))

		for code, child := range t.be.childrenOf(f.state) {
			queue = append(queue, frame{parent: f.state, code: code, state: child})
		}
	}

	t.built = true
	if final {
		t.finalized = true
	}
	t.cache.clear()
	return nil
}

func (t *Trie) failureFor(parent, code int32) int32 {
	root := t.be.root()
	if parent == root {
		return root
	}
	f := t.be.failureOf(parent)
	for {
		if child, ok := t.be.childOf(f, code); ok {
			return child
		}
		if f == root {
			return root
		}
		f = t.be.failureOf(f)
	}
}

func (t *Trie) ownMatchGroups(state int32) []matchGroup {
	own := t.be.ownPatterns(state)
	if len(own) == 0 {
		return nil
	}
	return []matchGroup{{length: t.depth[state], patterns: own}}
}

func (t *Trie) mergeMatches(state, fail int32) []matchGroup {
	base := t.be.matchesOf(fail)
	own := t.be.ownPatterns(state)
	if len(own) == 0 {
		if len(base) == 0 {
			return nil
		}
		out := make([]matchGroup, len(base))
		copy(out, base)
		return out
	}
	out := make([]matchGroup, len(base), len(base)+1)
	copy(out, base)
	out = append(out, matchGroup{length: t.depth[state], patterns: own})
	return out
}

// Match is one emission of SearchAllPatterns: text[Start:Start+Length]
// is a dictionary key and Patterns is its pattern set.
type Match struct {
	Start    int
	Length   int
	Patterns []Pattern
}

// SearchAllPatterns returns, for every position where a non-empty
// suffix of text ending there exactly matches a dictionary key, one
// Match per such match length. Emissions are grouped by end position
// ascending and, within an end position, by length ascending. Build
// must have been called at least once; if it has not, SearchAllPatterns
// behaves as if every node's failure link were the root (i.e. it
// degrades to reporting each node's own patterns only).
func (t *Trie) SearchAllPatterns(text string) []Match {
	if text == "" {
		return nil
	}
	if cached, ok := t.cache.get(text); ok {
		return cached
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	runes := []rune(text)
	state := t.be.root()
	var results []Match
	for j, r := range runes {
		code := t.codeLookup(r)
		state = t.gotoFn(state, code)
		groups := t.be.matchesOf(state)
		if !t.built {
			groups = t.ownMatchGroups(state)
		}
		for _, g := range groups {
			start := j + 1 - g.length
			results = append(results, Match{
				Start:    start,
				Length:   g.length,
				Patterns: t.resolveAll(g.patterns),
			})
		}
	}

	t.cache.put(text, results)
	return results
}

func (t *Trie) gotoFn(state, code int32) int32 {
	root := t.be.root()
	for {
		if code >= 0 {
			if child, ok := t.be.childOf(state, code); ok {
				return child
			}
		}
		if state == root {
			return root
		}
		state = t.be.failureOf(state)
	}
}

// UsingPlainBackend reports whether the trie has fallen back to the
// unbounded plain-trie backend after a double-array capacity failure.
// Exposed for tests and diagnostics only.
func (t *Trie) UsingPlainBackend() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.usingPlain
}
