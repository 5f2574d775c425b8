package dict

import "github.com/jake1104/KULIM/kerrors"

// doubleArrayBackend is the preferred trie storage: one base array and
// one check array, both indexed by state. base[s] + code yields the
// next state iff check[next] == s. Everything else (patterns, failure
// links, depth-grouped matches, and a children adjacency index through
// which edges are looked up, enumerated and relocated) rides
// alongside those two arrays, parallel-indexed by state.
//
// maxBase bounds how far insertEdge will search for a free offset
// before giving up; a build that blows this budget returns
// *kerrors.ResourceExhaustion and the owning Trie falls back to
// plainTrieBackend automatically.
type doubleArrayBackend struct {
	base     []int32
	check    []int32
	children []map[int32]int32
	patterns [][]patternRef
	failure  []int32
	matches  [][]matchGroup

	maxBase int32
}

const (
	unsetBase   int32 = -1
	unsetCheck  int32 = -1
	defaultBase int32 = 1
)

func newDoubleArrayBackend(maxBase int32) *doubleArrayBackend {
	d := &doubleArrayBackend{maxBase: maxBase}
	d.growTo(0)
	d.check[0] = unsetCheck // root has no parent
	return d
}

func (d *doubleArrayBackend) growTo(idx int32) {
	for int32(len(d.base)) <= idx {
		d.base = append(d.base, unsetBase)
		d.check = append(d.check, unsetCheck)
		d.children = append(d.children, nil)
		d.patterns = append(d.patterns, nil)
		d.failure = append(d.failure, 0)
		d.matches = append(d.matches, nil)
	}
}

func (d *doubleArrayBackend) root() int32 { return 0 }

func (d *doubleArrayBackend) numStates() int32 { return int32(len(d.base)) }

func (d *doubleArrayBackend) parentOf(state int32) int32 {
	if state == d.root() {
		return -1
	}
	return d.check[state]
}

func (d *doubleArrayBackend) childOf(parent, code int32) (int32, bool) {
	m := d.children[parent]
	if m == nil {
		return 0, false
	}
	c, ok := m[code]
	return c, ok
}

func (d *doubleArrayBackend) childrenOf(parent int32) map[int32]int32 {
	return d.children[parent]
}

// findFreeBase searches for the smallest base offset b >= defaultBase
// such that b+code is unallocated (check == unsetCheck) for every code
// in codes simultaneously.
func (d *doubleArrayBackend) findFreeBase(codes []int32) (int32, error) {
	for b := defaultBase; b <= d.maxBase; b++ {
		ok := true
		for _, c := range codes {
			idx := b + c
			if idx < int32(len(d.check)) && d.check[idx] != unsetCheck {
				ok = false
				break
			}
		}
		if ok {
			return b, nil
		}
	}
	return 0, kerrors.NewResourceExhaustion("doubleArrayBackend.findFreeBase",
		"no free base offset within capacity")
}

// moveNode relocates the structural content of state oldIdx to newIdx,
// re-parenting any of oldIdx's own children to point at newIdx.
func (d *doubleArrayBackend) moveNode(oldIdx, newIdx int32) {
	d.growTo(newIdx)
	d.base[newIdx] = d.base[oldIdx]
	d.check[newIdx] = d.check[oldIdx]
	d.children[newIdx] = d.children[oldIdx]
	d.patterns[newIdx] = d.patterns[oldIdx]
	for _, gc := range d.children[newIdx] {
		d.check[gc] = newIdx
	}
	d.base[oldIdx] = unsetBase
	d.check[oldIdx] = unsetCheck
	d.children[oldIdx] = nil
	d.patterns[oldIdx] = nil
}

// relocate gives parent a fresh base offset that accommodates both its
// existing children and newCode, moving every existing child to its
// new home.
func (d *doubleArrayBackend) relocate(parent, newCode int32) error {
	existing := d.children[parent]
	codes := make([]int32, 0, len(existing)+1)
	for c := range existing {
		codes = append(codes, c)
	}
	codes = append(codes, newCode)

	newBase, err := d.findFreeBase(codes)
	if err != nil {
		return err
	}

	oldBase := d.base[parent]
	newChildren := make(map[int32]int32, len(existing))
	for c, oldChild := range existing {
		newChildIdx := newBase + c
		d.growTo(newChildIdx)
		d.moveNode(oldChild, newChildIdx)
		newChildren[c] = newChildIdx
	}
	d.base[parent] = newBase
	d.children[parent] = newChildren
	_ = oldBase
	return nil
}

func (d *doubleArrayBackend) insertEdge(parent, code int32) (int32, error) {
	if child, ok := d.childOf(parent, code); ok {
		return child, nil
	}

	if d.base[parent] == unsetBase {
		b, err := d.findFreeBase([]int32{code})
		if err != nil {
			return 0, err
		}
		d.base[parent] = b
	}

	child := d.base[parent] + code
	d.growTo(child)

	if d.check[child] == unsetCheck {
		d.check[child] = parent
		if d.children[parent] == nil {
			d.children[parent] = make(map[int32]int32)
		}
		d.children[parent][code] = child
		return child, nil
	}

	if err := d.relocate(parent, code); err != nil {
		return 0, err
	}
	child = d.base[parent] + code
	d.growTo(child)
	d.check[child] = parent
	d.children[parent][code] = child
	return child, nil
}

func (d *doubleArrayBackend) addPattern(state int32, p patternRef) {
	d.patterns[state] = dedupAppend(d.patterns[state], p)
}

func (d *doubleArrayBackend) ownPatterns(state int32) []patternRef {
	return d.patterns[state]
}

func (d *doubleArrayBackend) setFailure(state, fail int32) { d.failure[state] = fail }
func (d *doubleArrayBackend) failureOf(state int32) int32  { return d.failure[state] }

func (d *doubleArrayBackend) setMatches(state int32, groups []matchGroup) {
	d.matches[state] = groups
}
func (d *doubleArrayBackend) matchesOf(state int32) []matchGroup { return d.matches[state] }
