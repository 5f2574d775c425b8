package dict

import "github.com/jake1104/KULIM/postag"

// internTable assigns small integer IDs to strings so a trie node's
// payload can be a short list of (int32, int32) pairs instead of a list
// of string pairs. The same table is written out verbatim into the
// dictionary archive so a reloaded trie's IDs are stable across runs.
type internTable struct {
	byString map[string]int32
	byID     []string
}

func newInternTable() *internTable {
	return &internTable{byString: make(map[string]int32)}
}

// intern returns the ID for s, assigning a new one if s has not been
// seen before.
func (t *internTable) intern(s string) int32 {
	if id, ok := t.byString[s]; ok {
		return id
	}
	id := int32(len(t.byID))
	t.byID = append(t.byID, s)
	t.byString[s] = id
	return id
}

// lookup returns the string for id, or "" and false if id is out of
// range.
func (t *internTable) lookup(id int32) (string, bool) {
	if id < 0 || int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// patternRef is the compact, interned form of a (POS, lemma) record
// stored at a trie node.
type patternRef struct {
	posID   int32
	lemmaID int32
}

// Pattern is the resolved, externally visible form of a dictionary
// entry attached to a trie node.
type Pattern struct {
	POS   postag.Tag
	Lemma string
}

func (t *internTables) resolve(p patternRef) Pattern {
	pos, _ := t.pos.lookup(p.posID)
	lemma, _ := t.lemma.lookup(p.lemmaID)
	return Pattern{POS: postag.Tag(pos), Lemma: lemma}
}

// internTables bundles the two side tables (POS, lemma) a Trie needs.
type internTables struct {
	pos   *internTable
	lemma *internTable
}

func newInternTables() *internTables {
	return &internTables{pos: newInternTable(), lemma: newInternTable()}
}

func (t *internTables) ref(pos postag.Tag, lemma string) patternRef {
	return patternRef{posID: t.pos.intern(string(pos)), lemmaID: t.lemma.intern(lemma)}
}
