package dict

import "testing"

func TestInternTableInternLookup(t *testing.T) {
	tbl := newInternTable()
	a := tbl.intern("가다")
	b := tbl.intern("나다")
	c := tbl.intern("가다") // repeat
	if a != c {
		t.Errorf("repeated intern should return same id: %d vs %d", a, c)
	}
	if a == b {
		t.Error("distinct strings should get distinct ids")
	}
	s, ok := tbl.lookup(a)
	if !ok || s != "가다" {
		t.Errorf("lookup(%d) = %q, %v, want 가다, true", a, s, ok)
	}
	if _, ok := tbl.lookup(99); ok {
		t.Error("lookup of out-of-range id should fail")
	}
	if _, ok := tbl.lookup(-1); ok {
		t.Error("lookup of negative id should fail")
	}
}

func TestInternTablesRefResolve(t *testing.T) {
	tables := newInternTables()
	ref := tables.ref("VV", "가다")
	p := tables.resolve(ref)
	if string(p.POS) != "VV" || p.Lemma != "가다" {
		t.Errorf("resolve(ref(VV, 가다)) = %+v", p)
	}
}
