package kerrors

import (
	"errors"
	"testing"
)

func TestInvariantViolationAs(t *testing.T) {
	err := NewInvariantViolation("trie.Insert", "finalized")
	var iv *InvariantViolation
	if !errors.As(err, &iv) {
		t.Fatal("errors.As failed to match *InvariantViolation")
	}
	if iv.Op != "trie.Insert" || iv.Reason != "finalized" {
		t.Errorf("got Op=%q Reason=%q", iv.Op, iv.Reason)
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestDataCorruptionAs(t *testing.T) {
	err := NewDataCorruption("<embedded>", "bad magic")
	var dc *DataCorruption
	if !errors.As(err, &dc) {
		t.Fatal("errors.As failed to match *DataCorruption")
	}
	if dc.Source != "<embedded>" {
		t.Errorf("got Source=%q", dc.Source)
	}
}

func TestResourceExhaustionAs(t *testing.T) {
	err := NewResourceExhaustion("dict.insertEdge", "base allocation failed")
	var re *ResourceExhaustion
	if !errors.As(err, &re) {
		t.Fatal("errors.As failed to match *ResourceExhaustion")
	}
}

func TestDistinctTypes(t *testing.T) {
	iv := NewInvariantViolation("op", "reason")
	var dc *DataCorruption
	if errors.As(iv, &dc) {
		t.Error("InvariantViolation should not match DataCorruption")
	}
}
