// Package kerrors defines the error taxonomy shared by every KULIM
// subsystem: the dictionary trie, the lattice decoder, and the archive
// loader all report failures through these three types so callers can
// branch with errors.As instead of parsing messages.
package kerrors

import "fmt"

// InvariantViolation marks a programmer error: a call that violates a
// documented precondition of the API it was made against (inserting into
// a finalized trie, decomposing a non-Hangul code point with Compose,
// splitting a composite tag with mismatched arity that cannot be
// recovered). Callers should treat it as a bug, not a runtime condition
// to route around.
type InvariantViolation struct {
	Op     string // the operation that was misused, e.g. "trie.Insert"
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Op, e.Reason)
}

// DataCorruption marks a malformed persisted artifact: a dictionary
// archive with a bad magic number, a declared offset outside the file,
// or a truncated section.
type DataCorruption struct {
	Source string // e.g. archive path or "<embedded>"
	Reason string
}

func (e *DataCorruption) Error() string {
	return fmt.Sprintf("data corruption in %s: %s", e.Source, e.Reason)
}

// ResourceExhaustion marks an internal allocation failure that the
// caller does not need to see: the double-array trie backend ran out of
// base-offset headroom after expansion retries. It is always caught at
// the trie's own build boundary and converted into a fallback to the
// plain-trie backend; it is exported only so tests can assert the
// fallback path was exercised.
type ResourceExhaustion struct {
	Op     string
	Reason string
}

func (e *ResourceExhaustion) Error() string {
	return fmt.Sprintf("resource exhaustion in %s: %s", e.Op, e.Reason)
}

// NewInvariantViolation constructs an *InvariantViolation.
func NewInvariantViolation(op, reason string) error {
	return &InvariantViolation{Op: op, Reason: reason}
}

// NewDataCorruption constructs a *DataCorruption.
func NewDataCorruption(source, reason string) error {
	return &DataCorruption{Source: source, Reason: reason}
}

// NewResourceExhaustion constructs a *ResourceExhaustion.
func NewResourceExhaustion(op, reason string) error {
	return &ResourceExhaustion{Op: op, Reason: reason}
}
