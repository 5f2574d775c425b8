// Package constraint implements the lattice decoder's transition
// validator: a closed set of POS adjacencies that are rejected outright
// rather than merely penalized (spec §4.6).
package constraint

import "github.com/jake1104/KULIM/postag"

type pair struct{ prev, curr postag.Tag }

// rejected is the closed set of adjacencies the decoder must prune.
var rejected = map[pair]bool{
	{postag.JKS, postag.JKS}: true,
	{postag.JKS, postag.JKC}: true,
	{postag.JKC, postag.JKS}: true,
	{postag.EF, postag.JKS}:  true,
	{postag.EF, postag.JKO}:  true,
	{postag.EF, postag.JKB}:  true,
	{postag.EF, postag.JKG}:  true,
	{postag.SF, postag.JKS}:  true,
	{postag.SF, postag.JKO}:  true,
	{postag.SF, postag.JKB}:  true,
	{postag.SF, postag.JKG}:  true,
}

// Validator consults the rejected-adjacency set. The zero value is
// usable.
type Validator struct{}

// New returns a ready-to-use Validator.
func New() *Validator { return &Validator{} }

// Allowed reports whether curr may legally follow prev. Atomic tags
// are compared directly; a composite tag is reduced to its trailing
// component via postag.Last before the lookup, matching the decoder's
// use of trailing_pos.
func (v *Validator) Allowed(prev, curr postag.Tag) bool {
	return !rejected[pair{prev: postag.Last(prev), curr: postag.Last(curr)}]
}
