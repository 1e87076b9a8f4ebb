// Package schema holds the read-only collaborator data the core consumes
// when building clauses from hypergraph paths: the predicate schema, mode
// declarations, the constants universe, and the evidence database
// contract (spec.md §3, §6). All of it is treated as shared, read-only
// for the duration of a call (spec.md §5's Shared-resource policy).
package schema

import (
	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/util"
)

// PredicateSchema maps a predicate signature to the ordered list of
// domain names, one per argument position.
type PredicateSchema map[formula.Signature][]string

// Domains returns the ordered domain names for sig, and whether sig is
// present at all.
func (s PredicateSchema) Domains(sig formula.Signature) ([]string, bool) {
	d, ok := s[sig]
	return d, ok
}

// ConstantsSet is a finite ordered set of symbols belonging to one
// domain.
type ConstantsSet []string

// ConstantsMap maps a domain name to its constants, as supplied to the
// Normalizer for existential elimination (spec.md §4.1) and to the
// Variabilizer indirectly via Evidence decoding.
type ConstantsMap map[string]ConstantsSet

// Lookup returns the constants declared for domain, as an Option rather
// than a (value, bool) pair: the Normalizer's existential elimination
// pass (spec.md §4.1) only ever needs to ask "is this domain present at
// all", and Option keeps that absent-vs-present check at the call site
// instead of an easily-miscopied second return value.
func (m ConstantsMap) Lookup(domain string) util.Option[ConstantsSet] {
	if consts, ok := m[domain]; ok {
		return util.Some(consts)
	}

	return util.None[ConstantsSet]()
}
