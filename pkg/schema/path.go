package schema

import "github.com/mlnforge/clausecore/pkg/formula"

// HPathElement is one step of a hypergraph path: a ground atom's
// identifier in the evidence database together with its predicate
// signature.
type HPathElement struct {
	AtomID    AtomID
	Signature formula.Signature
}

// HPath is an ordered, non-empty sequence of ground atoms discovered by
// the hypergraph path search (spec.md §3). Orientation is
// operation-dependent: the CNF/Horn builder treats the last element as
// the head, the definite-clause builder walks the path in reverse making
// the (post-reversal) final element the head (spec.md §4.5).
type HPath []HPathElement
