package clause

import "github.com/mlnforge/clausecore/pkg/util"

// Set is an alpha-equivalence-deduplicated collection of clauses, backed
// by the bucketed HashSet in pkg/util so that hash collisions between
// non-equivalent clauses never silently drop one of them.
type Set struct {
	inner *util.HashSet[Clause]
}

// NewSet creates an empty clause set with the given initial capacity hint.
func NewSet(capacity uint) *Set {
	return &Set{inner: util.NewHashSet[Clause](capacity)}
}

// Add inserts a clause, returning true if an alpha-equivalent clause was
// already present.
func (s *Set) Add(c Clause) bool {
	return s.inner.Insert(c)
}

// AddAll inserts every clause in cs.
func (s *Set) AddAll(cs []Clause) {
	for _, c := range cs {
		s.Add(c)
	}
}

// Contains reports whether an alpha-equivalent clause is already present.
func (s *Set) Contains(c Clause) bool {
	return s.inner.Contains(c)
}

// Size returns the number of clauses in the set, counted modulo
// alpha-equivalence.
func (s *Set) Size() uint {
	return s.inner.Size()
}

// Clauses returns the set's contents as a slice, in unspecified order —
// matching spec.md §4.4's "the order of output clauses is unspecified, but
// the set of output clauses is deterministic for a given input set."
func (s *Set) Clauses() []Clause {
	return s.inner.ToSlice()
}

// String renders the set for diagnostics.
func (s *Set) String() string {
	return s.inner.String()
}
