// Package clause implements the Clause Extractor (spec.md §4.3) and the
// alpha-equivalence-deduplicated clause Set (spec.md §4.7) that the CNF
// Pipeline and the Clause/Definite Builder both produce into.
package clause

import (
	"hash/fnv"

	"github.com/mlnforge/clausecore/pkg/formula"
)

// Clause is a disjunction of literals carrying a weight, the unit this
// package's consumers ultimately produce. Two clauses that are
// alpha-equivalent (spec.md §4.7) Hash and Equal the same regardless of
// literal order or the specific variable names used.
type Clause struct {
	Literals []formula.Literal
	Weight   formula.Weight
}

// NewClause constructs a clause from its literals and weight.
func NewClause(weight formula.Weight, literals ...formula.Literal) Clause {
	return Clause{Literals: literals, Weight: weight}
}

// String renders the clause as its literals joined by " or ".
func (c Clause) String() string {
	s := ""

	for i, l := range c.Literals {
		if i > 0 {
			s += " or "
		}

		s += l.String()
	}

	return s
}

// canonicalKey returns the alpha-equivalence canonical string for this
// clause's literal set.
func (c Clause) canonicalKey() string {
	return formula.Canonicalize(c.Literals)
}

// Equals implements util.Hasher: two clauses are equal when they are
// alpha-equivalent, regardless of weight (a clause's identity for
// deduplication purposes is its logical content, not its weight —
// spec.md §4.7's "de-duplicate against ... via alpha-equivalence").
func (c Clause) Equals(o Clause) bool {
	return c.canonicalKey() == o.canonicalKey()
}

// Hash implements util.Hasher using FNV-1a over the canonical key, so that
// alpha-equivalent clauses land in the same HashSet bucket.
func (c Clause) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.canonicalKey()))

	return h.Sum64()
}

// IsTautology reports whether this clause contains a literal and its
// complement, making it always true and therefore droppable (spec.md
// §4.3's "drops tautologies").
func (c Clause) IsTautology() bool {
	for i := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			if c.Literals[i].IsComplementOf(c.Literals[j]) {
				return true
			}
		}
	}

	return false
}
