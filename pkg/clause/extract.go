package clause

import (
	"fmt"

	"github.com/mlnforge/clausecore/pkg/formula"
)

// Extract splits a CNF construct (a top-level ∧ of ∨ of Lit, as produced by
// pkg/distribute) into its individual clauses, each carrying weight,
// dropping any clause that is a tautology (spec.md §4.3).
func Extract(weight formula.Weight, cnf formula.Construct) []Clause {
	var disjunctions []formula.Construct

	flattenAnd(cnf, &disjunctions)

	clauses := make([]Clause, 0, len(disjunctions))

	for _, d := range disjunctions {
		var lits []formula.Literal

		flattenOr(d, &lits)

		c := Clause{Literals: lits, Weight: weight}
		if c.IsTautology() {
			continue
		}

		clauses = append(clauses, c)
	}

	return clauses
}

func flattenAnd(c formula.Construct, out *[]formula.Construct) {
	if a, ok := c.(formula.And); ok {
		flattenAnd(a.Left, out)
		flattenAnd(a.Right, out)

		return
	}

	*out = append(*out, c)
}

func flattenOr(c formula.Construct, out *[]formula.Literal) {
	switch f := c.(type) {
	case formula.Or:
		flattenOr(f.Left, out)
		flattenOr(f.Right, out)
	case formula.Lit:
		*out = append(*out, f.Literal)
	default:
		panic(fmt.Sprintf("clause: Extract reached a non-CNF construct %T; distribute did not run to completion", c))
	}
}
