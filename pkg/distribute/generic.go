package distribute

import "github.com/mlnforge/clausecore/pkg/formula"

// genericDistribute rewrites an NNF construct into conjunctive normal form
// by repeatedly applying A ∧ (B ∨ C) → (A ∧ B) ∨ (A ∧ C) and its mirror
// image. It terminates on every input (each rewrite strictly reduces the
// number of ∧ nodes that sit above a ∨), but the result can be exponential
// in the number of top-level clauses — the baseline the fast path exists to
// avoid.
func genericDistribute(c formula.Construct) formula.Construct {
	switch f := c.(type) {
	case formula.Lit:
		return f
	case formula.And:
		return distributeAnd(genericDistribute(f.Left), genericDistribute(f.Right))
	case formula.Or:
		return distributeOr(genericDistribute(f.Left), genericDistribute(f.Right))
	default:
		panic("distribute: genericDistribute received a non-NNF construct")
	}
}

func distributeAnd(l, r formula.Construct) formula.Construct {
	return formula.And{Left: l, Right: r}
}

// distributeOr combines two already-CNF operands under ∨, pushing either
// operand's ∧ outward if present.
func distributeOr(l, r formula.Construct) formula.Construct {
	if land, ok := l.(formula.And); ok {
		return formula.And{
			Left:  distributeOr(land.Left, r),
			Right: distributeOr(land.Right, r),
		}
	}

	if rand, ok := r.(formula.And); ok {
		return formula.And{
			Left:  distributeOr(l, rand.Left),
			Right: distributeOr(l, rand.Right),
		}
	}

	return formula.Or{Left: l, Right: r}
}
