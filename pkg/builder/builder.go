// Package builder implements the Clause/Definite Builder (spec.md §4.6):
// assembling Horn, conjunction, or definite clauses from variabilized
// hypergraph paths, de-duplicating against both the result accumulated so
// far and a caller-supplied preexisting set.
package builder

import (
	"github.com/mlnforge/clausecore/pkg/clause"
	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/mlnforge/clausecore/pkg/variabilize"
)

const unitWeight = formula.Weight(1.0)

// FunctionIntroducer is the external function-introduction formatter
// collaborator (spec.md §6): it replaces auxiliary predicates in a
// freshly-built definite clause set with functional terms. DefiniteClauses
// calls it exactly once, after every path has been processed.
type FunctionIntroducer interface {
	IntroduceFunctions([]formula.WeightedDefiniteClause) ([]formula.WeightedDefiniteClause, error)
}

// Clauses assembles Horn and/or conjunction clauses from paths, per
// spec.md §4.6. kind selects which form(s) to emit per path. A candidate
// is only appended to the result if no alpha-equivalent clause already
// exists in preexisting or earlier in the result; preexisting may be nil.
func Clauses(
	paths []schema.HPath,
	sch schema.PredicateSchema,
	modes schema.ModeDeclarations,
	ev schema.Evidence,
	kind clause.Kind,
	preexisting *clause.Set,
	opts Options,
) ([]clause.Clause, error) {
	if preexisting == nil {
		preexisting = clause.NewSet(0)
	}

	seen := clause.NewSet(uint(len(paths)))

	var out []clause.Clause

	for _, path := range paths {
		v, err := variabilize.Variabilize(path, sch, modes, ev, variabilize.CNFOrientation)
		if err != nil {
			return nil, err
		}

		if opts.RequireDistinctHeadTerms && !allTermsDistinct(v.PositiveHead.Atom.Terms) {
			return nil, &NonFluentHeadError{Head: v.PositiveHead.Atom}
		}

		if kind == clause.Conjunction || kind == clause.Both {
			c := clause.NewClause(unitWeight, append(cloneLiterals(v.BodyLiterals), v.PositiveHead)...)
			out = appendIfNovel(out, seen, preexisting, c)
		}

		if kind == clause.Horn || kind == clause.Both {
			c := clause.NewClause(unitWeight, append(cloneLiterals(v.BodyLiterals), v.NegativeHead)...)
			out = appendIfNovel(out, seen, preexisting, c)
		}
	}

	return out, nil
}

// DefiniteClauses builds one WeightedDefiniteClause per path (weight 1.0,
// head <- conjunction of body atoms), then runs the supplied function
// introducer exactly once over the whole batch, and finally de-duplicates
// against preexisting by literal-set (alpha-equivalence) equality.
func DefiniteClauses(
	paths []schema.HPath,
	sch schema.PredicateSchema,
	modes schema.ModeDeclarations,
	ev schema.Evidence,
	preexisting *clause.Set,
	introduce FunctionIntroducer,
	opts Options,
) ([]formula.WeightedDefiniteClause, error) {
	if preexisting == nil {
		preexisting = clause.NewSet(0)
	}

	built := make([]formula.WeightedDefiniteClause, 0, len(paths))

	for _, path := range paths {
		v, err := variabilize.Variabilize(path, sch, modes, ev, variabilize.DefiniteOrientation)
		if err != nil {
			return nil, err
		}

		if opts.RequireDistinctHeadTerms && !allTermsDistinct(v.PositiveHead.Atom.Terms) {
			return nil, &NonFluentHeadError{Head: v.PositiveHead.Atom}
		}

		bodyAtoms := make([]formula.Construct, len(v.BodyLiterals))
		for i, l := range v.BodyLiterals {
			bodyAtoms[i] = formula.Atomic{Atom: l.Atom}
		}

		dc := formula.NewDefiniteClause(v.PositiveHead.Atom, formula.And2(bodyAtoms[0], bodyAtoms[1:]...))
		built = append(built, formula.NewWeightedDefiniteClause(unitWeight, dc))
	}

	if introduce != nil {
		var err error

		built, err = introduce.IntroduceFunctions(built)
		if err != nil {
			return nil, err
		}
	}

	seen := clause.NewSet(uint(len(built)))

	out := make([]formula.WeightedDefiniteClause, 0, len(built))

	for _, wdc := range built {
		c := definiteAsClause(wdc)
		if preexisting.Contains(c) || seen.Contains(c) {
			continue
		}

		seen.Add(c)
		out = append(out, wdc)
	}

	return out, nil
}

// definiteAsClause renders a definite clause's literal set (body atoms
// positive, head positive) as a clause.Clause purely so this package can
// reuse clause.Set's alpha-equivalence de-duplication for the
// literal-set-equality check spec.md §4.6 calls for.
func definiteAsClause(wdc formula.WeightedDefiniteClause) clause.Clause {
	var literals []formula.Literal

	collectConjunctionLiterals(wdc.Clause.Body, &literals)
	literals = append(literals, formula.Positive(wdc.Clause.Head))

	return clause.NewClause(wdc.Weight, literals...)
}

func collectConjunctionLiterals(c formula.Construct, out *[]formula.Literal) {
	switch f := c.(type) {
	case formula.And:
		collectConjunctionLiterals(f.Left, out)
		collectConjunctionLiterals(f.Right, out)
	case formula.Atomic:
		*out = append(*out, formula.Positive(f.Atom))
	case formula.Lit:
		*out = append(*out, f.Literal)
	default:
		panic("builder: definite clause body contains a non-conjunction construct")
	}
}

func cloneLiterals(ls []formula.Literal) []formula.Literal {
	out := make([]formula.Literal, len(ls))
	copy(out, ls)

	return out
}

func appendIfNovel(out []clause.Clause, seen, preexisting *clause.Set, c clause.Clause) []clause.Clause {
	if preexisting.Contains(c) || seen.Contains(c) {
		return out
	}

	seen.Add(c)

	return append(out, c)
}
