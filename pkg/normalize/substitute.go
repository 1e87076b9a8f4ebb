package normalize

import "github.com/mlnforge/clausecore/pkg/formula"

// substituteVar replaces every free occurrence of target within c by the
// term repl, stopping at (not descending past) a nested quantifier that
// rebinds the identical variable — capture-avoiding in the usual sense.
// Once Normalizer's standardize pass has run, no two quantifiers in the
// same formula share a bound variable, so this shadowing case never
// actually triggers downstream, but existential elimination calls this
// helper directly (replacing a variable with a ground Constant) and must
// still be correct on its own.
func substituteVar(c formula.Construct, target formula.Variable, repl formula.Term) formula.Construct {
	switch f := c.(type) {
	case formula.Atomic:
		return formula.Atomic{Atom: substituteAtom(f.Atom, target, repl)}
	case formula.Lit:
		return formula.Lit{Literal: substituteLiteral(f.Literal, target, repl)}
	case formula.Not:
		return formula.Not{Sub: substituteVar(f.Sub, target, repl)}
	case formula.And:
		return formula.And{Left: substituteVar(f.Left, target, repl), Right: substituteVar(f.Right, target, repl)}
	case formula.Or:
		return formula.Or{Left: substituteVar(f.Left, target, repl), Right: substituteVar(f.Right, target, repl)}
	case formula.Implies:
		return formula.Implies{Left: substituteVar(f.Left, target, repl), Right: substituteVar(f.Right, target, repl)}
	case formula.Iff:
		return formula.Iff{Left: substituteVar(f.Left, target, repl), Right: substituteVar(f.Right, target, repl)}
	case formula.Exists:
		if f.Var.Equals(target) {
			return f
		}

		return formula.Exists{Var: f.Var, Sub: substituteVar(f.Sub, target, repl)}
	case formula.ForAll:
		if f.Var.Equals(target) {
			return f
		}

		return formula.ForAll{Var: f.Var, Sub: substituteVar(f.Sub, target, repl)}
	default:
		unreachableConstruct(f)
		return nil
	}
}

func substituteAtom(a formula.AtomicFormula, target formula.Variable, repl formula.Term) formula.AtomicFormula {
	return a.Substitute(func(t formula.Term) formula.Term {
		if v, ok := t.(formula.Variable); ok && v.Equals(target) {
			return repl
		}

		return t
	})
}

func substituteLiteral(l formula.Literal, target formula.Variable, repl formula.Term) formula.Literal {
	return formula.Literal{Atom: substituteAtom(l.Atom, target, repl), Negative: l.Negative}
}
