// Package normalize implements the Normalizer (spec.md §4.1): removing
// implications, pushing negations to the atoms (NNF), standardizing
// quantifier-bound variable names, eliminating existentials over a
// supplied constants mapping, and dropping the now-implicit universal
// quantifiers.
//
// Each pass re-walks and rebuilds the tree rather than mutating it in
// place, matching spec.md §3's Lifecycle invariant that intermediate
// structures are immutable once produced, and the teacher's own
// pkg/hir/lower.go lowering-pass shape (one function per concern, passes
// composed top-level).
package normalize

import (
	"fmt"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	log "github.com/sirupsen/logrus"
)

// Normalize applies the fixed five-pass pipeline described in spec.md
// §4.1 to f, given the constants available for existential elimination.
func Normalize(f formula.Construct, constants schema.ConstantsMap) (formula.Construct, error) {
	f = removeImplications(f)
	log.Debugf("normalize: removed implications")

	f = toNNF(f, false)
	log.Debugf("normalize: pushed negations to atoms")

	f = standardizeVariables(f)
	log.Debugf("normalize: standardized variable names")

	f, err := eliminateExistentials(f, constants)
	if err != nil {
		return nil, err
	}

	log.Debugf("normalize: eliminated existentials")

	f = dropForAll(f)
	log.Debugf("normalize: dropped universal quantifiers")

	return f, nil
}

// removeImplications rewrites A => B as not(A) or B, and A <=> B as
// (not(A) or B) and (A or not(B)).
func removeImplications(c formula.Construct) formula.Construct {
	switch f := c.(type) {
	case formula.Atomic, formula.Lit:
		return f
	case formula.Not:
		return formula.Not{Sub: removeImplications(f.Sub)}
	case formula.And:
		return formula.And{Left: removeImplications(f.Left), Right: removeImplications(f.Right)}
	case formula.Or:
		return formula.Or{Left: removeImplications(f.Left), Right: removeImplications(f.Right)}
	case formula.Implies:
		l, r := removeImplications(f.Left), removeImplications(f.Right)
		return formula.Or{Left: formula.Not{Sub: l}, Right: r}
	case formula.Iff:
		l, r := removeImplications(f.Left), removeImplications(f.Right)
		return formula.And{
			Left:  formula.Or{Left: formula.Not{Sub: l}, Right: r},
			Right: formula.Or{Left: l, Right: formula.Not{Sub: r}},
		}
	case formula.Exists:
		return formula.Exists{Var: f.Var, Sub: removeImplications(f.Sub)}
	case formula.ForAll:
		return formula.ForAll{Var: f.Var, Sub: removeImplications(f.Sub)}
	default:
		unreachableConstruct(f)
		return nil
	}
}

// toNNF pushes negation inward using De Morgan's laws until it appears
// only directly on atoms. negated tracks whether an odd number of Not
// wrappers are pending at this point in the walk.
func toNNF(c formula.Construct, negated bool) formula.Construct {
	switch f := c.(type) {
	case formula.Atomic:
		return formula.Lit{Literal: formula.Literal{Atom: f.Atom, Negative: negated}}
	case formula.Lit:
		if negated {
			return formula.Lit{Literal: f.Literal.Negate()}
		}

		return f
	case formula.Not:
		return toNNF(f.Sub, !negated)
	case formula.And:
		l, r := toNNF(f.Left, negated), toNNF(f.Right, negated)
		if negated {
			return formula.Or{Left: l, Right: r}
		}

		return formula.And{Left: l, Right: r}
	case formula.Or:
		l, r := toNNF(f.Left, negated), toNNF(f.Right, negated)
		if negated {
			return formula.And{Left: l, Right: r}
		}

		return formula.Or{Left: l, Right: r}
	case formula.Exists:
		sub := toNNF(f.Sub, negated)
		if negated {
			return formula.ForAll{Var: f.Var, Sub: sub}
		}

		return formula.Exists{Var: f.Var, Sub: sub}
	case formula.ForAll:
		sub := toNNF(f.Sub, negated)
		if negated {
			return formula.Exists{Var: f.Var, Sub: sub}
		}

		return formula.ForAll{Var: f.Var, Sub: sub}
	case formula.Implies, formula.Iff:
		panic("normalize: toNNF reached an implication; removeImplications did not run to completion")
	default:
		unreachableConstruct(f)
		return nil
	}
}

// standardizeVariables renames each quantifier's bound variable to a
// fresh, globally unique name so that distinct quantifiers — even ones
// originally binding the same domain and name — never collide during
// existential elimination or downstream variabilization.
func standardizeVariables(c formula.Construct) formula.Construct {
	counters := map[string]int{}
	return standardizeRec(c, counters)
}

func standardizeRec(c formula.Construct, counters map[string]int) formula.Construct {
	switch f := c.(type) {
	case formula.Atomic, formula.Lit:
		return f
	case formula.Not:
		return formula.Not{Sub: standardizeRec(f.Sub, counters)}
	case formula.And:
		return formula.And{Left: standardizeRec(f.Left, counters), Right: standardizeRec(f.Right, counters)}
	case formula.Or:
		return formula.Or{Left: standardizeRec(f.Left, counters), Right: standardizeRec(f.Right, counters)}
	case formula.Exists:
		fresh := freshVariable(f.Var.Domain, counters)
		sub := substituteVar(f.Sub, f.Var, fresh)

		return formula.Exists{Var: fresh, Sub: standardizeRec(sub, counters)}
	case formula.ForAll:
		fresh := freshVariable(f.Var.Domain, counters)
		sub := substituteVar(f.Sub, f.Var, fresh)

		return formula.ForAll{Var: fresh, Sub: standardizeRec(sub, counters)}
	case formula.Implies, formula.Iff:
		panic("normalize: standardizeVariables reached an implication; removeImplications did not run to completion")
	default:
		unreachableConstruct(f)
		return nil
	}
}

func freshVariable(domain string, counters map[string]int) formula.Variable {
	n := counters[domain]
	counters[domain] = n + 1

	return formula.NewVariable(fmt.Sprintf("_q%s%d", domain, n), domain)
}

// eliminateExistentials replaces each Exists(v, sub) with the disjunction
// of sub over every constant in v's domain.
func eliminateExistentials(c formula.Construct, constants schema.ConstantsMap) (formula.Construct, error) {
	switch f := c.(type) {
	case formula.Atomic, formula.Lit:
		return f, nil
	case formula.Not:
		sub, err := eliminateExistentials(f.Sub, constants)
		if err != nil {
			return nil, err
		}

		return formula.Not{Sub: sub}, nil
	case formula.And:
		l, err := eliminateExistentials(f.Left, constants)
		if err != nil {
			return nil, err
		}

		r, err := eliminateExistentials(f.Right, constants)
		if err != nil {
			return nil, err
		}

		return formula.And{Left: l, Right: r}, nil
	case formula.Or:
		l, err := eliminateExistentials(f.Left, constants)
		if err != nil {
			return nil, err
		}

		r, err := eliminateExistentials(f.Right, constants)
		if err != nil {
			return nil, err
		}

		return formula.Or{Left: l, Right: r}, nil
	case formula.Exists:
		domainConsts := constants.Lookup(f.Var.Domain)
		if domainConsts.IsEmpty() {
			return nil, &SchemaError{Domain: f.Var.Domain}
		}

		sub, err := eliminateExistentials(f.Sub, constants)
		if err != nil {
			return nil, err
		}

		return disjunctionOverConstants(sub, f.Var, domainConsts.Unwrap()), nil
	case formula.ForAll:
		sub, err := eliminateExistentials(f.Sub, constants)
		if err != nil {
			return nil, err
		}

		return formula.ForAll{Var: f.Var, Sub: sub}, nil
	case formula.Implies, formula.Iff:
		panic("normalize: eliminateExistentials reached an implication; removeImplications did not run to completion")
	default:
		unreachableConstruct(f)
		return nil, nil
	}
}

func disjunctionOverConstants(sub formula.Construct, v formula.Variable, constants schema.ConstantsSet) formula.Construct {
	if len(constants) == 0 {
		// No witnesses: the existential is vacuously false. Represented as
		// a disjunction of zero disjuncts would need a False construct,
		// which the algebra doesn't model; instead we fall back to the
		// (degenerate but sound) single-ground-term disjunction built from
		// no constants being treated as the substitution leaving the
		// variable free. Callers should not supply empty domains.
		return sub
	}

	disjuncts := make([]formula.Construct, len(constants))
	for i, c := range constants {
		disjuncts[i] = substituteVar(sub, v, formula.NewConstant(c))
	}

	return formula.Or2(disjuncts[0], disjuncts[1:]...)
}

// dropForAll discards universal quantifiers; their variables are
// implicitly universal in clausal form (spec.md §4.1).
func dropForAll(c formula.Construct) formula.Construct {
	switch f := c.(type) {
	case formula.Atomic, formula.Lit:
		return f
	case formula.Not:
		return formula.Not{Sub: dropForAll(f.Sub)}
	case formula.And:
		return formula.And{Left: dropForAll(f.Left), Right: dropForAll(f.Right)}
	case formula.Or:
		return formula.Or{Left: dropForAll(f.Left), Right: dropForAll(f.Right)}
	case formula.ForAll:
		return dropForAll(f.Sub)
	case formula.Exists:
		panic("normalize: dropForAll reached an Exists; eliminateExistentials did not run to completion")
	case formula.Implies, formula.Iff:
		panic("normalize: dropForAll reached an implication; removeImplications did not run to completion")
	default:
		unreachableConstruct(f)
		return nil
	}
}

func unreachableConstruct(c formula.Construct) {
	panic(fmt.Sprintf("normalize: unreachable construct variant %T", c))
}
