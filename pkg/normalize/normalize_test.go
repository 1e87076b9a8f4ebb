package normalize_test

import (
	"testing"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/normalize"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atom(name string) formula.Construct {
	return formula.Atomic{Atom: formula.NewAtomicFormula(name)}
}

func TestRemoveImplicationS4(t *testing.T) {
	// S4: head(x) <- p(x), q(x) rewritten to implication body => head,
	// then normalized to not(p(x)) or not(q(x)) or head(x).
	x := formula.NewVariable("x", "obj")
	p := formula.Atomic{Atom: formula.NewAtomicFormula("p", x)}
	q := formula.Atomic{Atom: formula.NewAtomicFormula("q", x)}
	head := formula.Atomic{Atom: formula.NewAtomicFormula("head", x)}

	body := formula.And{Left: p, Right: q}
	impl := formula.Implies{Left: body, Right: head}

	out, err := normalize.Normalize(impl, schema.ConstantsMap{})
	require.NoError(t, err)

	lits := flattenOr(out)
	assert.Len(t, lits, 3)

	var negP, negQ, posHead bool

	for _, l := range lits {
		switch {
		case l.Atom.Predicate == "p" && l.Negative:
			negP = true
		case l.Atom.Predicate == "q" && l.Negative:
			negQ = true
		case l.Atom.Predicate == "head" && !l.Negative:
			posHead = true
		}
	}

	assert.True(t, negP)
	assert.True(t, negQ)
	assert.True(t, posHead)
}

func TestExistentialEliminationMissingDomain(t *testing.T) {
	v := formula.NewVariable("x", "obj")
	f := formula.Exists{Var: v, Sub: formula.Atomic{Atom: formula.NewAtomicFormula("p", v)}}

	_, err := normalize.Normalize(f, schema.ConstantsMap{})
	require.Error(t, err)

	var schemaErr *normalize.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "obj", schemaErr.Domain)
}

func TestExistentialEliminationExpandsOverConstants(t *testing.T) {
	v := formula.NewVariable("x", "obj")
	f := formula.Exists{Var: v, Sub: formula.Atomic{Atom: formula.NewAtomicFormula("p", v)}}
	constants := schema.ConstantsMap{"obj": {"a", "b"}}

	out, err := normalize.Normalize(f, constants)
	require.NoError(t, err)

	lits := flattenOr(out)
	assert.Len(t, lits, 2)

	seen := map[string]bool{}
	for _, l := range lits {
		seen[l.Atom.Terms[0].String()] = true
	}

	assert.True(t, seen["a"])
	assert.True(t, seen["b"])
}

func TestForAllDropped(t *testing.T) {
	v := formula.NewVariable("x", "obj")
	f := formula.ForAll{Var: v, Sub: formula.Atomic{Atom: formula.NewAtomicFormula("p", v)}}

	out, err := normalize.Normalize(f, schema.ConstantsMap{})
	require.NoError(t, err)

	lit, ok := out.(formula.Lit)
	require.True(t, ok)
	assert.Equal(t, "p", lit.Literal.Atom.Predicate)
}

// flattenOr collects the literals of a top-level disjunction chain of
// Lit constructs (the shape produced after normalize for these tests).
func flattenOr(c formula.Construct) []formula.Literal {
	switch f := c.(type) {
	case formula.Lit:
		return []formula.Literal{f.Literal}
	case formula.Or:
		return append(flattenOr(f.Left), flattenOr(f.Right)...)
	default:
		panic("unexpected construct shape in test")
	}
}
