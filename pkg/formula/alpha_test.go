package formula_test

import (
	"testing"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/stretchr/testify/assert"
)

func TestAlphaEquivalentRenaming(t *testing.T) {
	x := formula.NewVariable("vo1", "obj")
	y := formula.NewVariable("vp1", "obj")

	a := []formula.Literal{
		formula.Negative(formula.NewAtomicFormula("p", x)),
		formula.Positive(formula.NewAtomicFormula("r", x)),
	}
	b := []formula.Literal{
		formula.Negative(formula.NewAtomicFormula("p", y)),
		formula.Positive(formula.NewAtomicFormula("r", y)),
	}

	assert.True(t, formula.AlphaEquivalent(a, b))
}

func TestAlphaEquivalentOrderInsensitive(t *testing.T) {
	x := formula.NewVariable("vo1", "obj")
	a := []formula.Literal{
		formula.Negative(formula.NewAtomicFormula("p", x)),
		formula.Positive(formula.NewAtomicFormula("r", x)),
	}
	b := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("r", x)),
		formula.Negative(formula.NewAtomicFormula("p", x)),
	}

	assert.True(t, formula.AlphaEquivalent(a, b))
}

func TestAlphaEquivalentDomainMatters(t *testing.T) {
	x := formula.NewVariable("vo1", "obj")
	y := formula.NewVariable("vo1", "loc")

	a := []formula.Literal{formula.Positive(formula.NewAtomicFormula("p", x))}
	b := []formula.Literal{formula.Positive(formula.NewAtomicFormula("p", y))}

	assert.False(t, formula.AlphaEquivalent(a, b))
}

func TestAlphaEquivalentDistinctVariablesNotCollapsed(t *testing.T) {
	x := formula.NewVariable("vo1", "obj")
	y := formula.NewVariable("vo2", "obj")

	a := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("p", x, y)),
	}
	b := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("p", x, x)),
	}

	assert.False(t, formula.AlphaEquivalent(a, b))
}

func TestAlphaEquivalentTiedSkeletonOrderInsensitive(t *testing.T) {
	x := formula.NewVariable("x", "obj")
	y := formula.NewVariable("y", "obj")

	// p(x) and p(y) render identically once variables are erased, so a
	// canonicalizer that numbers variables in first-seen order after a
	// stable sort would assign x/y canonical names based on which one the
	// caller happened to list first. Swapping the two literals' positions
	// must not change the canonical key.
	a := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("p", x)),
		formula.Positive(formula.NewAtomicFormula("p", y)),
		formula.Positive(formula.NewAtomicFormula("q", x, y)),
	}
	b := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("p", y)),
		formula.Positive(formula.NewAtomicFormula("p", x)),
		formula.Positive(formula.NewAtomicFormula("q", x, y)),
	}

	assert.Equal(t, formula.Canonicalize(a), formula.Canonicalize(b))
	assert.True(t, formula.AlphaEquivalent(a, b))
}

func TestConstantsNotRenamed(t *testing.T) {
	a := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("p", formula.NewConstant("c1"))),
	}
	b := []formula.Literal{
		formula.Positive(formula.NewAtomicFormula("p", formula.NewConstant("c2"))),
	}

	assert.False(t, formula.AlphaEquivalent(a, b))
}
