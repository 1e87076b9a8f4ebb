package cnf

import "github.com/mlnforge/clausecore/pkg/formula"

// Input is one formula accepted by MakeCNF: a bare construct, an explicitly
// weighted formula, a definite clause, or a weighted definite clause
// (spec.md §4.4). It is a closed, package-sealed sum — construct values
// with the From* functions below.
type Input interface {
	isInput()
	weighted() formula.WeightedFormula
}

type bareConstruct struct{ c formula.Construct }

func (bareConstruct) isInput() {}
func (b bareConstruct) weighted() formula.WeightedFormula {
	return formula.NewHardFormula(b.c)
}

type weightedConstruct struct{ wf formula.WeightedFormula }

func (weightedConstruct) isInput() {}
func (w weightedConstruct) weighted() formula.WeightedFormula { return w.wf }

type definiteInput struct{ dc formula.DefiniteClause }

func (definiteInput) isInput() {}
func (d definiteInput) weighted() formula.WeightedFormula {
	return formula.NewHardFormula(d.dc.ToImplication())
}

type weightedDefiniteInput struct{ wdc formula.WeightedDefiniteClause }

func (weightedDefiniteInput) isInput() {}
func (w weightedDefiniteInput) weighted() formula.WeightedFormula {
	return formula.NewWeightedFormula(w.wdc.Weight, w.wdc.Clause.ToImplication())
}

// FromConstruct wraps a bare construct as a hard-weighted input.
func FromConstruct(c formula.Construct) Input { return bareConstruct{c} }

// FromWeighted wraps an already-weighted formula as an input, preserving
// its weight.
func FromWeighted(wf formula.WeightedFormula) Input { return weightedConstruct{wf} }

// FromDefiniteClause wraps a definite clause as a hard-weighted input,
// converting head <- body to the implication body => head.
func FromDefiniteClause(dc formula.DefiniteClause) Input { return definiteInput{dc} }

// FromWeightedDefiniteClause wraps a weighted definite clause as an input,
// preserving its weight and converting head <- body to body => head.
func FromWeightedDefiniteClause(wdc formula.WeightedDefiniteClause) Input {
	return weightedDefiniteInput{wdc}
}
