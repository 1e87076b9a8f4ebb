package main

import (
	"fmt"

	"github.com/mlnforge/clausecore/pkg/cnf"
	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/spf13/cobra"
)

var cnfCmd = &cobra.Command{
	Use:   "cnf",
	Short: "Compile a hard-coded toy formula set into a clause set.",
	Long: `Compiles two toy formulas through the CNF Pipeline (spec.md §4.4):

  smokes(x) ^ friends(x,y) => smokes(y)     (a definite-style implication)
  (cancer(x) ^ smokes(x)) v heavyDrinker(x) (a fast-distribute candidate)

and prints the resulting alpha-equivalence-deduplicated clause set.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		x := formula.NewVariable("x", "person")
		y := formula.NewVariable("y", "person")

		smokesX := formula.NewAtomicFormula("smokes", x)
		smokesY := formula.NewAtomicFormula("smokes", y)
		friendsXY := formula.NewAtomicFormula("friends", x, y)
		cancerX := formula.NewAtomicFormula("cancer", x)
		heavyDrinkerX := formula.NewAtomicFormula("heavyDrinker", x)

		infectious := formula.Implies{
			Left:  formula.And{Left: formula.Atomic{Atom: smokesX}, Right: formula.Atomic{Atom: friendsXY}},
			Right: formula.Atomic{Atom: smokesY},
		}

		fastDistributeCandidate := formula.Or{
			Left:  formula.And{Left: formula.Atomic{Atom: cancerX}, Right: formula.Atomic{Atom: smokesX}},
			Right: formula.Atomic{Atom: heavyDrinkerX},
		}

		inputs := []cnf.Input{
			cnf.FromConstruct(infectious),
			cnf.FromConstruct(fastDistributeCandidate),
		}

		clauses, err := cnf.MakeCNF(inputs, schema.ConstantsMap{})
		if err != nil {
			fmt.Println(err)
			return
		}

		for _, c := range clauses.Clauses() {
			fmt.Println(c)
		}
	},
}

func init() {
	rootCmd.AddCommand(cnfCmd)
}
